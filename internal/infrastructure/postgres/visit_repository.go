package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo implementación del puerto VisitRepository sobre PostgreSQL.
type VisitRepo struct {
	q Querier
}

// NewVisitRepository construye el adaptador de persistencia para visitas. Pasar pool o tx (Querier).
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

const visitColumns = `id, fecha, supervisor_id, tecnico_id, cliente_id, goal, calificacion,
	notas, seguridad_obs, productividad_obs, conclusiones_obs, created_at, updated_at`

// Create persiste una visita. El ID compuesto es único: la colisión de
// consecutivo retorna ErrDuplicate (el caller reintenta o falla).
func (r *VisitRepo) Create(visit *entity.Visit) error {
	query := `
		INSERT INTO visitas (id, fecha, supervisor_id, tecnico_id, cliente_id, goal, calificacion,
			notas, seguridad_obs, productividad_obs, conclusiones_obs, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		visit.ID, visit.Fecha, visit.SupervisorID, nullIfEmpty(visit.TecnicoID), visit.ClienteID,
		visit.Goal, visit.Calificacion,
		nullIfEmpty(visit.Notas), nullIfEmpty(visit.SeguridadObs),
		nullIfEmpty(visit.ProductividadObs), nullIfEmpty(visit.ConclusionesObs),
		visit.CreatedAt, visit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert visita: %w", err)
	}
	return nil
}

// GetByID obtiene una visita por ID o nil si no existe.
func (r *VisitRepo) GetByID(id string) (*entity.Visit, error) {
	row := r.q.QueryRow(context.Background(), `SELECT `+visitColumns+` FROM visitas WHERE id = $1`, id)
	v, err := scanVisit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visita: %w", err)
	}
	return v, nil
}

// Update reemplaza los campos escalares de la visita (el ID nunca cambia).
func (r *VisitRepo) Update(visit *entity.Visit) error {
	query := `
		UPDATE visitas SET fecha = $2, supervisor_id = $3, tecnico_id = $4, cliente_id = $5,
			goal = $6, calificacion = $7, notas = $8, seguridad_obs = $9,
			productividad_obs = $10, conclusiones_obs = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		visit.ID, visit.Fecha, visit.SupervisorID, nullIfEmpty(visit.TecnicoID), visit.ClienteID,
		visit.Goal, visit.Calificacion,
		nullIfEmpty(visit.Notas), nullIfEmpty(visit.SeguridadObs),
		nullIfEmpty(visit.ProductividadObs), nullIfEmpty(visit.ConclusionesObs),
		visit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update visita: %w", err)
	}
	return nil
}

// Delete elimina una visita. Las zonas se borran antes en la misma transacción.
func (r *VisitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM visitas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete visita: %w", err)
	}
	return nil
}

// List devuelve todas las visitas en orden de inserción.
func (r *VisitRepo) List() ([]*entity.Visit, error) {
	return r.list(`SELECT ` + visitColumns + ` FROM visitas ORDER BY created_at`)
}

// ListByParticipant devuelve las visitas donde el usuario es supervisor o técnico.
func (r *VisitRepo) ListByParticipant(userID string) ([]*entity.Visit, error) {
	return r.list(`SELECT `+visitColumns+` FROM visitas WHERE supervisor_id = $1 OR tecnico_id = $1 ORDER BY created_at`, userID)
}

func (r *VisitRepo) list(query string, args ...any) ([]*entity.Visit, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list visitas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visita: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// CountByPattern cuenta visitas cuyo ID termina en `-{tipo}-{fecha}`.
// Se llama dentro de la transacción de creación para asignar el consecutivo.
func (r *VisitRepo) CountByPattern(tipoCodigo, fechaDigits string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM visitas WHERE id LIKE $1`,
		"%-"+tipoCodigo+"-"+fechaDigits,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count visitas: %w", err)
	}
	return count, nil
}

// pgx.Row y pgx.Rows comparten Scan; scanVisit sirve para ambos.
func scanVisit(row pgx.Row) (*entity.Visit, error) {
	var v entity.Visit
	var tecnicoID, notas, seguridad, productividad, conclusiones *string
	err := row.Scan(
		&v.ID, &v.Fecha, &v.SupervisorID, &tecnicoID, &v.ClienteID, &v.Goal, &v.Calificacion,
		&notas, &seguridad, &productividad, &conclusiones, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.TecnicoID = emptyIfNull(tecnicoID)
	v.Notas = emptyIfNull(notas)
	v.SeguridadObs = emptyIfNull(seguridad)
	v.ProductividadObs = emptyIfNull(productividad)
	v.ConclusionesObs = emptyIfNull(conclusiones)
	return &v, nil
}
