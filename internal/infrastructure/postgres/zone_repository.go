package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/visitas-api/internal/domain/entity"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

var _ repository.ZoneRepository = (*ZoneRepo)(nil)

// ZoneRepo implementación del puerto ZoneRepository sobre PostgreSQL.
type ZoneRepo struct {
	q Querier
}

// NewZoneRepository construye el adaptador de persistencia para zonas. Pasar pool o tx (Querier).
func NewZoneRepository(q Querier) *ZoneRepo {
	return &ZoneRepo{q: q}
}

const zoneColumns = `id, visita_id, seccion, concepto_actividad, calificacion, observaciones, foto_url`

// Create persiste una zona con referencia a su visita.
func (r *ZoneRepo) Create(zone *entity.Zone) error {
	query := `
		INSERT INTO zonas (id, visita_id, seccion, concepto_actividad, calificacion, observaciones, foto_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		zone.ID, zone.VisitaID, zone.Seccion, zone.ConceptoActividad, zone.Calificacion,
		zone.Observaciones, nullIfEmpty(zone.FotoURL),
	)
	if err != nil {
		return fmt.Errorf("insert zona: %w", err)
	}
	return nil
}

// GetByID obtiene una zona por ID o nil si no existe.
func (r *ZoneRepo) GetByID(id string) (*entity.Zone, error) {
	var z entity.Zone
	var fotoURL *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+zoneColumns+` FROM zonas WHERE id = $1`, id,
	).Scan(&z.ID, &z.VisitaID, &z.Seccion, &z.ConceptoActividad, &z.Calificacion, &z.Observaciones, &fotoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zona: %w", err)
	}
	z.FotoURL = emptyIfNull(fotoURL)
	return &z, nil
}

// Update reemplaza los campos de una zona.
func (r *ZoneRepo) Update(zone *entity.Zone) error {
	query := `
		UPDATE zonas SET seccion = $2, concepto_actividad = $3, calificacion = $4, observaciones = $5, foto_url = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		zone.ID, zone.Seccion, zone.ConceptoActividad, zone.Calificacion,
		zone.Observaciones, nullIfEmpty(zone.FotoURL),
	)
	if err != nil {
		return fmt.Errorf("update zona: %w", err)
	}
	return nil
}

// Delete elimina una zona por ID.
func (r *ZoneRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM zonas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete zona: %w", err)
	}
	return nil
}

// ListByVisit devuelve las zonas de una visita en orden de inserción
// (columna orden BIGSERIAL, ver schema.sql).
func (r *ZoneRepo) ListByVisit(visitaID string) ([]*entity.Zone, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+zoneColumns+` FROM zonas WHERE visita_id = $1 ORDER BY orden`, visitaID)
	if err != nil {
		return nil, fmt.Errorf("list zonas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Zone
	for rows.Next() {
		var z entity.Zone
		var fotoURL *string
		if err := rows.Scan(&z.ID, &z.VisitaID, &z.Seccion, &z.ConceptoActividad, &z.Calificacion, &z.Observaciones, &fotoURL); err != nil {
			return nil, fmt.Errorf("scan zona: %w", err)
		}
		z.FotoURL = emptyIfNull(fotoURL)
		list = append(list, &z)
	}
	return list, rows.Err()
}

// DeleteByVisit elimina todas las zonas de una visita (reemplazo total y cascada).
func (r *ZoneRepo) DeleteByVisit(visitaID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM zonas WHERE visita_id = $1`, visitaID)
	if err != nil {
		return fmt.Errorf("delete zonas de visita: %w", err)
	}
	return nil
}
