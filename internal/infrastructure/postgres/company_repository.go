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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, user_id, nombre, nit, telefono, correo, direccion, logo_url, created_at, updated_at`

// Create persiste el perfil de empresa. user_id tiene constraint único:
// el segundo perfil del mismo usuario retorna ErrConflict.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO empresas (id, user_id, nombre, nit, telefono, correo, direccion, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.UserID, company.Nombre, company.NIT, company.Telefono, company.Correo,
		nullIfEmpty(company.Direccion), nullIfEmpty(company.LogoURL),
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.scanOne(`SELECT `+companyColumns+` FROM empresas WHERE id = $1`, id)
}

// GetByUserID obtiene la empresa de un usuario o nil si no tiene.
func (r *CompanyRepo) GetByUserID(userID string) (*entity.Company, error) {
	return r.scanOne(`SELECT `+companyColumns+` FROM empresas WHERE user_id = $1`, userID)
}

func (r *CompanyRepo) scanOne(query string, arg any) (*entity.Company, error) {
	var c entity.Company
	var direccion, logoURL *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.UserID, &c.Nombre, &c.NIT, &c.Telefono, &c.Correo,
		&direccion, &logoURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	c.Direccion = emptyIfNull(direccion)
	c.LogoURL = emptyIfNull(logoURL)
	return &c, nil
}

// Update actualiza el perfil de empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE empresas SET nombre = $2, nit = $3, telefono = $4, correo = $5, direccion = $6, logo_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Nombre, company.NIT, company.Telefono, company.Correo,
		nullIfEmpty(company.Direccion), nullIfEmpty(company.LogoURL), company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}
