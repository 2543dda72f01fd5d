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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, nit, nombre, administrador, correo, tipo_codigo, logo_url, created_at, updated_at`

// Create persiste un nuevo cliente. NIT tiene constraint único.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clientes (id, nit, nombre, administrador, correo, tipo_codigo, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.NIT, client.Nombre, client.Administrador, client.Correo,
		client.TipoCodigo, nullIfEmpty(client.LogoURL),
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.scanOne(`SELECT `+clientColumns+` FROM clientes WHERE id = $1`, id)
}

// GetByNIT obtiene un cliente por NIT o nil si no existe.
func (r *ClientRepo) GetByNIT(nit string) (*entity.Client, error) {
	return r.scanOne(`SELECT `+clientColumns+` FROM clientes WHERE nit = $1`, nit)
}

func (r *ClientRepo) scanOne(query string, arg any) (*entity.Client, error) {
	var c entity.Client
	var logoURL *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.NIT, &c.Nombre, &c.Administrador, &c.Correo, &c.TipoCodigo,
		&logoURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	c.LogoURL = emptyIfNull(logoURL)
	return &c, nil
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clientes SET nit = $2, nombre = $3, administrador = $4, correo = $5, tipo_codigo = $6, logo_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.NIT, client.Nombre, client.Administrador, client.Correo,
		client.TipoCodigo, nullIfEmpty(client.LogoURL), client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List lista todos los clientes en orden de creación.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+clientColumns+` FROM clientes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		var logoURL *string
		if err := rows.Scan(&c.ID, &c.NIT, &c.Nombre, &c.Administrador, &c.Correo, &c.TipoCodigo, &logoURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		c.LogoURL = emptyIfNull(logoURL)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
