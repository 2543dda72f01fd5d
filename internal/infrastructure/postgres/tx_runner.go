package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/visitas-api/internal/application/usecase"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.VisitTxRunner.
var _ usecase.VisitTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunVisit inicia una transacción, ejecuta fn con los repos de visitas y zonas
// atados a la tx y hace Commit o Rollback. Un error en cualquier paso deshace
// toda la operación: nunca queda una visita sin zonas ni zonas huérfanas.
func (r *TxRunner) RunVisit(ctx context.Context, fn func(
	visitRepo repository.VisitRepository,
	zoneRepo repository.ZoneRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewVisitRepository(tx), NewZoneRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
