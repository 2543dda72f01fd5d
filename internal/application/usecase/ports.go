package usecase

import (
	"context"

	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

// VisitTxRunner ejecuta una función dentro de una transacción que incluye los
// repos de visitas y zonas atados a esa transacción. Si fn retorna error, el
// caller hace rollback: nunca queda una visita sin sus zonas ni al revés.
type VisitTxRunner interface {
	RunVisit(ctx context.Context, fn func(
		visitRepo repository.VisitRepository,
		zoneRepo repository.ZoneRepository,
	) error) error
}
