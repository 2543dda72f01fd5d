package repository

import "github.com/jhoicas/visitas-api/internal/domain/entity"

// VisitRepository define el puerto de persistencia para Visit.
// Las escrituras multi-paso (visita+zonas) se componen vía TxRunner en
// infrastructure, pasando implementaciones atadas a la transacción.
type VisitRepository interface {
	Create(visit *entity.Visit) error
	GetByID(id string) (*entity.Visit, error)
	Update(visit *entity.Visit) error
	Delete(id string) error
	// List devuelve todas las visitas en orden de inserción.
	List() ([]*entity.Visit, error)
	// ListByParticipant devuelve las visitas donde userID es supervisor o técnico.
	ListByParticipant(userID string) ([]*entity.Visit, error)
	// CountByPattern cuenta visitas cuyo ID coincide con `%-{tipo}-{fecha}`.
	// Se usa dentro de la transacción de creación para asignar el consecutivo.
	CountByPattern(tipoCodigo, fechaDigits string) (int, error)
}

// ZoneRepository define el puerto de persistencia para Zone.
type ZoneRepository interface {
	Create(zone *entity.Zone) error
	GetByID(id string) (*entity.Zone, error)
	Update(zone *entity.Zone) error
	Delete(id string) error
	ListByVisit(visitaID string) ([]*entity.Zone, error)
	// DeleteByVisit elimina todas las zonas de una visita (reemplazo total y cascada).
	DeleteByVisit(visitaID string) error
}
