package repository

import "github.com/jhoicas/visitas-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	// GetByUserID devuelve la empresa del usuario o nil si no tiene.
	GetByUserID(userID string) (*entity.Company, error)
	Update(company *entity.Company) error
}
