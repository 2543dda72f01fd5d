package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

// CompanyUseCase perfil de empresa del usuario autenticado (marca del informe).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get devuelve el perfil de empresa del usuario o ErrNotFound si aún no lo creó.
func (uc *CompanyUseCase) Get(userID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Create registra el perfil de empresa del usuario. Un usuario tiene a lo sumo
// una empresa: chequeo de lectura antes del insert, más el constraint único en DB.
func (uc *CompanyUseCase) Create(userID string, in dto.SaveCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByUserID(userID)
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		UserID:    userID,
		Nombre:    in.Nombre,
		NIT:       in.NIT,
		Telefono:  in.Telefono,
		Correo:    in.Correo,
		Direccion: in.Direccion,
		LogoURL:   in.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update reemplaza los datos del perfil. ErrNotFound si el usuario no tiene empresa.
func (uc *CompanyUseCase) Update(userID string, in dto.SaveCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Nombre = in.Nombre
	company.NIT = in.NIT
	company.Telefono = in.Telefono
	company.Correo = in.Correo
	company.Direccion = in.Direccion
	company.LogoURL = in.LogoURL
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		NIT:       c.NIT,
		Telefono:  c.Telefono,
		Correo:    c.Correo,
		Direccion: c.Direccion,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
