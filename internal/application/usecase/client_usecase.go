package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes (organizaciones visitadas).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registra un cliente. Devuelve ErrDuplicate si el NIT ya existe.
func (uc *ClientUseCase) Create(in dto.SaveClientRequest) (*dto.ClientResponse, error) {
	existing, _ := uc.repo.GetByNIT(in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:            uuid.New().String(),
		NIT:           in.NIT,
		Nombre:        in.Nombre,
		Administrador: in.Administrador,
		Correo:        in.Correo,
		TipoCodigo:    in.TipoCodigo,
		LogoURL:       in.LogoURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update reemplaza los campos de un cliente. ErrNotFound si no existe;
// ErrDuplicate si el nuevo NIT pertenece a otro cliente.
func (uc *ClientUseCase) Update(id string, in dto.SaveClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.NIT != client.NIT {
		taken, _ := uc.repo.GetByNIT(in.NIT)
		if taken != nil && taken.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	client.NIT = in.NIT
	client.Nombre = in.Nombre
	client.Administrador = in.Administrador
	client.Correo = in.Correo
	client.TipoCodigo = in.TipoCodigo
	client.LogoURL = in.LogoURL
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente. ErrNotFound si no existe.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:            c.ID,
		NIT:           c.NIT,
		Nombre:        c.Nombre,
		Administrador: c.Administrador,
		Correo:        c.Correo,
		TipoCodigo:    c.TipoCodigo,
		LogoURL:       c.LogoURL,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
