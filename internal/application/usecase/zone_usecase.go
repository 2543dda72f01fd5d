package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

// ZoneUseCase operaciones sueltas sobre zonas de una visita ya existente.
type ZoneUseCase struct {
	zoneRepo  repository.ZoneRepository
	visitRepo repository.VisitRepository
}

// NewZoneUseCase construye el caso de uso.
func NewZoneUseCase(zoneRepo repository.ZoneRepository, visitRepo repository.VisitRepository) *ZoneUseCase {
	return &ZoneUseCase{zoneRepo: zoneRepo, visitRepo: visitRepo}
}

// ListByVisit devuelve las zonas de una visita. ErrNotFound si la visita no existe.
func (uc *ZoneUseCase) ListByVisit(visitaID string) ([]dto.ZoneResponse, error) {
	visit, err := uc.visitRepo.GetByID(visitaID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, domain.ErrNotFound
	}
	zones, err := uc.zoneRepo.ListByVisit(visitaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, toZoneResponse(z))
	}
	return out, nil
}

// Create agrega una zona a una visita existente.
func (uc *ZoneUseCase) Create(in dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	if err := validateZones([]dto.ZoneInput{in.ZoneInput}); err != nil {
		return nil, err
	}
	visit, err := uc.visitRepo.GetByID(in.VisitaID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, fmt.Errorf("%w: visita", domain.ErrNotFound)
	}
	zone := &entity.Zone{
		ID:                uuid.New().String(),
		VisitaID:          in.VisitaID,
		Seccion:           in.Seccion,
		ConceptoActividad: in.ConceptoActividad,
		Calificacion:      in.Calificacion,
		Observaciones:     in.Observaciones,
		FotoURL:           in.FotoURL,
	}
	if err := uc.zoneRepo.Create(zone); err != nil {
		return nil, err
	}
	resp := toZoneResponse(zone)
	return &resp, nil
}

// Update reemplaza los campos de una zona. ErrNotFound si no existe.
func (uc *ZoneUseCase) Update(id string, in dto.ZoneInput) (*dto.ZoneResponse, error) {
	if err := validateZones([]dto.ZoneInput{in}); err != nil {
		return nil, err
	}
	zone, err := uc.zoneRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, domain.ErrNotFound
	}
	zone.Seccion = in.Seccion
	zone.ConceptoActividad = in.ConceptoActividad
	zone.Calificacion = in.Calificacion
	zone.Observaciones = in.Observaciones
	zone.FotoURL = in.FotoURL
	if err := uc.zoneRepo.Update(zone); err != nil {
		return nil, err
	}
	resp := toZoneResponse(zone)
	return &resp, nil
}

// Delete elimina una zona. ErrNotFound si no existe.
func (uc *ZoneUseCase) Delete(id string) error {
	zone, err := uc.zoneRepo.GetByID(id)
	if err != nil {
		return err
	}
	if zone == nil {
		return domain.ErrNotFound
	}
	return uc.zoneRepo.Delete(id)
}
