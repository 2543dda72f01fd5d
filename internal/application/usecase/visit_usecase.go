package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// VisitUseCase ciclo de vida de visitas técnicas y sus zonas.
// Creación y actualización son atómicas (visita + zonas en una transacción).
type VisitUseCase struct {
	tx         VisitTxRunner
	visitRepo  repository.VisitRepository
	zoneRepo   repository.ZoneRepository
	userRepo   repository.UserRepository
	clientRepo repository.ClientRepository
}

// NewVisitUseCase construye el caso de uso inyectando todas sus dependencias.
func NewVisitUseCase(
	tx VisitTxRunner,
	visitRepo repository.VisitRepository,
	zoneRepo repository.ZoneRepository,
	userRepo repository.UserRepository,
	clientRepo repository.ClientRepository,
) *VisitUseCase {
	return &VisitUseCase{
		tx:         tx,
		visitRepo:  visitRepo,
		zoneRepo:   zoneRepo,
		userRepo:   userRepo,
		clientRepo: clientRepo,
	}
}

// NextVisitID compone el ID canónico `{n}-{tipo}-{YYYYMMDD}` donde n es el
// consecutivo (1-based) de visitas de ese tipo en esa fecha.
func NextVisitID(existing int, tipoCodigo string, fecha time.Time) string {
	return fmt.Sprintf("%d-%s-%s", existing+1, tipoCodigo, fecha.Format("20060102"))
}

// Create valida la entrada, resuelve supervisor/técnico/cliente, genera el ID
// consecutivo dentro de la transacción y persiste visita + zonas como unidad.
func (uc *VisitUseCase) Create(ctx context.Context, in dto.SaveVisitRequest) (*dto.CreateVisitResponse, error) {
	if in.Fecha == "" || in.SupervisorID == "" || in.ClienteID == "" {
		return nil, fmt.Errorf("%w: fecha, supervisor_id y cliente_id son requeridos", domain.ErrInvalidInput)
	}
	fecha, err := time.Parse(fechaLayout, in.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if err := validateZones(in.Zonas); err != nil {
		return nil, err
	}

	cliente, err := uc.checkReferences(in.SupervisorID, in.TecnicoID, in.ClienteID)
	if err != nil {
		return nil, err
	}

	tipo := in.TipoCodigo
	if tipo == "" {
		tipo = cliente.TipoCodigo
	}
	if tipo == "" {
		return nil, fmt.Errorf("%w: tipo_codigo es requerido", domain.ErrInvalidInput)
	}

	var visitID string
	now := time.Now()
	err = uc.tx.RunVisit(ctx, func(visitRepo repository.VisitRepository, zoneRepo repository.ZoneRepository) error {
		// El consecutivo se calcula dentro de la misma transacción del insert
		// para que dos creaciones concurrentes no compartan número.
		count, err := visitRepo.CountByPattern(tipo, fecha.Format("20060102"))
		if err != nil {
			return err
		}
		visitID = NextVisitID(count, tipo, fecha)
		visit := &entity.Visit{
			ID:               visitID,
			Fecha:            fecha,
			SupervisorID:     in.SupervisorID,
			TecnicoID:        in.TecnicoID,
			ClienteID:        in.ClienteID,
			Goal:             in.Goal,
			Calificacion:     in.Calificacion,
			Notas:            in.Notas,
			SeguridadObs:     in.SeguridadObs,
			ProductividadObs: in.ProductividadObs,
			ConclusionesObs:  in.ConclusionesObs,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := visitRepo.Create(visit); err != nil {
			return err
		}
		return insertZones(zoneRepo, visitID, in.Zonas)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateVisitResponse{Message: "Visita creada", ID: visitID}, nil
}

// Update reemplaza los campos escalares y el conjunto completo de zonas
// (delete + insert en una transacción; nunca merge). El ID no cambia.
func (uc *VisitUseCase) Update(ctx context.Context, id string, in dto.SaveVisitRequest) error {
	fecha, err := time.Parse(fechaLayout, in.Fecha)
	if err != nil {
		return fmt.Errorf("%w: fecha debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if err := validateZones(in.Zonas); err != nil {
		return err
	}
	// Mismas verificaciones de referencias que Create: una referencia rota
	// debe ser 404, no una violación de FK en la transacción.
	if _, err := uc.checkReferences(in.SupervisorID, in.TecnicoID, in.ClienteID); err != nil {
		return err
	}
	return uc.tx.RunVisit(ctx, func(visitRepo repository.VisitRepository, zoneRepo repository.ZoneRepository) error {
		visit, err := visitRepo.GetByID(id)
		if err != nil {
			return err
		}
		if visit == nil {
			return domain.ErrNotFound
		}
		visit.Fecha = fecha
		visit.SupervisorID = in.SupervisorID
		visit.TecnicoID = in.TecnicoID
		visit.ClienteID = in.ClienteID
		visit.Goal = in.Goal
		visit.Calificacion = in.Calificacion
		visit.Notas = in.Notas
		visit.SeguridadObs = in.SeguridadObs
		visit.ProductividadObs = in.ProductividadObs
		visit.ConclusionesObs = in.ConclusionesObs
		visit.UpdatedAt = time.Now()
		if err := visitRepo.Update(visit); err != nil {
			return err
		}
		if err := zoneRepo.DeleteByVisit(id); err != nil {
			return err
		}
		return insertZones(zoneRepo, id, in.Zonas)
	})
}

// Delete elimina la visita y sus zonas en la misma transacción (sin huérfanas).
func (uc *VisitUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.RunVisit(ctx, func(visitRepo repository.VisitRepository, zoneRepo repository.ZoneRepository) error {
		visit, err := visitRepo.GetByID(id)
		if err != nil {
			return err
		}
		if visit == nil {
			return domain.ErrNotFound
		}
		if err := zoneRepo.DeleteByVisit(id); err != nil {
			return err
		}
		return visitRepo.Delete(id)
	})
}

// List devuelve el listado según el rol: admin ve todo; los demás solo las
// visitas donde participan como supervisor o técnico.
func (uc *VisitUseCase) List(requesterID, rol string) ([]dto.VisitSummaryResponse, error) {
	var visits []*entity.Visit
	var err error
	if rol == entity.RoleAdmin {
		visits, err = uc.visitRepo.List()
	} else {
		visits, err = uc.visitRepo.ListByParticipant(requesterID)
	}
	if err != nil {
		return nil, err
	}

	names := newNameCache(uc.userRepo, uc.clientRepo)
	out := make([]dto.VisitSummaryResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, dto.VisitSummaryResponse{
			ID:           v.ID,
			Fecha:        v.Fecha.Format(fechaLayout),
			Supervisor:   names.user(v.SupervisorID),
			Tecnico:      names.user(v.TecnicoID),
			Cliente:      names.client(v.ClienteID),
			Goal:         v.Goal,
			Calificacion: v.Calificacion,
		})
	}
	return out, nil
}

// Get devuelve el detalle de la visita con nombres resueltos y sus zonas.
func (uc *VisitUseCase) Get(id string) (*dto.VisitResponse, error) {
	visit, err := uc.visitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, domain.ErrNotFound
	}
	zones, err := uc.zoneRepo.ListByVisit(id)
	if err != nil {
		return nil, err
	}
	names := newNameCache(uc.userRepo, uc.clientRepo)
	out := &dto.VisitResponse{
		ID:               visit.ID,
		Fecha:            visit.Fecha.Format(fechaLayout),
		SupervisorID:     visit.SupervisorID,
		Supervisor:       names.user(visit.SupervisorID),
		TecnicoID:        visit.TecnicoID,
		Tecnico:          names.user(visit.TecnicoID),
		ClienteID:        visit.ClienteID,
		Cliente:          names.client(visit.ClienteID),
		Goal:             visit.Goal,
		Calificacion:     visit.Calificacion,
		Notas:            visit.Notas,
		SeguridadObs:     visit.SeguridadObs,
		ProductividadObs: visit.ProductividadObs,
		ConclusionesObs:  visit.ConclusionesObs,
		Zonas:            make([]dto.ZoneResponse, 0, len(zones)),
	}
	for _, z := range zones {
		out.Zonas = append(out.Zonas, toZoneResponse(z))
	}
	return out, nil
}

// checkReferences verifica que supervisor, técnico (si viene) y cliente
// existan; devuelve el cliente para el fallback de tipo_codigo en Create.
func (uc *VisitUseCase) checkReferences(supervisorID, tecnicoID, clienteID string) (*entity.Client, error) {
	supervisor, err := uc.userRepo.GetByID(supervisorID)
	if err != nil {
		return nil, err
	}
	if supervisor == nil {
		return nil, fmt.Errorf("%w: supervisor", domain.ErrNotFound)
	}
	if tecnicoID != "" {
		tecnico, err := uc.userRepo.GetByID(tecnicoID)
		if err != nil {
			return nil, err
		}
		if tecnico == nil {
			return nil, fmt.Errorf("%w: técnico", domain.ErrNotFound)
		}
	}
	cliente, err := uc.clientRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente", domain.ErrNotFound)
	}
	return cliente, nil
}

func validateZones(zonas []dto.ZoneInput) error {
	for i, z := range zonas {
		if z.Seccion == "" || z.ConceptoActividad == "" {
			return fmt.Errorf("%w: zona %d: seccion y concepto_actividad son requeridos", domain.ErrInvalidInput, i)
		}
		if !entity.ValidZoneRating(z.Calificacion) {
			return fmt.Errorf("%w: zona %d: calificacion debe ser Bueno, Regular o Malo", domain.ErrInvalidInput, i)
		}
	}
	return nil
}

func insertZones(zoneRepo repository.ZoneRepository, visitID string, zonas []dto.ZoneInput) error {
	for _, z := range zonas {
		zone := &entity.Zone{
			ID:                uuid.New().String(),
			VisitaID:          visitID,
			Seccion:           z.Seccion,
			ConceptoActividad: z.ConceptoActividad,
			Calificacion:      z.Calificacion,
			Observaciones:     z.Observaciones,
			FotoURL:           z.FotoURL,
		}
		if err := zoneRepo.Create(zone); err != nil {
			return err
		}
	}
	return nil
}

func toZoneResponse(z *entity.Zone) dto.ZoneResponse {
	return dto.ZoneResponse{
		ID:                z.ID,
		VisitaID:          z.VisitaID,
		Seccion:           z.Seccion,
		ConceptoActividad: z.ConceptoActividad,
		Calificacion:      z.Calificacion,
		Observaciones:     z.Observaciones,
		FotoURL:           z.FotoURL,
	}
}

// nameCache memoriza lookups de nombres durante un listado para no repetir
// consultas por cada fila.
type nameCache struct {
	userRepo   repository.UserRepository
	clientRepo repository.ClientRepository
	users      map[string]string
	clients    map[string]string
}

func newNameCache(userRepo repository.UserRepository, clientRepo repository.ClientRepository) *nameCache {
	return &nameCache{
		userRepo:   userRepo,
		clientRepo: clientRepo,
		users:      map[string]string{},
		clients:    map[string]string{},
	}
}

func (c *nameCache) user(id string) string {
	if id == "" {
		return ""
	}
	if n, ok := c.users[id]; ok {
		return n
	}
	n := ""
	if u, err := c.userRepo.GetByID(id); err == nil && u != nil {
		n = u.Nombre
	}
	c.users[id] = n
	return n
}

func (c *nameCache) client(id string) string {
	if id == "" {
		return ""
	}
	if n, ok := c.clients[id]; ok {
		return n
	}
	n := ""
	if cl, err := c.clientRepo.GetByID(id); err == nil && cl != nil {
		n = cl.Nombre
	}
	c.clients[id] = n
	return n
}
