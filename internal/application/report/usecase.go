package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

// Textos de relleno cuando el supervisor no tiene perfil de empresa.
const (
	PlaceholderEmpresa = "Empresa"
	PlaceholderNA      = "N/A"
)

// UseCase genera el informe PDF de una visita y opcionalmente lo envía por
// correo al cliente. El archivo nunca toca disco: los bytes van directo a la
// respuesta o al adjunto, así dos generaciones simultáneas de la misma visita
// no compiten por un nombre de archivo.
type UseCase struct {
	visitRepo   repository.VisitRepository
	zoneRepo    repository.ZoneRepository
	userRepo    repository.UserRepository
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
	generator   PDFGenerator
	mailer      Mailer
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	visitRepo repository.VisitRepository,
	zoneRepo repository.ZoneRepository,
	userRepo repository.UserRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
	generator PDFGenerator,
	mailer Mailer,
) *UseCase {
	return &UseCase{
		visitRepo:   visitRepo,
		zoneRepo:    zoneRepo,
		userRepo:    userRepo,
		clientRepo:  clientRepo,
		companyRepo: companyRepo,
		generator:   generator,
		mailer:      mailer,
	}
}

// Generate produce el informe de la visita.
//
// Retorna:
//   - (pdfBytes, filename, nil)       si todo sale bien.
//   - domain.ErrNotFound              si la visita no existe.
//   - domain.ErrRenderPrecondition    si ninguna zona tiene foto.
func (uc *UseCase) Generate(ctx context.Context, visitaID string) (pdfBytes []byte, filename string, err error) {
	visit, err := uc.visitRepo.GetByID(visitaID)
	if err != nil {
		return nil, "", fmt.Errorf("informe: obtener visita: %w", err)
	}
	if visit == nil {
		return nil, "", domain.ErrNotFound
	}

	zones, err := uc.zoneRepo.ListByVisit(visitaID)
	if err != nil {
		return nil, "", fmt.Errorf("informe: obtener zonas: %w", err)
	}
	if !HasAnyPhoto(zones) {
		return nil, "", fmt.Errorf("%w: se requiere al menos una foto", domain.ErrRenderPrecondition)
	}

	cliente, err := uc.clientRepo.GetByID(visit.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("informe: obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, "", fmt.Errorf("%w: cliente de la visita", domain.ErrNotFound)
	}

	supervisor := ""
	if u, err := uc.userRepo.GetByID(visit.SupervisorID); err == nil && u != nil {
		supervisor = u.Nombre
	}

	data := &Data{
		Visit:          visit,
		Cliente:        cliente,
		Supervisor:     supervisor,
		Empresa:        uc.resolveBranding(visit.SupervisorID, visit.TecnicoID),
		ClienteLogoRef: cliente.LogoURL,
		Secciones:      GroupZonesBySection(zones),
	}

	pdfBytes, err = uc.generator.GenerateVisitReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("informe: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("informe_%s.pdf", visit.ID), nil
}

// GenerateAndEmail genera el informe y lo envía al correo del cliente.
func (uc *UseCase) GenerateAndEmail(ctx context.Context, visitaID string) (pdfBytes []byte, filename string, err error) {
	pdfBytes, filename, err = uc.Generate(ctx, visitaID)
	if err != nil {
		return nil, "", err
	}
	visit, err := uc.visitRepo.GetByID(visitaID)
	if err != nil {
		return nil, "", fmt.Errorf("informe: obtener visita para envío: %w", err)
	}
	if visit == nil {
		return nil, "", fmt.Errorf("%w: la visita desapareció antes del envío", domain.ErrNotFound)
	}
	cliente, err := uc.clientRepo.GetByID(visit.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("informe: obtener correo del cliente: %w", err)
	}
	if cliente == nil {
		return nil, "", fmt.Errorf("%w: cliente de la visita", domain.ErrNotFound)
	}
	if err := uc.mailer.SendReport(ctx,
		cliente.Correo,
		"Informe de Visita Técnica",
		"Adjunto el informe de la visita técnica.",
		filename, pdfBytes,
	); err != nil {
		return nil, "", fmt.Errorf("informe: envío de correo: %w", err)
	}
	return pdfBytes, filename, nil
}

// resolveBranding busca la empresa del supervisor; si no tiene, la del técnico;
// si tampoco, textos de relleno. Nunca devuelve campos vacíos.
func (uc *UseCase) resolveBranding(supervisorID, tecnicoID string) Branding {
	company, _ := uc.companyRepo.GetByUserID(supervisorID)
	if company == nil && tecnicoID != "" {
		company, _ = uc.companyRepo.GetByUserID(tecnicoID)
	}
	if company == nil {
		return Branding{
			Nombre:    PlaceholderEmpresa,
			Telefono:  PlaceholderNA,
			Direccion: PlaceholderNA,
			Correo:    PlaceholderNA,
		}
	}
	b := Branding{
		Nombre:    company.Nombre,
		Telefono:  company.Telefono,
		Direccion: company.Direccion,
		Correo:    company.Correo,
		LogoRef:   company.LogoURL,
	}
	if b.Nombre == "" {
		b.Nombre = PlaceholderEmpresa
	}
	if b.Telefono == "" {
		b.Telefono = PlaceholderNA
	}
	if b.Direccion == "" {
		b.Direccion = PlaceholderNA
	}
	if b.Correo == "" {
		b.Correo = PlaceholderNA
	}
	return b
}
