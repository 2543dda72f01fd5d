package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubVisitRepo struct {
	visit *entity.Visit
}

func (r *stubVisitRepo) Create(*entity.Visit) error { return nil }
func (r *stubVisitRepo) GetByID(id string) (*entity.Visit, error) {
	if r.visit != nil && r.visit.ID == id {
		return r.visit, nil
	}
	return nil, nil
}
func (r *stubVisitRepo) Update(*entity.Visit) error                          { return nil }
func (r *stubVisitRepo) Delete(string) error                                 { return nil }
func (r *stubVisitRepo) List() ([]*entity.Visit, error)                      { return nil, nil }
func (r *stubVisitRepo) ListByParticipant(string) ([]*entity.Visit, error)   { return nil, nil }
func (r *stubVisitRepo) CountByPattern(string, string) (int, error)          { return 0, nil }

type stubZoneRepo struct {
	zones []*entity.Zone
}

func (r *stubZoneRepo) Create(*entity.Zone) error                       { return nil }
func (r *stubZoneRepo) GetByID(string) (*entity.Zone, error)            { return nil, nil }
func (r *stubZoneRepo) Update(*entity.Zone) error                       { return nil }
func (r *stubZoneRepo) Delete(string) error                             { return nil }
func (r *stubZoneRepo) ListByVisit(string) ([]*entity.Zone, error)      { return r.zones, nil }
func (r *stubZoneRepo) DeleteByVisit(string) error                      { return nil }

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(*entity.User) error { return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *stubUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *stubUserRepo) Update(*entity.User) error               { return nil }
func (r *stubUserRepo) List() ([]*entity.User, error)           { return nil, nil }
func (r *stubUserRepo) Delete(string) error                     { return nil }

type stubClientRepo struct {
	client *entity.Client
}

func (r *stubClientRepo) Create(*entity.Client) error { return nil }
func (r *stubClientRepo) GetByID(id string) (*entity.Client, error) {
	if r.client != nil && r.client.ID == id {
		return r.client, nil
	}
	return nil, nil
}
func (r *stubClientRepo) GetByNIT(string) (*entity.Client, error) { return nil, nil }
func (r *stubClientRepo) Update(*entity.Client) error             { return nil }
func (r *stubClientRepo) List() ([]*entity.Client, error)         { return nil, nil }
func (r *stubClientRepo) Delete(string) error                     { return nil }

type stubCompanyRepo struct {
	byUser map[string]*entity.Company
}

func (r *stubCompanyRepo) Create(*entity.Company) error            { return nil }
func (r *stubCompanyRepo) GetByID(string) (*entity.Company, error) { return nil, nil }
func (r *stubCompanyRepo) GetByUserID(userID string) (*entity.Company, error) {
	return r.byUser[userID], nil
}
func (r *stubCompanyRepo) Update(*entity.Company) error { return nil }

// fakeGenerator captura el Data recibido y devuelve bytes fijos.
type fakeGenerator struct {
	got *Data
}

func (g *fakeGenerator) GenerateVisitReport(_ context.Context, data *Data) ([]byte, error) {
	g.got = data
	return []byte("%PDF-fake"), nil
}

// fakeMailer captura el envío.
type fakeMailer struct {
	to, subject, filename string
	pdf                   []byte
	sent                  bool
}

func (m *fakeMailer) SendReport(_ context.Context, to, subject, _, filename string, pdf []byte) error {
	m.to, m.subject, m.filename, m.pdf, m.sent = to, subject, filename, pdf, true
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	supID = "sup-1"
	tecID = "tec-1"
	cliID = "cli-1"
)

type fixture struct {
	uc        *UseCase
	generator *fakeGenerator
	mailer    *fakeMailer
	companies *stubCompanyRepo
	clients   *stubClientRepo
	zones     *stubZoneRepo
}

func buildFixture(zones []*entity.Zone) *fixture {
	visit := &entity.Visit{
		ID:           "1-EC-20260315",
		Fecha:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		SupervisorID: supID,
		TecnicoID:    tecID,
		ClienteID:    cliID,
	}
	f := &fixture{
		generator: &fakeGenerator{},
		mailer:    &fakeMailer{},
		companies: &stubCompanyRepo{byUser: map[string]*entity.Company{}},
		clients: &stubClientRepo{client: &entity.Client{
			ID: cliID, Nombre: "Edificio Central", NIT: "900123456",
			Correo: "admin@edificio.co", TipoCodigo: "EC",
		}},
		zones: &stubZoneRepo{zones: zones},
	}
	f.uc = NewUseCase(
		&stubVisitRepo{visit: visit},
		f.zones,
		&stubUserRepo{users: map[string]*entity.User{
			supID: {ID: supID, Nombre: "Carlos Supervisor"},
			tecID: {ID: tecID, Nombre: "Tania Técnica"},
		}},
		f.clients,
		f.companies,
		f.generator,
		f.mailer,
	)
	return f
}

func zonasConFoto() []*entity.Zone {
	return []*entity.Zone{
		{Seccion: "Aseo y Limpieza", ConceptoActividad: "Baños", Calificacion: entity.ZoneRatingBueno, FotoURL: "/uploads/a.jpg"},
		{Seccion: "Colaborador", ConceptoActividad: "Uniforme", Calificacion: entity.ZoneRatingRegular},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_VisitaInexistente(t *testing.T) {
	f := buildFixture(zonasConFoto())
	_, _, err := f.uc.Generate(context.Background(), "99-ZZ-19990101")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate_SinFotos_FallaPrecondicion(t *testing.T) {
	f := buildFixture([]*entity.Zone{
		{Seccion: "Aseo y Limpieza", ConceptoActividad: "Baños", Calificacion: entity.ZoneRatingBueno},
	})
	_, _, err := f.uc.Generate(context.Background(), "1-EC-20260315")
	assert.ErrorIs(t, err, domain.ErrRenderPrecondition,
		"sin ninguna zona con foto el informe no debe generarse")
	assert.Nil(t, f.generator.got, "el generador no debe invocarse")
}

func TestGenerate_NombreDeArchivoYDatos(t *testing.T) {
	f := buildFixture(zonasConFoto())

	pdf, filename, err := f.uc.Generate(context.Background(), "1-EC-20260315")
	require.NoError(t, err)
	assert.Equal(t, "informe_1-EC-20260315.pdf", filename)
	assert.Equal(t, []byte("%PDF-fake"), pdf)

	require.NotNil(t, f.generator.got)
	assert.Equal(t, "Carlos Supervisor", f.generator.got.Supervisor)
	assert.Equal(t, "Edificio Central", f.generator.got.Cliente.Nombre)
	require.Len(t, f.generator.got.Secciones, 2)
	assert.Equal(t, "Aseo y Limpieza", f.generator.got.Secciones[0].Nombre)
}

// La visita referencia un cliente que ya no existe: el error debe ser un
// NotFound identificable, no un 500 con un wrap de error nulo.
func TestGenerate_ClienteDesaparecido(t *testing.T) {
	f := buildFixture(zonasConFoto())
	f.clients.client = nil

	_, _, err := f.uc.Generate(context.Background(), "1-EC-20260315")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotContains(t, err.Error(), "%!w", "no debe envolverse un error nulo")
}

func TestGenerateAndEmail_ClienteDesaparecido(t *testing.T) {
	f := buildFixture(zonasConFoto())
	f.clients.client = nil

	_, _, err := f.uc.GenerateAndEmail(context.Background(), "1-EC-20260315")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, f.mailer.sent, "sin cliente no hay destinatario ni envío")
}

// ──────────────────────────────────────────────────────────────────────────────
// Branding: supervisor → técnico → relleno
// ──────────────────────────────────────────────────────────────────────────────

func TestBranding_EmpresaDelSupervisor(t *testing.T) {
	f := buildFixture(zonasConFoto())
	f.companies.byUser[supID] = &entity.Company{
		Nombre: "Servicios Andinos", Telefono: "3001234567",
		Correo: "contacto@andinos.co", Direccion: "Calle 10 #4-20",
	}

	_, _, err := f.uc.Generate(context.Background(), "1-EC-20260315")
	require.NoError(t, err)
	assert.Equal(t, "Servicios Andinos", f.generator.got.Empresa.Nombre)
}

func TestBranding_FallbackAlTecnico(t *testing.T) {
	f := buildFixture(zonasConFoto())
	f.companies.byUser[tecID] = &entity.Company{Nombre: "Empresa del Técnico"}

	_, _, err := f.uc.Generate(context.Background(), "1-EC-20260315")
	require.NoError(t, err)
	assert.Equal(t, "Empresa del Técnico", f.generator.got.Empresa.Nombre)
	// Los campos que falten se rellenan, nunca quedan vacíos.
	assert.Equal(t, PlaceholderNA, f.generator.got.Empresa.Telefono)
	assert.Equal(t, PlaceholderNA, f.generator.got.Empresa.Correo)
}

func TestBranding_SinEmpresa_UsaRelleno(t *testing.T) {
	f := buildFixture(zonasConFoto())

	_, _, err := f.uc.Generate(context.Background(), "1-EC-20260315")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderEmpresa, f.generator.got.Empresa.Nombre)
	assert.Equal(t, PlaceholderNA, f.generator.got.Empresa.Direccion)
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateAndEmail
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateAndEmail_EnviaAlCorreoDelCliente(t *testing.T) {
	f := buildFixture(zonasConFoto())

	pdf, filename, err := f.uc.GenerateAndEmail(context.Background(), "1-EC-20260315")
	require.NoError(t, err)

	assert.True(t, f.mailer.sent)
	assert.Equal(t, "admin@edificio.co", f.mailer.to)
	assert.Equal(t, "Informe de Visita Técnica", f.mailer.subject)
	assert.Equal(t, filename, f.mailer.filename)
	assert.Equal(t, pdf, f.mailer.pdf)
}

func TestGenerateAndEmail_NoEnviaSiFallaPrecondicion(t *testing.T) {
	f := buildFixture(nil)

	_, _, err := f.uc.GenerateAndEmail(context.Background(), "1-EC-20260315")
	assert.ErrorIs(t, err, domain.ErrRenderPrecondition)
	assert.False(t, f.mailer.sent, "no debe enviarse correo si el informe no se genera")
}
