package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
	"github.com/jhoicas/visitas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeVisitRepo struct {
	visits []*entity.Visit
}

func (r *fakeVisitRepo) Create(v *entity.Visit) error {
	cp := *v
	r.visits = append(r.visits, &cp)
	return nil
}

func (r *fakeVisitRepo) GetByID(id string) (*entity.Visit, error) {
	for _, v := range r.visits {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVisitRepo) Update(v *entity.Visit) error {
	for i, cur := range r.visits {
		if cur.ID == v.ID {
			cp := *v
			r.visits[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeVisitRepo) Delete(id string) error {
	for i, v := range r.visits {
		if v.ID == id {
			r.visits = append(r.visits[:i], r.visits[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeVisitRepo) List() ([]*entity.Visit, error) {
	return r.visits, nil
}

func (r *fakeVisitRepo) ListByParticipant(userID string) ([]*entity.Visit, error) {
	var out []*entity.Visit
	for _, v := range r.visits {
		if v.SupervisorID == userID || v.TecnicoID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVisitRepo) CountByPattern(tipoCodigo, fechaDigits string) (int, error) {
	suffix := "-" + tipoCodigo + "-" + fechaDigits
	n := 0
	for _, v := range r.visits {
		if len(v.ID) > len(suffix) && v.ID[len(v.ID)-len(suffix):] == suffix {
			n++
		}
	}
	return n, nil
}

type fakeZoneRepo struct {
	zones []*entity.Zone
}

func (r *fakeZoneRepo) Create(z *entity.Zone) error {
	cp := *z
	r.zones = append(r.zones, &cp)
	return nil
}

func (r *fakeZoneRepo) GetByID(id string) (*entity.Zone, error) {
	for _, z := range r.zones {
		if z.ID == id {
			cp := *z
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeZoneRepo) Update(z *entity.Zone) error { return nil }

func (r *fakeZoneRepo) Delete(id string) error {
	for i, z := range r.zones {
		if z.ID == id {
			r.zones = append(r.zones[:i], r.zones[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeZoneRepo) ListByVisit(visitaID string) ([]*entity.Zone, error) {
	var out []*entity.Zone
	for _, z := range r.zones {
		if z.VisitaID == visitaID {
			out = append(out, z)
		}
	}
	return out, nil
}

func (r *fakeZoneRepo) DeleteByVisit(visitaID string) error {
	var kept []*entity.Zone
	for _, z := range r.zones {
		if z.VisitaID != visitaID {
			kept = append(kept, z)
		}
	}
	r.zones = kept
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error       { return nil }
func (r *fakeUserRepo) List() ([]*entity.User, error)     { return nil, nil }
func (r *fakeUserRepo) Delete(id string) error            { return nil }

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) GetByNIT(nit string) (*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error               { return nil }
func (r *fakeClientRepo) List() ([]*entity.Client, error)             { return nil, nil }
func (r *fakeClientRepo) Delete(id string) error                      { return nil }

// fakeTxRunner ejecuta el callback contra los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	visitRepo *fakeVisitRepo
	zoneRepo  *fakeZoneRepo
}

func (tx *fakeTxRunner) RunVisit(_ context.Context, fn func(repository.VisitRepository, repository.ZoneRepository) error) error {
	return fn(tx.visitRepo, tx.zoneRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

var (
	supervisorID = uuid.NewString()
	tecnicoID    = uuid.NewString()
	otroUserID   = uuid.NewString()
	clienteID    = uuid.NewString()
)

func buildUseCase() (*VisitUseCase, *fakeVisitRepo, *fakeZoneRepo) {
	visitRepo := &fakeVisitRepo{}
	zoneRepo := &fakeZoneRepo{}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		supervisorID: {ID: supervisorID, Nombre: "Carlos Supervisor", Rol: entity.RoleUser},
		tecnicoID:    {ID: tecnicoID, Nombre: "Tania Técnica", Rol: entity.RoleUser},
		otroUserID:   {ID: otroUserID, Nombre: "Otro Usuario", Rol: entity.RoleUser},
	}}
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		clienteID: {ID: clienteID, Nombre: "Edificio Central", NIT: "900123456", TipoCodigo: "EC"},
	}}
	tx := &fakeTxRunner{visitRepo: visitRepo, zoneRepo: zoneRepo}
	return NewVisitUseCase(tx, visitRepo, zoneRepo, userRepo, clientRepo), visitRepo, zoneRepo
}

func validRequest() dto.SaveVisitRequest {
	return dto.SaveVisitRequest{
		Fecha:        "2026-03-15",
		SupervisorID: supervisorID,
		TecnicoID:    tecnicoID,
		ClienteID:    clienteID,
		TipoCodigo:   "EC",
		Goal:         90,
		Calificacion: 4,
		Zonas: []dto.ZoneInput{
			{Seccion: "Aseo y Limpieza", ConceptoActividad: "Baños piso 1", Calificacion: "Bueno", FotoURL: "/uploads/banio.jpg"},
			{Seccion: "Seguridad y Salud", ConceptoActividad: "Extintores", Calificacion: "Regular"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NextVisitID
// ──────────────────────────────────────────────────────────────────────────────

func TestNextVisitID(t *testing.T) {
	fecha := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1-EC-20260315", NextVisitID(0, "EC", fecha))
	assert.Equal(t, "3-EC-20260315", NextVisitID(2, "EC", fecha))
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GeneraIDConsecutivoPorTipoYFecha(t *testing.T) {
	uc, _, zoneRepo := buildUseCase()

	first, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "1-EC-20260315", first.ID)

	second, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "2-EC-20260315", second.ID,
		"la segunda visita del mismo tipo y fecha debe llevar consecutivo 2")

	// Mismo tipo, otra fecha: el consecutivo arranca de nuevo.
	otra := validRequest()
	otra.Fecha = "2026-03-16"
	third, err := uc.Create(context.Background(), otra)
	require.NoError(t, err)
	assert.Equal(t, "1-EC-20260316", third.ID)

	zones, _ := zoneRepo.ListByVisit(first.ID)
	assert.Len(t, zones, 2, "las zonas deben persistirse junto con la visita")
}

func TestCreate_TipoCodigoFallbackDelCliente(t *testing.T) {
	uc, _, _ := buildUseCase()

	in := validRequest()
	in.TipoCodigo = "" // debe tomarse del cliente (EC)
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "1-EC-20260315", out.ID)
}

func TestCreate_SupervisorInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	in := validRequest()
	in.SupervisorID = uuid.NewString()
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_FechaInvalida(t *testing.T) {
	uc, _, _ := buildUseCase()

	in := validRequest()
	in.Fecha = "15/03/2026"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CalificacionDeZonaInvalida(t *testing.T) {
	uc, _, _ := buildUseCase()

	in := validRequest()
	in.Zonas[0].Calificacion = "Excelente"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_SinTecnicoEsValido(t *testing.T) {
	uc, _, _ := buildUseCase()

	in := validRequest()
	in.TecnicoID = ""
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReemplazaTodasLasZonas(t *testing.T) {
	uc, _, zoneRepo := buildUseCase()

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	in := validRequest()
	in.Zonas = []dto.ZoneInput{
		{Seccion: "Colaborador", ConceptoActividad: "Uniforme completo", Calificacion: "Malo"},
	}
	require.NoError(t, uc.Update(context.Background(), created.ID, in))

	zones, _ := zoneRepo.ListByVisit(created.ID)
	require.Len(t, zones, 1, "el update reemplaza el conjunto completo de zonas")
	assert.Equal(t, "Colaborador", zones[0].Seccion)

	// El ID de la visita no cambia aunque cambien los campos.
	got, err := uc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

// Una referencia rota en la actualización debe resolverse como 404 antes de
// tocar la transacción, igual que en la creación.
func TestUpdate_ReferenciasInexistentes(t *testing.T) {
	uc, _, zoneRepo := buildUseCase()

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	in := validRequest()
	in.SupervisorID = uuid.NewString()
	assert.ErrorIs(t, uc.Update(context.Background(), created.ID, in), domain.ErrNotFound)

	in = validRequest()
	in.ClienteID = uuid.NewString()
	assert.ErrorIs(t, uc.Update(context.Background(), created.ID, in), domain.ErrNotFound)

	in = validRequest()
	in.TecnicoID = uuid.NewString()
	assert.ErrorIs(t, uc.Update(context.Background(), created.ID, in), domain.ErrNotFound)

	// La visita original queda intacta: las zonas no se reemplazaron.
	zones, _ := zoneRepo.ListByVisit(created.ID)
	assert.Len(t, zones, 2)
}

func TestUpdate_VisitaInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	err := uc.Update(context.Background(), "99-EC-20260315", validRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_NoDejaZonasHuerfanas(t *testing.T) {
	uc, visitRepo, zoneRepo := buildUseCase()

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	v, _ := visitRepo.GetByID(created.ID)
	assert.Nil(t, v)
	zones, _ := zoneRepo.ListByVisit(created.ID)
	assert.Empty(t, zones, "al borrar la visita no deben quedar zonas huérfanas")
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestList_AdminVeTodas(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	out, err := uc.List(otroUserID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, out, 1, "admin ve todas las visitas aunque no participe")
	assert.Equal(t, "Carlos Supervisor", out[0].Supervisor)
	assert.Equal(t, "Edificio Central", out[0].Cliente)
}

func TestList_UsuarioSoloVeSusVisitas(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	// Participa como técnico → la ve.
	out, err := uc.List(tecnicoID, entity.RoleUser)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	// No participa → no ve nada.
	out, err = uc.List(otroUserID, entity.RoleUser)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGet_IncluyeZonasYNombres(t *testing.T) {
	uc, _, _ := buildUseCase()

	created, err := uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := uc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", got.Fecha)
	assert.Equal(t, "Carlos Supervisor", got.Supervisor)
	assert.Equal(t, "Tania Técnica", got.Tecnico)
	assert.Len(t, got.Zonas, 2)
}

func TestGet_VisitaInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Get("1-XX-19990101")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
