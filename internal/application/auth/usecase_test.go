package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-core-api/internal/application/auth"
	"github.com/jhoicas/crm-core-api/internal/application/dto"
	"github.com/jhoicas/crm-core-api/internal/domain"
	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/crm-core-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El email solo es único por organización
// (UNIQUE(org_id, email)), igual que en el esquema real.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testOrgA      = "00000000-0000-0000-0000-0000000000aa"
	testOrgB      = "00000000-0000-0000-0000-0000000000bb"
	testJWTSecret = "test-secret-key-for-unit-tests"
)

type fakeUserRepo struct {
	// clave: orgID + "|" + email
	users map[string]*entity.User
	// si se fija, GetByEmailAndOrg devuelve este error (simula fallo del repo)
	lookupErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) key(orgID, email string) string { return orgID + "|" + email }

func (r *fakeUserRepo) Create(u *entity.User) error {
	k := r.key(u.OrgID, u.Email)
	if _, ok := r.users[k]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.users[k] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmailAndOrg(email, orgID string) (*entity.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	u, ok := r.users[r.key(orgID, email)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
}

func newFakeOrgRepo(ids ...string) *fakeOrgRepo {
	r := &fakeOrgRepo{orgs: make(map[string]*entity.Organization)}
	now := time.Now()
	for _, id := range ids {
		r.orgs[id] = &entity.Organization{ID: id, Name: "Org " + id, Status: "active", CreatedAt: now, UpdatedAt: now}
	}
	return r
}

func (r *fakeOrgRepo) Create(org *entity.Organization) error {
	cp := *org
	r.orgs[org.ID] = &cp
	return nil
}

func (r *fakeOrgRepo) GetByID(id string) (*entity.Organization, error) {
	org, ok := r.orgs[id]
	if !ok {
		return nil, nil
	}
	cp := *org
	return &cp, nil
}

func (r *fakeOrgRepo) List(limit, offset int) ([]*entity.Organization, error) {
	var out []*entity.Organization
	for _, o := range r.orgs {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func newAuthUC(userRepo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(userRepo, newFakeOrgRepo(testOrgA, testOrgB), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "crm-core-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests registro / login multi-tenant
// ──────────────────────────────────────────────────────────────────────────────

// El mismo email puede registrarse en dos organizaciones distintas.
func TestRegister_MismoEmailEnDosOrgs_AmbosAceptados(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	a, err := uc.RegisterUser(dto.RegisterRequest{OrgID: testOrgA, Email: "ana@acme.test", Password: "secreto-a"})
	require.NoError(t, err)
	b, err := uc.RegisterUser(dto.RegisterRequest{OrgID: testOrgB, Email: "ana@acme.test", Password: "secreto-b"})
	require.NoError(t, err, "el email es único por organización, no global")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, testOrgA, a.OrgID)
	assert.Equal(t, testOrgB, b.OrgID)
}

// El login resuelve el usuario DENTRO de la organización indicada: cuando el
// mismo email existe en dos tenants, cada uno entra con su propio password y
// el token emitido lleva la org correcta.
func TestLogin_ScopedPorOrganizacion(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{OrgID: testOrgA, Email: "ana@acme.test", Password: "secreto-a"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(dto.RegisterRequest{OrgID: testOrgB, Email: "ana@acme.test", Password: "secreto-b"})
	require.NoError(t, err)

	// El usuario del segundo tenant debe poder autenticarse con SU password.
	respB, err := uc.Login(dto.LoginRequest{OrgID: testOrgB, Email: "ana@acme.test", Password: "secreto-b"})
	require.NoError(t, err, "el usuario de la org B debe poder autenticarse")
	require.NotNil(t, respB)
	assert.Equal(t, testOrgB, respB.User.OrgID)

	_, orgID, _, err := pkgjwt.Parse(testJWTSecret, respB.Token)
	require.NoError(t, err)
	assert.Equal(t, testOrgB, orgID, "el token debe llevar la org del usuario autenticado")

	// Y el del primer tenant con el suyo.
	respA, err := uc.Login(dto.LoginRequest{OrgID: testOrgA, Email: "ana@acme.test", Password: "secreto-a"})
	require.NoError(t, err)
	assert.Equal(t, testOrgA, respA.User.OrgID)

	// El password de una org no sirve en la otra.
	_, err = uc.Login(dto.LoginRequest{OrgID: testOrgA, Email: "ana@acme.test", Password: "secreto-b"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinOrgID_RetornaErrInvalidInput(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el login requiere la organización")
}

func TestLogin_UsuarioInexistente_RetornaErrUserNotFound(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{OrgID: testOrgA, Email: "nadie@acme.test", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Un fallo del repositorio en la verificación de duplicados debe propagarse,
// no leerse como "email disponible".
func TestRegister_ErrorDelRepositorio_SePropaga(t *testing.T) {
	repo := newFakeUserRepo()
	repo.lookupErr = errors.New("conexión perdida")
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{OrgID: testOrgA, Email: "ana@acme.test", Password: "secreto"})
	require.Error(t, err)
	assert.EqualError(t, err, "conexión perdida")
	assert.Empty(t, repo.users, "con el repo fallando no debe crearse ningún usuario")
}
