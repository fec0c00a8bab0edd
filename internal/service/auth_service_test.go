package service_test

import (
	"context"
	"testing"

	"comandapos/internal/domain"
	"comandapos/internal/dto"
	"comandapos/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthSvc(repo *fakeUsuarioRepo) service.AuthService {
	return service.NewAuthService(repo, testSecret, 24)
}

func registrar(t *testing.T, svc service.AuthService, email string, admin bool) *dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre:          "Usuario Prueba",
		Email:           email,
		Password:        "secreto123",
		EsAdministrador: admin,
	})
	require.NoError(t, err)
	return resp
}

func TestRegistrar(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newAuthSvc(repo)

	resp := registrar(t, svc, "ana@example.com", false)

	assert.Equal(t, "ana@example.com", resp.Email)
	assert.True(t, resp.Activo)
	assert.False(t, resp.EsAdministrador)

	// Password is stored hashed, never in clear
	u, err := repo.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestRegistrarEmailDuplicado(t *testing.T) {
	svc := newAuthSvc(newFakeUsuarioRepo())
	registrar(t, svc, "ana@example.com", false)

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre:   "Otra Ana",
		Email:    "ana@example.com",
		Password: "otraclave",
	})
	assert.ErrorContains(t, err, "ya está registrado")
}

func TestLogin(t *testing.T) {
	svc := newAuthSvc(newFakeUsuarioRepo())
	registrar(t, svc, "ana@example.com", true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)

	// Token carries the identity claims
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, true, claims["es_administrador"])
	assert.Equal(t, resp.Usuario.ID, claims["user_id"])
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	// Wrong password and unknown email yield the same error.
	repo := newFakeUsuarioRepo()
	svc := newAuthSvc(repo)
	registrar(t, svc, "ana@example.com", false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)

	_, err2 := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "loquesea",
	})
	assert.ErrorIs(t, err2, domain.ErrCredencialesInvalidas)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestLoginUsuarioInactivo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newAuthSvc(repo)
	resp := registrar(t, svc, "ana@example.com", false)

	require.NoError(t, repo.SoftDelete(context.Background(), uuid.MustParse(resp.ID)))

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestCambiarPassword(t *testing.T) {
	svc := newAuthSvc(newFakeUsuarioRepo())
	resp := registrar(t, svc, "ana@example.com", false)
	id := uuid.MustParse(resp.ID)

	err := svc.CambiarPassword(context.Background(), id, dto.CambiarPasswordRequest{
		PasswordActual: "equivocada",
		NuevaPassword:  "nueva12345",
	})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)

	err = svc.CambiarPassword(context.Background(), id, dto.CambiarPasswordRequest{
		PasswordActual: "secreto123",
		NuevaPassword:  "nueva12345",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "nueva12345",
	})
	assert.NoError(t, err)
}

func TestDesactivarUsuarioPropio(t *testing.T) {
	svc := newAuthSvc(newFakeUsuarioRepo())
	admin := registrar(t, svc, "admin@example.com", true)
	adminID := uuid.MustParse(admin.ID)

	err := svc.DesactivarUsuario(context.Background(), adminID, adminID)
	assert.ErrorContains(t, err, "su propia cuenta")
}

func TestDesactivarYReactivarUsuario(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newAuthSvc(repo)
	admin := registrar(t, svc, "admin@example.com", true)
	otro := registrar(t, svc, "cajero@example.com", false)
	adminID := uuid.MustParse(admin.ID)
	otroID := uuid.MustParse(otro.ID)

	require.NoError(t, svc.DesactivarUsuario(context.Background(), adminID, otroID))
	u, err := svc.ObtenerUsuario(context.Background(), otroID)
	require.NoError(t, err)
	assert.False(t, u.Activo)

	require.NoError(t, svc.ReactivarUsuario(context.Background(), otroID))
	u, err = svc.ObtenerUsuario(context.Background(), otroID)
	require.NoError(t, err)
	assert.True(t, u.Activo)
}

func TestActualizarUsuarioCambiaRol(t *testing.T) {
	svc := newAuthSvc(newFakeUsuarioRepo())
	resp := registrar(t, svc, "cajero@example.com", false)
	id := uuid.MustParse(resp.ID)

	esAdmin := true
	actualizado, err := svc.ActualizarUsuario(context.Background(), id, dto.ActualizarUsuarioRequest{
		EsAdministrador: &esAdmin,
	})
	require.NoError(t, err)
	assert.True(t, actualizado.EsAdministrador)
}
