package service_test

import (
	"context"
	"testing"

	"comandapos/internal/dto"
	"comandapos/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbrirArqueo(t *testing.T) {
	repo := newFakeArqueoRepo()
	svc := service.NewArqueoService(repo)

	resp, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(5000),
	})

	require.NoError(t, err)
	assert.True(t, resp.Abierto)
	assert.Nil(t, resp.FechaFin)
	assert.Equal(t, decimal.NewFromFloat(5000).String(), resp.SaldoInicial.String())
}

func TestAbrirArqueoDuplicado(t *testing.T) {
	repo := newFakeArqueoRepo()
	svc := service.NewArqueoService(repo)
	usuarioID := uuid.New()

	_, err := svc.Abrir(context.Background(), usuarioID, dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(5000),
	})
	require.NoError(t, err)

	// Second open for the same user must fail
	_, err = svc.Abrir(context.Background(), usuarioID, dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(2000),
	})
	assert.ErrorContains(t, err, "Ya existe un arqueo de caja abierto")

	// A different user can still open one
	_, err = svc.Abrir(context.Background(), uuid.New(), dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(1000),
	})
	assert.NoError(t, err)
}

func TestAbrirTrasCerrar(t *testing.T) {
	repo := newFakeArqueoRepo()
	svc := service.NewArqueoService(repo)
	usuarioID := uuid.New()

	resp, err := svc.Abrir(context.Background(), usuarioID, dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(5000),
	})
	require.NoError(t, err)

	err = svc.Cerrar(context.Background(), uuid.MustParse(resp.ID), dto.CerrarArqueoRequest{
		Ingresos:   decimal.NewFromFloat(1000),
		Egresos:    decimal.NewFromFloat(200),
		SaldoFinal: decimal.NewFromFloat(5800),
	})
	require.NoError(t, err)

	// Closing frees the per-user slot
	_, err = svc.Abrir(context.Background(), usuarioID, dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(5800),
	})
	assert.NoError(t, err)
}

func TestCerrarGuardaTotalesDeclarados(t *testing.T) {
	// Declared totals are stored verbatim, even when saldo_final does not match
	// saldo_inicial + ingresos - egresos.
	repo := newFakeArqueoRepo()
	svc := service.NewArqueoService(repo)
	usuarioID := uuid.New()

	resp, err := svc.Abrir(context.Background(), usuarioID, dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(5000),
	})
	require.NoError(t, err)
	arqueoID := uuid.MustParse(resp.ID)

	err = svc.Cerrar(context.Background(), arqueoID, dto.CerrarArqueoRequest{
		Ingresos:   decimal.NewFromFloat(100),
		Egresos:    decimal.NewFromFloat(50),
		SaldoFinal: decimal.NewFromFloat(999),
	})
	require.NoError(t, err)

	cerrado, err := svc.ObtenerPorID(context.Background(), arqueoID)
	require.NoError(t, err)
	assert.False(t, cerrado.Abierto)
	require.NotNil(t, cerrado.FechaFin)
	assert.Equal(t, "999", cerrado.SaldoFinal.String())
	assert.Equal(t, "100", cerrado.Ingresos.String())
	assert.Equal(t, "50", cerrado.Egresos.String())
}

func TestCerrarArqueoYaCerrado(t *testing.T) {
	repo := newFakeArqueoRepo()
	svc := service.NewArqueoService(repo)

	resp, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(5000),
	})
	require.NoError(t, err)
	arqueoID := uuid.MustParse(resp.ID)

	req := dto.CerrarArqueoRequest{SaldoFinal: decimal.NewFromFloat(5000)}
	require.NoError(t, svc.Cerrar(context.Background(), arqueoID, req))

	err = svc.Cerrar(context.Background(), arqueoID, req)
	assert.ErrorContains(t, err, "ya está cerrado")
}

func TestEliminarArqueoConMovimientos(t *testing.T) {
	repo := newFakeArqueoRepo()
	svc := service.NewArqueoService(repo)

	resp, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(1000),
	})
	require.NoError(t, err)
	arqueoID := uuid.MustParse(resp.ID)

	repo.movimientos = 2
	err = svc.Eliminar(context.Background(), arqueoID)
	assert.ErrorContains(t, err, "movimientos asociados")

	repo.movimientos = 0
	repo.pedidos = 1
	err = svc.Eliminar(context.Background(), arqueoID)
	assert.ErrorContains(t, err, "pedidos asociados")

	repo.pedidos = 0
	require.NoError(t, svc.Eliminar(context.Background(), arqueoID))
	_, err = svc.ObtenerPorID(context.Background(), arqueoID)
	assert.Error(t, err)
}

func TestObtenerAbiertoPorUsuario(t *testing.T) {
	repo := newFakeArqueoRepo()
	svc := service.NewArqueoService(repo)
	usuarioID := uuid.New()

	_, err := svc.ObtenerAbiertoPorUsuario(context.Background(), usuarioID)
	assert.ErrorContains(t, err, "no encontrado")

	abierto, err := svc.Abrir(context.Background(), usuarioID, dto.AbrirArqueoRequest{
		SaldoInicial: decimal.NewFromFloat(300),
	})
	require.NoError(t, err)

	activo, err := svc.ObtenerAbiertoPorUsuario(context.Background(), usuarioID)
	require.NoError(t, err)
	assert.Equal(t, abierto.ID, activo.ID)
}
