package service_test

import (
	"context"
	"testing"

	"comandapos/internal/dto"
	"comandapos/internal/model"
	"comandapos/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducto(t *testing.T, repo *fakeProductoRepo, nombre string) *model.Producto {
	t.Helper()
	p := &model.Producto{
		Nombre: nombre,
		Precio: decimal.NewFromFloat(100),
		Activo: true,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func crearMovimiento(t *testing.T, svc service.InventarioService, productoID uuid.UUID, tipo string, cantidad int) *dto.MovimientoInventarioResponse {
	t.Helper()
	resp, err := svc.Crear(context.Background(), dto.CrearMovimientoInventarioRequest{
		ProductoID: productoID.String(),
		Tipo:       tipo,
		Cantidad:   cantidad,
	})
	require.NoError(t, err)
	return resp
}

func TestCrearIngreso(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	producto := seedProducto(t, prodRepo, "Harina")

	resp := crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 20)

	assert.Equal(t, model.TipoIngreso, resp.Tipo)
	assert.Equal(t, 20, resp.Cantidad)
	assert.Equal(t, "Harina", resp.NombreProducto)
	// stock cache follows the ledger
	assert.Equal(t, 20, producto.StockActual)
}

func TestCrearEgresoConStockSuficiente(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	producto := seedProducto(t, prodRepo, "Azucar")

	crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 20)
	crearMovimiento(t, svc, producto.ID, model.TipoEgreso, 15)

	balance, err := svc.Balance(context.Background(), producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, balance.TotalIngresos)
	assert.Equal(t, 15, balance.TotalEgresos)
	assert.Equal(t, 5, balance.BalanceActual)
	assert.Equal(t, 5, producto.StockActual)
}

func TestCrearEgresoStockInsuficiente(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	producto := seedProducto(t, prodRepo, "Cafe")

	crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 10)

	_, err := svc.Crear(context.Background(), dto.CrearMovimientoInventarioRequest{
		ProductoID: producto.ID.String(),
		Tipo:       model.TipoEgreso,
		Cantidad:   11,
	})
	assert.ErrorContains(t, err, "Stock insuficiente")
	// Rejected movement leaves no trace
	assert.Len(t, invRepo.movimientos, 1)
	assert.Equal(t, 10, producto.StockActual)
}

func TestActualizarEgresoAumentoVerificaSoloLaDiferencia(t *testing.T) {
	// Balance 20, Egreso 15 → remaining 5. Raising the egreso to 30 needs 15
	// more than remains; raising to 20 needs exactly the remaining 5.
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	producto := seedProducto(t, prodRepo, "Leche")

	crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 20)
	egreso := crearMovimiento(t, svc, producto.ID, model.TipoEgreso, 15)
	egresoID := uuid.MustParse(egreso.ID)

	_, err := svc.Actualizar(context.Background(), egresoID, dto.ActualizarMovimientoInventarioRequest{
		ProductoID: producto.ID.String(),
		Tipo:       model.TipoEgreso,
		Cantidad:   30,
	})
	assert.ErrorContains(t, err, "Stock insuficiente")

	resp, err := svc.Actualizar(context.Background(), egresoID, dto.ActualizarMovimientoInventarioRequest{
		ProductoID: producto.ID.String(),
		Tipo:       model.TipoEgreso,
		Cantidad:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Cantidad)

	balance, err := svc.Balance(context.Background(), producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.BalanceActual)
	assert.Equal(t, 0, producto.StockActual)
}

func TestActualizarIngresoAEgresoVerificaCantidadCompleta(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	producto := seedProducto(t, prodRepo, "Pan")

	crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 10)
	ingreso := crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 5)
	ingresoID := uuid.MustParse(ingreso.ID)

	// Balance is 15; flipping the 5-unit ingreso into a 16-unit egreso checks
	// the full 16 against the balance.
	_, err := svc.Actualizar(context.Background(), ingresoID, dto.ActualizarMovimientoInventarioRequest{
		ProductoID: producto.ID.String(),
		Tipo:       model.TipoEgreso,
		Cantidad:   16,
	})
	assert.ErrorContains(t, err, "Stock insuficiente")

	_, err = svc.Actualizar(context.Background(), ingresoID, dto.ActualizarMovimientoInventarioRequest{
		ProductoID: producto.ID.String(),
		Tipo:       model.TipoEgreso,
		Cantidad:   15,
	})
	require.NoError(t, err)

	// The check runs against the pre-update balance, which still includes the
	// ingreso being flipped. Ledger after the flip: +10 -15.
	balance, err := svc.Balance(context.Background(), producto.ID)
	require.NoError(t, err)
	assert.Equal(t, -5, balance.BalanceActual)
}

func TestActualizarDisminucionSinVerificacion(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	producto := seedProducto(t, prodRepo, "Te")

	crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 20)
	egreso := crearMovimiento(t, svc, producto.ID, model.TipoEgreso, 15)

	// Lowering an egreso never needs a check.
	resp, err := svc.Actualizar(context.Background(), uuid.MustParse(egreso.ID), dto.ActualizarMovimientoInventarioRequest{
		ProductoID: producto.ID.String(),
		Tipo:       model.TipoEgreso,
		Cantidad:   5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Cantidad)
	assert.Equal(t, 15, producto.StockActual)
}

func TestActualizarReasignaProductoAjustaAmbosCaches(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	origen := seedProducto(t, prodRepo, "Harina 000")
	destino := seedProducto(t, prodRepo, "Harina 0000")

	ingreso := crearMovimiento(t, svc, origen.ID, model.TipoIngreso, 10)
	require.Equal(t, 10, origen.StockActual)

	// Same kind and quantity: the only change is the product. Each cache must
	// still take its half of the correction.
	_, err := svc.Actualizar(context.Background(), uuid.MustParse(ingreso.ID), dto.ActualizarMovimientoInventarioRequest{
		ProductoID: destino.ID.String(),
		Tipo:       model.TipoIngreso,
		Cantidad:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, origen.StockActual)
	assert.Equal(t, 10, destino.StockActual)

	balanceOrigen, err := svc.Balance(context.Background(), origen.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, balanceOrigen.BalanceActual)
	balanceDestino, err := svc.Balance(context.Background(), destino.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, balanceDestino.BalanceActual)
}

func TestActualizarReasignaProductoCambiandoTipoYCantidad(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	origen := seedProducto(t, prodRepo, "Cafe en grano")
	destino := seedProducto(t, prodRepo, "Cafe molido")

	crearMovimiento(t, svc, destino.ID, model.TipoIngreso, 20)
	ingreso := crearMovimiento(t, svc, origen.ID, model.TipoIngreso, 10)

	_, err := svc.Actualizar(context.Background(), uuid.MustParse(ingreso.ID), dto.ActualizarMovimientoInventarioRequest{
		ProductoID: destino.ID.String(),
		Tipo:       model.TipoEgreso,
		Cantidad:   5,
	})
	require.NoError(t, err)

	// Origin loses the reversed ingreso, destination takes the new egreso.
	assert.Equal(t, 0, origen.StockActual)
	assert.Equal(t, 15, destino.StockActual)

	balanceDestino, err := svc.Balance(context.Background(), destino.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, balanceDestino.BalanceActual)
}

func TestEliminarIngresoCausariaStockNegativo(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	producto := seedProducto(t, prodRepo, "Yerba")

	ingreso := crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 20)
	crearMovimiento(t, svc, producto.ID, model.TipoEgreso, 15)

	// Removing the 20-unit ingreso would leave balance at -15.
	err := svc.Eliminar(context.Background(), uuid.MustParse(ingreso.ID))
	assert.ErrorContains(t, err, "stock negativo")
	assert.Len(t, invRepo.movimientos, 2)
}

func TestEliminarEgresoSinGuardia(t *testing.T) {
	invRepo := newFakeInventarioRepo()
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(invRepo, prodRepo)
	producto := seedProducto(t, prodRepo, "Aceite")

	crearMovimiento(t, svc, producto.ID, model.TipoIngreso, 20)
	egreso := crearMovimiento(t, svc, producto.ID, model.TipoEgreso, 15)

	require.NoError(t, svc.Eliminar(context.Background(), uuid.MustParse(egreso.ID)))

	balance, err := svc.Balance(context.Background(), producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, balance.BalanceActual)
	assert.Equal(t, 20, producto.StockActual)
}

func TestCrearMovimientoProductoInexistente(t *testing.T) {
	svc := service.NewInventarioService(newFakeInventarioRepo(), newFakeProductoRepo())

	_, err := svc.Crear(context.Background(), dto.CrearMovimientoInventarioRequest{
		ProductoID: uuid.NewString(),
		Tipo:       model.TipoIngreso,
		Cantidad:   5,
	})
	assert.ErrorContains(t, err, "Producto no encontrado")
}

func TestBalanceProductoSinMovimientos(t *testing.T) {
	prodRepo := newFakeProductoRepo()
	svc := service.NewInventarioService(newFakeInventarioRepo(), prodRepo)
	producto := seedProducto(t, prodRepo, "Sal")

	balance, err := svc.Balance(context.Background(), producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.TotalIngresos)
	assert.Equal(t, 0, balance.TotalEgresos)
	assert.Equal(t, 0, balance.BalanceActual)
}
