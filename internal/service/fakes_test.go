package service_test

import (
	"context"
	"strings"
	"time"

	"comandapos/internal/model"
	"comandapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory fakes ──────────────────────────────────────────────────────────
// Fakes return a nil *gorm.DB from DB(), which makes the services run their
// transactional closures without a real transaction.

type fakeUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

func (r *fakeUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = true
	}
	return nil
}

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

// ── Arqueos ──────────────────────────────────────────────────────────────────

type fakeArqueoRepo struct {
	arqueos     map[uuid.UUID]*model.ArqueoCaja
	movimientos int64
	pedidos     int64
}

func newFakeArqueoRepo() *fakeArqueoRepo {
	return &fakeArqueoRepo{arqueos: make(map[uuid.UUID]*model.ArqueoCaja)}
}

func (r *fakeArqueoRepo) Create(_ context.Context, a *model.ArqueoCaja) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.arqueos[a.ID] = a
	return nil
}

func (r *fakeArqueoRepo) CreateTx(_ *gorm.DB, a *model.ArqueoCaja) error {
	return r.Create(context.Background(), a)
}

func (r *fakeArqueoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ArqueoCaja, error) {
	a, ok := r.arqueos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeArqueoRepo) FindAbiertoPorUsuario(_ context.Context, usuarioID uuid.UUID) (*model.ArqueoCaja, error) {
	for _, a := range r.arqueos {
		if a.UsuarioID == usuarioID && a.Abierto() {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeArqueoRepo) FindAbiertoPorUsuarioTx(_ *gorm.DB, usuarioID uuid.UUID) (*model.ArqueoCaja, error) {
	return r.FindAbiertoPorUsuario(context.Background(), usuarioID)
}

func (r *fakeArqueoRepo) ListAbiertos(_ context.Context) ([]model.ArqueoCaja, error) {
	var out []model.ArqueoCaja
	for _, a := range r.arqueos {
		if a.Abierto() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeArqueoRepo) ListPorUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.ArqueoCaja, error) {
	var out []model.ArqueoCaja
	for _, a := range r.arqueos {
		if a.UsuarioID == usuarioID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeArqueoRepo) ListAll(_ context.Context) ([]model.ArqueoCaja, error) {
	out := make([]model.ArqueoCaja, 0, len(r.arqueos))
	for _, a := range r.arqueos {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeArqueoRepo) Update(_ context.Context, a *model.ArqueoCaja) error {
	r.arqueos[a.ID] = a
	return nil
}

func (r *fakeArqueoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.arqueos, id)
	return nil
}

func (r *fakeArqueoRepo) CountMovimientos(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.movimientos, nil
}

func (r *fakeArqueoRepo) CountPedidos(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.pedidos, nil
}

func (r *fakeArqueoRepo) DB() *gorm.DB { return nil }

var _ repository.ArqueoRepository = (*fakeArqueoRepo)(nil)

// ── Movimientos de caja ──────────────────────────────────────────────────────

type fakeMovimientoCajaRepo struct {
	movimientos map[uuid.UUID]*model.MovimientoCaja
}

func newFakeMovimientoCajaRepo() *fakeMovimientoCajaRepo {
	return &fakeMovimientoCajaRepo{movimientos: make(map[uuid.UUID]*model.MovimientoCaja)}
}

func (r *fakeMovimientoCajaRepo) Create(_ context.Context, m *model.MovimientoCaja) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos[m.ID] = m
	return nil
}

func (r *fakeMovimientoCajaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MovimientoCaja, error) {
	m, ok := r.movimientos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeMovimientoCajaRepo) ListPorArqueo(_ context.Context, arqueoID uuid.UUID) ([]model.MovimientoCaja, error) {
	var out []model.MovimientoCaja
	for _, m := range r.movimientos {
		if m.ArqueoID == arqueoID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMovimientoCajaRepo) Update(_ context.Context, m *model.MovimientoCaja) error {
	r.movimientos[m.ID] = m
	return nil
}

func (r *fakeMovimientoCajaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.movimientos, id)
	return nil
}

var _ repository.MovimientoCajaRepository = (*fakeMovimientoCajaRepo)(nil)

// ── Inventario ───────────────────────────────────────────────────────────────

type fakeInventarioRepo struct {
	movimientos map[uuid.UUID]*model.MovimientoInventario
}

func newFakeInventarioRepo() *fakeInventarioRepo {
	return &fakeInventarioRepo{movimientos: make(map[uuid.UUID]*model.MovimientoInventario)}
}

func (r *fakeInventarioRepo) Create(_ context.Context, m *model.MovimientoInventario) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos[m.ID] = m
	return nil
}

func (r *fakeInventarioRepo) CreateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	return r.Create(context.Background(), m)
}

func (r *fakeInventarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MovimientoInventario, error) {
	m, ok := r.movimientos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeInventarioRepo) List(_ context.Context) ([]model.MovimientoInventario, error) {
	out := make([]model.MovimientoInventario, 0, len(r.movimientos))
	for _, m := range r.movimientos {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeInventarioRepo) ListPorProducto(_ context.Context, productoID uuid.UUID) ([]model.MovimientoInventario, error) {
	var out []model.MovimientoInventario
	for _, m := range r.movimientos {
		if m.ProductoID == productoID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeInventarioRepo) ListPorTipo(_ context.Context, tipo string) ([]model.MovimientoInventario, error) {
	var out []model.MovimientoInventario
	for _, m := range r.movimientos {
		if m.Tipo == tipo {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeInventarioRepo) ListPorRango(_ context.Context, desde, hasta time.Time) ([]model.MovimientoInventario, error) {
	var out []model.MovimientoInventario
	for _, m := range r.movimientos {
		if !m.Fecha.Before(desde) && !m.Fecha.After(hasta) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeInventarioRepo) Update(_ context.Context, m *model.MovimientoInventario) error {
	r.movimientos[m.ID] = m
	return nil
}

func (r *fakeInventarioRepo) UpdateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	return r.Update(context.Background(), m)
}

func (r *fakeInventarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.movimientos, id)
	return nil
}

func (r *fakeInventarioRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	return r.Delete(context.Background(), id)
}

func (r *fakeInventarioRepo) Balance(_ context.Context, productoID uuid.UUID) (*model.BalanceInventario, error) {
	b := &model.BalanceInventario{}
	for _, m := range r.movimientos {
		if m.ProductoID != productoID {
			continue
		}
		if m.Tipo == model.TipoIngreso {
			b.TotalIngresos += m.Cantidad
			b.Balance += m.Cantidad
		} else {
			b.TotalEgresos += m.Cantidad
			b.Balance -= m.Cantidad
		}
	}
	return b, nil
}

func (r *fakeInventarioRepo) BalanceTx(_ *gorm.DB, productoID uuid.UUID) (*model.BalanceInventario, error) {
	return r.Balance(context.Background(), productoID)
}

func (r *fakeInventarioRepo) DB() *gorm.DB { return nil }

var _ repository.InventarioRepository = (*fakeInventarioRepo)(nil)

// ── Productos ────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *fakeProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductoRepo) ListActivos(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) ListPorTipo(_ context.Context, tipoID uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.TipoProductoID == tipoID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) BuscarPorNombre(_ context.Context, texto string) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(texto)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *fakeProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = true
	}
	return nil
}

func (r *fakeProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *fakeProductoRepo) AjustarStock(_ context.Context, id uuid.UUID, delta int) error {
	if p, ok := r.productos[id]; ok {
		p.StockActual += delta
	}
	return nil
}

func (r *fakeProductoRepo) AjustarStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	return r.AjustarStock(context.Background(), id, delta)
}

func (r *fakeProductoRepo) CountPorTipo(_ context.Context, tipoID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.TipoProductoID == tipoID {
			n++
		}
	}
	return n, nil
}

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

// ── Tipos de producto ────────────────────────────────────────────────────────

type fakeTipoProductoRepo struct {
	tipos map[uuid.UUID]*model.TipoProducto
}

func newFakeTipoProductoRepo() *fakeTipoProductoRepo {
	return &fakeTipoProductoRepo{tipos: make(map[uuid.UUID]*model.TipoProducto)}
}

func (r *fakeTipoProductoRepo) Create(_ context.Context, t *model.TipoProducto) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tipos[t.ID] = t
	return nil
}

func (r *fakeTipoProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TipoProducto, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *fakeTipoProductoRepo) List(_ context.Context) ([]model.TipoProducto, error) {
	out := make([]model.TipoProducto, 0, len(r.tipos))
	for _, t := range r.tipos {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTipoProductoRepo) Update(_ context.Context, t *model.TipoProducto) error {
	r.tipos[t.ID] = t
	return nil
}

func (r *fakeTipoProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tipos, id)
	return nil
}

var _ repository.TipoProductoRepository = (*fakeTipoProductoRepo)(nil)

// ── Pedidos ──────────────────────────────────────────────────────────────────

type fakePedidoRepo struct {
	pedidos  map[uuid.UUID]*model.Pedido
	detalles map[uuid.UUID]*model.DetallePedido
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{
		pedidos:  make(map[uuid.UUID]*model.Pedido),
		detalles: make(map[uuid.UUID]*model.DetallePedido),
	}
}

func (r *fakePedidoRepo) Create(_ context.Context, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *fakePedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	cp.Detalles = nil
	for _, d := range r.detalles {
		if d.PedidoID == id {
			cp.Detalles = append(cp.Detalles, *d)
		}
	}
	return &cp, nil
}

func (r *fakePedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePedidoRepo) ListPorUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.UsuarioID == usuarioID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePedidoRepo) ListPorArqueo(_ context.Context, arqueoID uuid.UUID) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.ArqueoID == arqueoID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePedidoRepo) ListPorEstado(_ context.Context, estado string) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.Estado == estado {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *fakePedidoRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	if p, ok := r.pedidos[id]; ok {
		p.Estado = estado
	}
	return nil
}

func (r *fakePedidoRepo) CreateDetalle(_ context.Context, d *model.DetallePedido) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detalles[d.ID] = d
	return nil
}

func (r *fakePedidoRepo) FindDetalleByID(_ context.Context, id uuid.UUID) (*model.DetallePedido, error) {
	d, ok := r.detalles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *fakePedidoRepo) ListDetalles(_ context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error) {
	var out []model.DetallePedido
	for _, d := range r.detalles {
		if d.PedidoID == pedidoID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakePedidoRepo) UpdateDetalle(_ context.Context, d *model.DetallePedido) error {
	r.detalles[d.ID] = d
	return nil
}

func (r *fakePedidoRepo) DeleteDetalle(_ context.Context, id uuid.UUID) error {
	delete(r.detalles, id)
	return nil
}

var _ repository.PedidoRepository = (*fakePedidoRepo)(nil)
