package repository

import (
	"context"

	"comandapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context) ([]model.Pedido, error)
	ListPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Pedido, error)
	ListPorArqueo(ctx context.Context, arqueoID uuid.UUID) ([]model.Pedido, error)
	ListPorEstado(ctx context.Context, estado string) ([]model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error

	// Order lines
	CreateDetalle(ctx context.Context, d *model.DetallePedido) error
	FindDetalleByID(ctx context.Context, id uuid.UUID) (*model.DetallePedido, error)
	ListDetalles(ctx context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error)
	UpdateDetalle(ctx context.Context, d *model.DetallePedido) error
	DeleteDetalle(ctx context.Context, id uuid.UUID) error
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Detalles").Preload("Detalles.Producto").First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Order("fecha_pedido DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).Order("fecha_pedido DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListPorArqueo(ctx context.Context, arqueoID uuid.UUID) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("arqueo_id = ?", arqueoID).Order("fecha_pedido DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListPorEstado(ctx context.Context, estado string) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("estado = ?", estado).Order("fecha_pedido DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pedidoRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("id = ?", id).Update("estado", estado).Error
}

func (r *pedidoRepo) CreateDetalle(ctx context.Context, d *model.DetallePedido) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *pedidoRepo) FindDetalleByID(ctx context.Context, id uuid.UUID) (*model.DetallePedido, error) {
	var d model.DetallePedido
	err := r.db.WithContext(ctx).Preload("Producto").First(&d, id).Error
	return &d, err
}

func (r *pedidoRepo) ListDetalles(ctx context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error) {
	var detalles []model.DetallePedido
	err := r.db.WithContext(ctx).Preload("Producto").
		Where("pedido_id = ?", pedidoID).Find(&detalles).Error
	return detalles, err
}

func (r *pedidoRepo) UpdateDetalle(ctx context.Context, d *model.DetallePedido) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *pedidoRepo) DeleteDetalle(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DetallePedido{}, id).Error
}
