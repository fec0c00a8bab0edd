package repository

import (
	"context"
	"time"

	"comandapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventarioRepository is the data access contract for the movement ledger.
// The Tx variants run inside a live transaction so the sufficiency
// check-then-act sequences in the service commit atomically.
type InventarioRepository interface {
	Create(ctx context.Context, m *model.MovimientoInventario) error
	CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MovimientoInventario, error)
	List(ctx context.Context) ([]model.MovimientoInventario, error)
	ListPorProducto(ctx context.Context, productoID uuid.UUID) ([]model.MovimientoInventario, error)
	ListPorTipo(ctx context.Context, tipo string) ([]model.MovimientoInventario, error)
	ListPorRango(ctx context.Context, desde, hasta time.Time) ([]model.MovimientoInventario, error)
	Update(ctx context.Context, m *model.MovimientoInventario) error
	UpdateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	Balance(ctx context.Context, productoID uuid.UUID) (*model.BalanceInventario, error)
	BalanceTx(tx *gorm.DB, productoID uuid.UUID) (*model.BalanceInventario, error)

	DB() *gorm.DB
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

func (r *inventarioRepo) Create(ctx context.Context, m *model.MovimientoInventario) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *inventarioRepo) CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.Create(m).Error
}

func (r *inventarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MovimientoInventario, error) {
	var m model.MovimientoInventario
	err := r.db.WithContext(ctx).Preload("Producto").First(&m, id).Error
	return &m, err
}

func (r *inventarioRepo) List(ctx context.Context) ([]model.MovimientoInventario, error) {
	var movs []model.MovimientoInventario
	err := r.db.WithContext(ctx).Preload("Producto").Order("fecha DESC").Find(&movs).Error
	return movs, err
}

func (r *inventarioRepo) ListPorProducto(ctx context.Context, productoID uuid.UUID) ([]model.MovimientoInventario, error) {
	var movs []model.MovimientoInventario
	err := r.db.WithContext(ctx).Preload("Producto").
		Where("producto_id = ?", productoID).Order("fecha DESC").Find(&movs).Error
	return movs, err
}

func (r *inventarioRepo) ListPorTipo(ctx context.Context, tipo string) ([]model.MovimientoInventario, error) {
	var movs []model.MovimientoInventario
	err := r.db.WithContext(ctx).Preload("Producto").
		Where("tipo = ?", tipo).Order("fecha DESC").Find(&movs).Error
	return movs, err
}

func (r *inventarioRepo) ListPorRango(ctx context.Context, desde, hasta time.Time) ([]model.MovimientoInventario, error) {
	var movs []model.MovimientoInventario
	err := r.db.WithContext(ctx).Preload("Producto").
		Where("fecha BETWEEN ? AND ?", desde, hasta).Order("fecha DESC").Find(&movs).Error
	return movs, err
}

func (r *inventarioRepo) Update(ctx context.Context, m *model.MovimientoInventario) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *inventarioRepo) UpdateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.Save(m).Error
}

func (r *inventarioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MovimientoInventario{}, id).Error
}

func (r *inventarioRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.MovimientoInventario{}, id).Error
}

const balanceQuery = `
SELECT
  COALESCE(SUM(CASE WHEN tipo = 'Ingreso' THEN cantidad ELSE 0 END), 0) AS total_ingresos,
  COALESCE(SUM(CASE WHEN tipo = 'Egreso'  THEN cantidad ELSE 0 END), 0) AS total_egresos,
  COALESCE(SUM(CASE WHEN tipo = 'Ingreso' THEN cantidad ELSE -cantidad END), 0) AS balance
FROM movimientos_inventario
WHERE producto_id = ?`

func (r *inventarioRepo) Balance(ctx context.Context, productoID uuid.UUID) (*model.BalanceInventario, error) {
	var b model.BalanceInventario
	err := r.db.WithContext(ctx).Raw(balanceQuery, productoID).Scan(&b).Error
	return &b, err
}

func (r *inventarioRepo) BalanceTx(tx *gorm.DB, productoID uuid.UUID) (*model.BalanceInventario, error) {
	var b model.BalanceInventario
	err := tx.Raw(balanceQuery, productoID).Scan(&b).Error
	return &b, err
}

func (r *inventarioRepo) DB() *gorm.DB { return r.db }
