package repository

import (
	"context"
	"errors"

	"comandapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArqueoRepository interface {
	Create(ctx context.Context, a *model.ArqueoCaja) error
	// CreateTx inserts inside a live transaction (open-uniqueness check-then-act).
	CreateTx(tx *gorm.DB, a *model.ArqueoCaja) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ArqueoCaja, error)
	FindAbiertoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.ArqueoCaja, error)
	FindAbiertoPorUsuarioTx(tx *gorm.DB, usuarioID uuid.UUID) (*model.ArqueoCaja, error)
	ListAbiertos(ctx context.Context) ([]model.ArqueoCaja, error)
	ListPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.ArqueoCaja, error)
	ListAll(ctx context.Context) ([]model.ArqueoCaja, error)
	Update(ctx context.Context, a *model.ArqueoCaja) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountMovimientos(ctx context.Context, arqueoID uuid.UUID) (int64, error)
	CountPedidos(ctx context.Context, arqueoID uuid.UUID) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type arqueoRepo struct{ db *gorm.DB }

func NewArqueoRepository(db *gorm.DB) ArqueoRepository { return &arqueoRepo{db: db} }

func (r *arqueoRepo) Create(ctx context.Context, a *model.ArqueoCaja) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *arqueoRepo) CreateTx(tx *gorm.DB, a *model.ArqueoCaja) error {
	return tx.Create(a).Error
}

func (r *arqueoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ArqueoCaja, error) {
	var a model.ArqueoCaja
	err := r.db.WithContext(ctx).Preload("Usuario").First(&a, id).Error
	return &a, err
}

func (r *arqueoRepo) FindAbiertoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.ArqueoCaja, error) {
	var a model.ArqueoCaja
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND fecha_fin IS NULL", usuarioID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *arqueoRepo) FindAbiertoPorUsuarioTx(tx *gorm.DB, usuarioID uuid.UUID) (*model.ArqueoCaja, error) {
	var a model.ArqueoCaja
	err := tx.Where("usuario_id = ? AND fecha_fin IS NULL", usuarioID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *arqueoRepo) ListAbiertos(ctx context.Context) ([]model.ArqueoCaja, error) {
	var arqueos []model.ArqueoCaja
	err := r.db.WithContext(ctx).Preload("Usuario").
		Where("fecha_fin IS NULL").Order("fecha_inicio DESC").Find(&arqueos).Error
	return arqueos, err
}

func (r *arqueoRepo) ListPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.ArqueoCaja, error) {
	var arqueos []model.ArqueoCaja
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).Order("fecha_inicio DESC").Find(&arqueos).Error
	return arqueos, err
}

func (r *arqueoRepo) ListAll(ctx context.Context) ([]model.ArqueoCaja, error) {
	var arqueos []model.ArqueoCaja
	err := r.db.WithContext(ctx).Preload("Usuario").Order("fecha_inicio DESC").Find(&arqueos).Error
	return arqueos, err
}

func (r *arqueoRepo) Update(ctx context.Context, a *model.ArqueoCaja) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *arqueoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ArqueoCaja{}, id).Error
}

func (r *arqueoRepo) CountMovimientos(ctx context.Context, arqueoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MovimientoCaja{}).
		Where("arqueo_id = ?", arqueoID).Count(&n).Error
	return n, err
}

func (r *arqueoRepo) CountPedidos(ctx context.Context, arqueoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("arqueo_id = ?", arqueoID).Count(&n).Error
	return n, err
}

func (r *arqueoRepo) DB() *gorm.DB { return r.db }
