package repository

import (
	"context"

	"comandapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TipoProductoRepository interface {
	Create(ctx context.Context, t *model.TipoProducto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TipoProducto, error)
	List(ctx context.Context) ([]model.TipoProducto, error)
	Update(ctx context.Context, t *model.TipoProducto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tipoProductoRepo struct{ db *gorm.DB }

func NewTipoProductoRepository(db *gorm.DB) TipoProductoRepository {
	return &tipoProductoRepo{db: db}
}

func (r *tipoProductoRepo) Create(ctx context.Context, t *model.TipoProducto) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoProductoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.TipoProducto, error) {
	var t model.TipoProducto
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tipoProductoRepo) List(ctx context.Context) ([]model.TipoProducto, error) {
	var tipos []model.TipoProducto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&tipos).Error
	return tipos, err
}

func (r *tipoProductoRepo) Update(ctx context.Context, t *model.TipoProducto) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoProductoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TipoProducto{}, id).Error
}
