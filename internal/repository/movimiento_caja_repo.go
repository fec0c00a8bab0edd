package repository

import (
	"context"

	"comandapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovimientoCajaRepository interface {
	Create(ctx context.Context, m *model.MovimientoCaja) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MovimientoCaja, error)
	ListPorArqueo(ctx context.Context, arqueoID uuid.UUID) ([]model.MovimientoCaja, error)
	Update(ctx context.Context, m *model.MovimientoCaja) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movimientoCajaRepo struct{ db *gorm.DB }

func NewMovimientoCajaRepository(db *gorm.DB) MovimientoCajaRepository {
	return &movimientoCajaRepo{db: db}
}

func (r *movimientoCajaRepo) Create(ctx context.Context, m *model.MovimientoCaja) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoCajaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MovimientoCaja, error) {
	var m model.MovimientoCaja
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *movimientoCajaRepo) ListPorArqueo(ctx context.Context, arqueoID uuid.UUID) ([]model.MovimientoCaja, error) {
	var movs []model.MovimientoCaja
	err := r.db.WithContext(ctx).
		Where("arqueo_id = ?", arqueoID).Order("fecha ASC").Find(&movs).Error
	return movs, err
}

func (r *movimientoCajaRepo) Update(ctx context.Context, m *model.MovimientoCaja) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *movimientoCajaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MovimientoCaja{}, id).Error
}
