package model

import (
	"time"

	"github.com/google/uuid"
)

// MovimientoInventario records a single stock-in (Ingreso) or stock-out
// (Egreso) event. The authoritative stock figure for a product is the signed
// sum over its movements: Σ Ingreso.Cantidad − Σ Egreso.Cantidad.
type MovimientoInventario struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo          string    `gorm:"type:varchar(10);not null"`
	Cantidad      int       `gorm:"not null"`
	Fecha         time.Time `gorm:"not null;index"`
	Observaciones *string

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (MovimientoInventario) TableName() string { return "movimientos_inventario" }

// BalanceInventario is the read-time aggregate over a product's movement log.
type BalanceInventario struct {
	TotalIngresos int `gorm:"column:total_ingresos"`
	TotalEgresos  int `gorm:"column:total_egresos"`
	Balance       int `gorm:"column:balance"`
}
