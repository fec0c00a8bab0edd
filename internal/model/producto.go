package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoProducto classifies products. Deletion is blocked while any product
// references it.
type TipoProducto struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"not null"`
}

func (TipoProducto) TableName() string { return "tipos_producto" }

// Producto is a catalog item. StockActual is a denormalized cache of the
// movement ledger balance — sufficiency checks always go through the ledger
// (see MovimientoInventario), never through this column.
type Producto struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string          `gorm:"index;not null"`
	Descripcion    *string
	Precio         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockActual    int             `gorm:"not null;default:0"`
	TipoProductoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Activo         bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	TipoProducto *TipoProducto `gorm:"foreignKey:TipoProductoID"`
}

func (Producto) TableName() string { return "productos" }
