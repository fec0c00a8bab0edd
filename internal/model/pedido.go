package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido estados. Any member of the enum may be written via ActualizarEstado;
// only Cancelar enforces the Entregado terminal guard.
const (
	EstadoPendiente = "Pendiente"
	EstadoEnCocina  = "En cocina"
	EstadoEntregado = "Entregado"
	EstadoCancelado = "Cancelado"
)

// Payment methods accepted at the till.
const (
	PagoEfectivo = "Efectivo"
	PagoTarjeta  = "Tarjeta"
	PagoQR       = "QR"
)

// EstadoValido reports whether estado belongs to the closed enumeration.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoEnCocina, EstadoEntregado, EstadoCancelado:
		return true
	}
	return false
}

// Pedido is an order placed against an open arqueo. Total is not recomputed
// automatically when lines change; RecalcularTotal is the explicit sync step.
type Pedido struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArqueoID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaPedido time.Time       `gorm:"not null"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FormaPago   string          `gorm:"type:varchar(10);not null;default:'Efectivo'"`
	Estado      string          `gorm:"type:varchar(20);not null;default:'Pendiente'"`

	Usuario  *Usuario        `gorm:"foreignKey:UsuarioID"`
	Detalles []DetallePedido `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }

// DetallePedido is one order line. PrecioUnitario snapshots the product price
// at order time and does not track later price changes.
type DetallePedido struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetallePedido) TableName() string { return "detalle_pedidos" }
