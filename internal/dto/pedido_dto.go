package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPedidoRequest struct {
	ArqueoID  string          `json:"id_arqueo"  validate:"required,uuid"`
	Total     decimal.Decimal `json:"total"      validate:"min=0"`
	FormaPago string          `json:"forma_pago" validate:"required,oneof=Efectivo Tarjeta QR"`
	Estado    string          `json:"estado"     validate:"omitempty,oneof=Pendiente 'En cocina' Entregado Cancelado"`
}

type ActualizarEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// ActualizarPedidoRequest is the admin-only full update.
type ActualizarPedidoRequest struct {
	UsuarioID   string          `json:"id_usuario"   validate:"required,uuid"`
	ArqueoID    string          `json:"id_arqueo"    validate:"required,uuid"`
	FechaPedido string          `json:"fecha_pedido" validate:"required"`
	Total       decimal.Decimal `json:"total"        validate:"min=0"`
	Estado      string          `json:"estado"       validate:"required"`
}

type CrearDetalleRequest struct {
	PedidoID       string          `json:"id_pedido"       validate:"required,uuid"`
	ProductoID     string          `json:"id_producto"     validate:"required,uuid"`
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

type ActualizarDetalleRequest struct {
	Cantidad       int             `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoResponse struct {
	ID          string            `json:"id"`
	UsuarioID   string            `json:"id_usuario"`
	ArqueoID    string            `json:"id_arqueo"`
	FechaPedido string            `json:"fecha_pedido"`
	Total       decimal.Decimal   `json:"total"`
	FormaPago   string            `json:"forma_pago"`
	Estado      string            `json:"estado"`
	Detalles    []DetalleResponse `json:"detalles,omitempty"`
}

type DetalleResponse struct {
	ID             string          `json:"id"`
	PedidoID       string          `json:"id_pedido"`
	ProductoID     string          `json:"id_producto"`
	NombreProducto string          `json:"nombre_producto,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}
