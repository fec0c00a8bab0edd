package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre         string          `json:"nombre"           validate:"required,min=2,max=100"`
	Descripcion    *string         `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio"           validate:"required"`
	StockActual    int             `json:"stock_actual"     validate:"min=0"`
	TipoProductoID string          `json:"id_tipo_producto" validate:"required,uuid"`
}

type ActualizarProductoRequest struct {
	Nombre         *string          `json:"nombre" validate:"omitempty,min=2,max=100"`
	Descripcion    *string          `json:"descripcion"`
	Precio         *decimal.Decimal `json:"precio"`
	StockActual    *int             `json:"stock_actual" validate:"omitempty,min=0"`
	TipoProductoID *string          `json:"id_tipo_producto" validate:"omitempty,uuid"`
	Activo         *bool            `json:"activo"`
}

// AjustarStockRequest adds a signed delta to the stock_actual cache column.
// It does not touch the movement ledger.
type AjustarStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type TipoProductoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=50"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Descripcion    *string         `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio"`
	StockActual    int             `json:"stock_actual"`
	TipoProductoID string          `json:"id_tipo_producto"`
	NombreTipo     string          `json:"nombre_tipo,omitempty"`
	Activo         bool            `json:"activo"`
}

type TipoProductoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ConsultaPrecioResponse is returned by the public price check endpoint.
type ConsultaPrecioResponse struct {
	Nombre          string          `json:"nombre"`
	Precio          decimal.Decimal `json:"precio"`
	StockDisponible int             `json:"stock_disponible"`
}
