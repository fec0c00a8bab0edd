package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMovimientoInventarioRequest struct {
	ProductoID    string  `json:"id_producto"   validate:"required,uuid"`
	Tipo          string  `json:"tipo"          validate:"required,oneof=Ingreso Egreso"`
	Cantidad      int     `json:"cantidad"      validate:"required,gt=0"`
	Fecha         *string `json:"fecha"         validate:"omitempty"`
	Observaciones *string `json:"observaciones"`
}

type ActualizarMovimientoInventarioRequest struct {
	ProductoID    string  `json:"id_producto"   validate:"required,uuid"`
	Tipo          string  `json:"tipo"          validate:"required,oneof=Ingreso Egreso"`
	Cantidad      int     `json:"cantidad"      validate:"required,gt=0"`
	Fecha         *string `json:"fecha"         validate:"omitempty"`
	Observaciones *string `json:"observaciones"`
}

type RangoFechasFilter struct {
	FechaInicio string `form:"fecha_inicio" validate:"required"`
	FechaFin    string `form:"fecha_fin"    validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoInventarioResponse struct {
	ID             string  `json:"id"`
	ProductoID     string  `json:"id_producto"`
	NombreProducto string  `json:"nombre_producto,omitempty"`
	Tipo           string  `json:"tipo"`
	Cantidad       int     `json:"cantidad"`
	Fecha          string  `json:"fecha"`
	Observaciones  *string `json:"observaciones"`
}

// BalanceResponse reports the ledger aggregate for one product.
type BalanceResponse struct {
	ProductoID     string `json:"id_producto"`
	NombreProducto string `json:"nombre_producto"`
	TotalIngresos  int    `json:"total_ingresos"`
	TotalEgresos   int    `json:"total_egresos"`
	BalanceActual  int    `json:"balance_actual"`
}
