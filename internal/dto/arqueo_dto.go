package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirArqueoRequest struct {
	SaldoInicial decimal.Decimal `json:"saldo_inicial" validate:"min=0"`
}

// CerrarArqueoRequest carries the caller-declared closing totals. The service
// persists them verbatim; it does not verify saldo_final against
// saldo_inicial + ingresos - egresos.
type CerrarArqueoRequest struct {
	Ingresos   decimal.Decimal `json:"ingresos"    validate:"min=0"`
	Egresos    decimal.Decimal `json:"egresos"     validate:"min=0"`
	SaldoFinal decimal.Decimal `json:"saldo_final"`
}

// ActualizarArqueoRequest is the admin escape hatch: unconditional overwrite,
// no open/closed check.
type ActualizarArqueoRequest struct {
	SaldoInicial decimal.Decimal  `json:"saldo_inicial" validate:"min=0"`
	Ingresos     *decimal.Decimal `json:"ingresos"      validate:"omitempty,min=0"`
	Egresos      *decimal.Decimal `json:"egresos"       validate:"omitempty,min=0"`
}

type MovimientoCajaRequest struct {
	ArqueoID    string          `json:"id_arqueo"   validate:"required,uuid"`
	Tipo        string          `json:"tipo"        validate:"required,oneof=Ingreso Egreso"`
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Descripcion string          `json:"descripcion"`
}

// ActualizarMovimientoCajaRequest allows reassigning Tipo and ArqueoID as well;
// the route restricts the whole operation to administradores.
type ActualizarMovimientoCajaRequest struct {
	Monto       *decimal.Decimal `json:"monto"       validate:"omitempty,gt=0"`
	Descripcion *string          `json:"descripcion"`
	Tipo        *string          `json:"tipo"        validate:"omitempty,oneof=Ingreso Egreso"`
	ArqueoID    *string          `json:"id_arqueo"   validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ArqueoResponse struct {
	ID            string          `json:"id"`
	UsuarioID     string          `json:"id_usuario"`
	NombreUsuario string          `json:"nombre_usuario,omitempty"`
	FechaInicio   string          `json:"fecha_inicio"`
	FechaFin      *string         `json:"fecha_fin"`
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
	Ingresos      decimal.Decimal `json:"ingresos"`
	Egresos       decimal.Decimal `json:"egresos"`
	SaldoFinal    decimal.Decimal `json:"saldo_final"`
	Abierto       bool            `json:"abierto"`
}

type MovimientoCajaResponse struct {
	ID          string          `json:"id"`
	ArqueoID    string          `json:"id_arqueo"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	Fecha       string          `json:"fecha"`
}
