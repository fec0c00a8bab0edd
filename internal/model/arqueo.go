package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArqueoCaja represents one cash register shift, from opening float to
// closing reconciliation. A session is open while FechaFin is null; closing
// sets the final totals. The totals stored on close are whatever the caller
// declared — the service does not recompute SaldoInicial + Ingresos - Egresos.
type ArqueoCaja struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaInicio  time.Time       `gorm:"not null"`
	FechaFin     *time.Time      `gorm:"index"`
	SaldoInicial decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Ingresos     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Egresos      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	SaldoFinal   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	Usuario     *Usuario         `gorm:"foreignKey:UsuarioID"`
	Movimientos []MovimientoCaja `gorm:"foreignKey:ArqueoID"`
}

func (ArqueoCaja) TableName() string { return "arqueos_caja" }

// Abierto reports whether the session is still open.
func (a *ArqueoCaja) Abierto() bool { return a.FechaFin == nil }

// MovimientoCaja is a single income/expense entry tied to exactly one arqueo.
// Tipo: Ingreso | Egreso. Tipo and ArqueoID are fixed at creation; only
// Monto and Descripcion may be edited afterwards (admin path excepted).
type MovimientoCaja struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArqueoID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Tipo        string          `gorm:"type:varchar(10);not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Descripcion string
	Fecha       time.Time `gorm:"not null"`
}

func (MovimientoCaja) TableName() string { return "movimientos_caja" }

// Movement and inventory kinds share the same two-value vocabulary.
const (
	TipoIngreso = "Ingreso"
	TipoEgreso  = "Egreso"
)
