package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// EsAdministrador distinguishes the two roles: administrador | estandar.
// Users are never physically deleted — Activo flips to false instead, because
// arqueos and pedidos keep referencing the row.
type Usuario struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre          string    `gorm:"not null"`
	Email           string    `gorm:"uniqueIndex;not null"`
	PasswordHash    string    `gorm:"not null"`
	EsAdministrador bool      `gorm:"not null;default:false"`
	Activo          bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default pluralization for Spanish names.
func (Usuario) TableName() string { return "usuarios" }
