package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistroRequest struct {
	Nombre          string `json:"nombre"   validate:"required,min=2,max=100"`
	Email           string `json:"email"    validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	EsAdministrador bool   `json:"es_administrador"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ActualizarPerfilRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
	Email  string `json:"email"  validate:"required,email"`
}

type CambiarPasswordRequest struct {
	PasswordActual string `json:"password_actual" validate:"required"`
	NuevaPassword  string `json:"nueva_password"  validate:"required,min=6"`
}

// ActualizarUsuarioRequest is the admin-only full update.
type ActualizarUsuarioRequest struct {
	Nombre          *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Email           *string `json:"email"  validate:"omitempty,email"`
	EsAdministrador *bool   `json:"es_administrador"`
	Password        *string `json:"password" validate:"omitempty,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Email           string `json:"email"`
	EsAdministrador bool   `json:"es_administrador"`
	Activo          bool   `json:"activo"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"`
	Usuario   UsuarioResponse `json:"usuario"`
}
