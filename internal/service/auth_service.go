package service

import (
	"context"
	"errors"
	"time"

	"comandapos/internal/domain"
	"comandapos/internal/dto"
	"comandapos/internal/model"
	"comandapos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and account administration.
// Login failures are reported with a single uniform error so callers cannot
// distinguish an unknown email from a wrong password.
type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Perfil(ctx context.Context, usuarioID uuid.UUID) (*dto.UsuarioResponse, error)
	ActualizarPerfil(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error)
	CambiarPassword(ctx context.Context, usuarioID uuid.UUID, req dto.CambiarPasswordRequest) error

	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, adminID, id uuid.UUID) error
	ReactivarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo       repository.UsuarioRepository
	jwtSecret  []byte
	expiration time.Duration
}

func NewAuthService(repo repository.UsuarioRepository, jwtSecret string, expirationHours int) AuthService {
	return &authService{
		repo:       repo,
		jwtSecret:  []byte(jwtSecret),
		expiration: time.Duration(expirationHours) * time.Hour,
	}
}

// ── Registration / login ──────────────────────────────────────────────────────

func (s *authService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	existente, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil && existente != nil && existente.ID != uuid.Nil {
		return nil, domain.NewConflict("El email ya está registrado")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Nombre:          req.Nombre,
		Email:           req.Email,
		PasswordHash:    string(hash),
		EsAdministrador: req.EsAdministrador,
		Activo:          true,
	}
	if err := s.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if !usuario.Activo {
		return nil, domain.ErrCredencialesInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrCredencialesInvalidas
	}

	token, err := s.firmarToken(usuario)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(s.expiration.Seconds()),
		Usuario:   *usuarioToResponse(usuario),
	}, nil
}

func (s *authService) firmarToken(u *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":          u.ID.String(),
		"email":            u.Email,
		"es_administrador": u.EsAdministrador,
		"iat":              now.Unix(),
		"exp":              now.Add(s.expiration).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// ── Own profile ───────────────────────────────────────────────────────────────

func (s *authService) Perfil(ctx context.Context, usuarioID uuid.UUID) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, domain.NewNotFound("Usuario")
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) ActualizarPerfil(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, domain.NewNotFound("Usuario")
	}
	if req.Email != usuario.Email {
		if otro, err := s.repo.FindByEmail(ctx, req.Email); err == nil && otro.ID != usuario.ID {
			return nil, domain.NewConflict("El email ya está registrado")
		}
	}
	usuario.Nombre = req.Nombre
	usuario.Email = req.Email
	if err := s.repo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) CambiarPassword(ctx context.Context, usuarioID uuid.UUID, req dto.CambiarPasswordRequest) error {
	usuario, err := s.repo.FindByID(ctx, usuarioID)
	if err != nil {
		return domain.NewNotFound("Usuario")
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.PasswordActual)) != nil {
		return domain.ErrCredencialesInvalidas
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NuevaPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario.PasswordHash = string(hash)
	return s.repo.Update(ctx, usuario)
}

// ── Administration ────────────────────────────────────────────────────────────

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(usuarios))
	for i := range usuarios {
		resp[i] = *usuarioToResponse(&usuarios[i])
	}
	return resp, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Usuario")
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Usuario")
	}
	if req.Nombre != nil {
		usuario.Nombre = *req.Nombre
	}
	if req.Email != nil && *req.Email != usuario.Email {
		if otro, err := s.repo.FindByEmail(ctx, *req.Email); err == nil && otro.ID != usuario.ID {
			return nil, domain.NewConflict("El email ya está registrado")
		}
		usuario.Email = *req.Email
	}
	if req.EsAdministrador != nil {
		usuario.EsAdministrador = *req.EsAdministrador
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuarioToResponse(usuario), nil
}

// DesactivarUsuario refuses when an administrator targets their own account,
// so an instance cannot lock itself out of administration.
func (s *authService) DesactivarUsuario(ctx context.Context, adminID, id uuid.UUID) error {
	if adminID == id {
		return domain.NewConflict("Un administrador no puede desactivar su propia cuenta")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.NewNotFound("Usuario")
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *authService) ReactivarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.NewNotFound("Usuario")
	}
	return s.repo.Reactivar(ctx, id)
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:              u.ID.String(),
		Nombre:          u.Nombre,
		Email:           u.Email,
		EsAdministrador: u.EsAdministrador,
		Activo:          u.Activo,
	}
}
