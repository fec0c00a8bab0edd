package service

import (
	"context"
	"errors"
	"time"

	"comandapos/internal/domain"
	"comandapos/internal/dto"
	"comandapos/internal/model"
	"comandapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArqueoService manages the open/closed lifecycle of till sessions and their
// running totals.
type ArqueoService interface {
	Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirArqueoRequest) (*dto.ArqueoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ArqueoResponse, error)
	ObtenerAbiertoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*dto.ArqueoResponse, error)
	ObtenerAbiertos(ctx context.Context) ([]dto.ArqueoResponse, error)
	ObtenerPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.ArqueoResponse, error)
	ObtenerTodos(ctx context.Context) ([]dto.ArqueoResponse, error)
	Cerrar(ctx context.Context, id uuid.UUID, req dto.CerrarArqueoRequest) error
	ActualizarAdmin(ctx context.Context, id uuid.UUID, req dto.ActualizarArqueoRequest) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type arqueoService struct {
	repo repository.ArqueoRepository
}

func NewArqueoService(repo repository.ArqueoRepository) ArqueoService {
	return &arqueoService{repo: repo}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────
// Guard: at most one open arqueo per user. The check and the insert run in one
// transaction so two concurrent opens cannot both pass the uniqueness check.

func (s *arqueoService) Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirArqueoRequest) (*dto.ArqueoResponse, error) {
	var arqueo *model.ArqueoCaja
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existente, err := s.findAbiertoPorUsuario(ctx, tx, usuarioID)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.NewConflict("Ya existe un arqueo de caja abierto para este usuario")
		}

		arqueo = &model.ArqueoCaja{
			UsuarioID:    usuarioID,
			FechaInicio:  time.Now(),
			SaldoInicial: req.SaldoInicial,
		}
		return s.createArqueo(ctx, tx, arqueo)
	})
	if err != nil {
		return nil, err
	}
	return arqueoToResponse(arqueo), nil
}

func (s *arqueoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ArqueoResponse, error) {
	arqueo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Arqueo de caja")
	}
	return arqueoToResponse(arqueo), nil
}

func (s *arqueoService) ObtenerAbiertoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*dto.ArqueoResponse, error) {
	arqueo, err := s.repo.FindAbiertoPorUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if arqueo == nil {
		return nil, domain.NewNotFound("Arqueo de caja abierto")
	}
	return arqueoToResponse(arqueo), nil
}

func (s *arqueoService) ObtenerAbiertos(ctx context.Context) ([]dto.ArqueoResponse, error) {
	arqueos, err := s.repo.ListAbiertos(ctx)
	if err != nil {
		return nil, err
	}
	return arqueosToResponse(arqueos), nil
}

func (s *arqueoService) ObtenerPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.ArqueoResponse, error) {
	arqueos, err := s.repo.ListPorUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return arqueosToResponse(arqueos), nil
}

func (s *arqueoService) ObtenerTodos(ctx context.Context) ([]dto.ArqueoResponse, error) {
	arqueos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return arqueosToResponse(arqueos), nil
}

// ── Cerrar ────────────────────────────────────────────────────────────────────
// Stores the declared totals verbatim. SaldoFinal is NOT validated against
// SaldoInicial + Ingresos - Egresos; the dashboard flags mismatches after the
// fact but the write always succeeds.

func (s *arqueoService) Cerrar(ctx context.Context, id uuid.UUID, req dto.CerrarArqueoRequest) error {
	arqueo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Arqueo de caja")
	}
	if !arqueo.Abierto() {
		return domain.NewConflict("Este arqueo ya está cerrado")
	}

	ahora := time.Now()
	arqueo.FechaFin = &ahora
	arqueo.Ingresos = req.Ingresos
	arqueo.Egresos = req.Egresos
	arqueo.SaldoFinal = req.SaldoFinal
	return s.repo.Update(ctx, arqueo)
}

// ── ActualizarAdmin ───────────────────────────────────────────────────────────
// Administrative escape hatch: unconditional overwrite, no open/closed check.

func (s *arqueoService) ActualizarAdmin(ctx context.Context, id uuid.UUID, req dto.ActualizarArqueoRequest) error {
	arqueo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Arqueo de caja")
	}

	arqueo.SaldoInicial = req.SaldoInicial
	if req.Ingresos != nil {
		arqueo.Ingresos = *req.Ingresos
	}
	if req.Egresos != nil {
		arqueo.Egresos = *req.Egresos
	}
	return s.repo.Update(ctx, arqueo)
}

// ── Eliminar ──────────────────────────────────────────────────────────────────
// Referential guards surface as domain conflicts, never as raw FK violations.

func (s *arqueoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "Arqueo de caja")
	}

	movs, err := s.repo.CountMovimientos(ctx, id)
	if err != nil {
		return err
	}
	if movs > 0 {
		return domain.NewConflict("No se puede eliminar el arqueo porque tiene movimientos asociados")
	}

	pedidos, err := s.repo.CountPedidos(ctx, id)
	if err != nil {
		return err
	}
	if pedidos > 0 {
		return domain.NewConflict("No se puede eliminar el arqueo porque tiene pedidos asociados")
	}

	return s.repo.Delete(ctx, id)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *arqueoService) findAbiertoPorUsuario(ctx context.Context, tx *gorm.DB, usuarioID uuid.UUID) (*model.ArqueoCaja, error) {
	if tx == nil {
		return s.repo.FindAbiertoPorUsuario(ctx, usuarioID)
	}
	return s.repo.FindAbiertoPorUsuarioTx(tx, usuarioID)
}

func (s *arqueoService) createArqueo(ctx context.Context, tx *gorm.DB, a *model.ArqueoCaja) error {
	if tx == nil {
		return s.repo.Create(ctx, a)
	}
	return s.repo.CreateTx(tx, a)
}

func arqueoToResponse(a *model.ArqueoCaja) *dto.ArqueoResponse {
	resp := &dto.ArqueoResponse{
		ID:           a.ID.String(),
		UsuarioID:    a.UsuarioID.String(),
		FechaInicio:  a.FechaInicio.Format(time.RFC3339),
		SaldoInicial: a.SaldoInicial,
		Ingresos:     a.Ingresos,
		Egresos:      a.Egresos,
		SaldoFinal:   a.SaldoFinal,
		Abierto:      a.Abierto(),
	}
	if a.Usuario != nil {
		resp.NombreUsuario = a.Usuario.Nombre
	}
	if a.FechaFin != nil {
		t := a.FechaFin.Format(time.RFC3339)
		resp.FechaFin = &t
	}
	return resp
}

func arqueosToResponse(arqueos []model.ArqueoCaja) []dto.ArqueoResponse {
	resp := make([]dto.ArqueoResponse, len(arqueos))
	for i := range arqueos {
		resp[i] = *arqueoToResponse(&arqueos[i])
	}
	return resp
}

// notFound translates gorm's sentinel into the domain taxonomy for callers
// that need to distinguish missing rows from store failures.
func notFound(err error, entidad string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFound(entidad)
	}
	return err
}
