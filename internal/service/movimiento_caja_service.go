package service

import (
	"context"
	"time"

	"comandapos/internal/domain"
	"comandapos/internal/dto"
	"comandapos/internal/model"
	"comandapos/internal/repository"

	"github.com/google/uuid"
)

// MovimientoCajaService records income/expense entries against an arqueo.
// It deliberately does NOT check that the parent session is still open, and it
// never recomputes the session's Ingresos/Egresos totals — Cerrar is the only
// sync point for those.
type MovimientoCajaService interface {
	Crear(ctx context.Context, req dto.MovimientoCajaRequest) (*dto.MovimientoCajaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MovimientoCajaResponse, error)
	ListarPorArqueo(ctx context.Context, arqueoID uuid.UUID) ([]dto.MovimientoCajaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMovimientoCajaRequest) (*dto.MovimientoCajaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type movimientoCajaService struct {
	repo       repository.MovimientoCajaRepository
	arqueoRepo repository.ArqueoRepository
}

func NewMovimientoCajaService(repo repository.MovimientoCajaRepository, arqueoRepo repository.ArqueoRepository) MovimientoCajaService {
	return &movimientoCajaService{repo: repo, arqueoRepo: arqueoRepo}
}

func (s *movimientoCajaService) Crear(ctx context.Context, req dto.MovimientoCajaRequest) (*dto.MovimientoCajaResponse, error) {
	arqueoID, err := uuid.Parse(req.ArqueoID)
	if err != nil {
		return nil, domain.NewValidation("id_arqueo inválido")
	}
	if _, err := s.arqueoRepo.FindByID(ctx, arqueoID); err != nil {
		return nil, domain.NewNotFound("Arqueo de caja")
	}

	mov := &model.MovimientoCaja{
		ArqueoID:    arqueoID,
		Tipo:        req.Tipo,
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
		Fecha:       time.Now(),
	}
	if err := s.repo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return movimientoCajaToResponse(mov), nil
}

func (s *movimientoCajaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MovimientoCajaResponse, error) {
	mov, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Movimiento de caja")
	}
	return movimientoCajaToResponse(mov), nil
}

func (s *movimientoCajaService) ListarPorArqueo(ctx context.Context, arqueoID uuid.UUID) ([]dto.MovimientoCajaResponse, error) {
	if _, err := s.arqueoRepo.FindByID(ctx, arqueoID); err != nil {
		return nil, domain.NewNotFound("Arqueo de caja")
	}
	movs, err := s.repo.ListPorArqueo(ctx, arqueoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimientoCajaResponse, len(movs))
	for i := range movs {
		resp[i] = *movimientoCajaToResponse(&movs[i])
	}
	return resp, nil
}

// Actualizar edits any field of the movement, including Tipo and the parent
// arqueo. Restricting who may do that is the router's job, not this service's.
func (s *movimientoCajaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMovimientoCajaRequest) (*dto.MovimientoCajaResponse, error) {
	mov, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Movimiento de caja")
	}

	if req.Monto != nil {
		mov.Monto = *req.Monto
	}
	if req.Descripcion != nil {
		mov.Descripcion = *req.Descripcion
	}
	if req.Tipo != nil {
		mov.Tipo = *req.Tipo
	}
	if req.ArqueoID != nil {
		arqueoID, err := uuid.Parse(*req.ArqueoID)
		if err != nil {
			return nil, domain.NewValidation("id_arqueo inválido")
		}
		if _, err := s.arqueoRepo.FindByID(ctx, arqueoID); err != nil {
			return nil, domain.NewNotFound("Arqueo de caja")
		}
		mov.ArqueoID = arqueoID
	}
	if err := s.repo.Update(ctx, mov); err != nil {
		return nil, err
	}
	return movimientoCajaToResponse(mov), nil
}

func (s *movimientoCajaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.NewNotFound("Movimiento de caja")
	}
	return s.repo.Delete(ctx, id)
}

func movimientoCajaToResponse(m *model.MovimientoCaja) *dto.MovimientoCajaResponse {
	return &dto.MovimientoCajaResponse{
		ID:          m.ID.String(),
		ArqueoID:    m.ArqueoID.String(),
		Tipo:        m.Tipo,
		Monto:       m.Monto,
		Descripcion: m.Descripcion,
		Fecha:       m.Fecha.Format(time.RFC3339),
	}
}
