package service

import (
	"context"

	"comandapos/internal/domain"
	"comandapos/internal/dto"
	"comandapos/internal/model"
	"comandapos/internal/repository"

	"github.com/google/uuid"
)

type TipoProductoService interface {
	Crear(ctx context.Context, req dto.TipoProductoRequest) (*dto.TipoProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.TipoProductoResponse, error)
	ObtenerTodos(ctx context.Context) ([]dto.TipoProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.TipoProductoRequest) (*dto.TipoProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type tipoProductoService struct {
	repo         repository.TipoProductoRepository
	productoRepo repository.ProductoRepository
}

func NewTipoProductoService(repo repository.TipoProductoRepository, productoRepo repository.ProductoRepository) TipoProductoService {
	return &tipoProductoService{repo: repo, productoRepo: productoRepo}
}

func (s *tipoProductoService) Crear(ctx context.Context, req dto.TipoProductoRequest) (*dto.TipoProductoResponse, error) {
	tipo := &model.TipoProducto{Nombre: req.Nombre}
	if err := s.repo.Create(ctx, tipo); err != nil {
		return nil, err
	}
	return tipoToResponse(tipo), nil
}

func (s *tipoProductoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.TipoProductoResponse, error) {
	tipo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Tipo de producto")
	}
	return tipoToResponse(tipo), nil
}

func (s *tipoProductoService) ObtenerTodos(ctx context.Context) ([]dto.TipoProductoResponse, error) {
	tipos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TipoProductoResponse, len(tipos))
	for i := range tipos {
		resp[i] = *tipoToResponse(&tipos[i])
	}
	return resp, nil
}

func (s *tipoProductoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.TipoProductoRequest) (*dto.TipoProductoResponse, error) {
	tipo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Tipo de producto")
	}
	tipo.Nombre = req.Nombre
	if err := s.repo.Update(ctx, tipo); err != nil {
		return nil, err
	}
	return tipoToResponse(tipo), nil
}

// Eliminar refuses while products still reference the type.
func (s *tipoProductoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.NewNotFound("Tipo de producto")
	}
	n, err := s.productoRepo.CountPorTipo(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.NewConflict("No se puede eliminar el tipo porque tiene productos asociados")
	}
	return s.repo.Delete(ctx, id)
}

func tipoToResponse(t *model.TipoProducto) *dto.TipoProductoResponse {
	return &dto.TipoProductoResponse{ID: t.ID.String(), Nombre: t.Nombre}
}
