package service

import (
	"context"

	"comandapos/internal/domain"
	"comandapos/internal/dto"
	"comandapos/internal/model"
	"comandapos/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	ObtenerTodos(ctx context.Context) ([]dto.ProductoResponse, error)
	ObtenerActivos(ctx context.Context) ([]dto.ProductoResponse, error)
	ObtenerPorTipo(ctx context.Context, tipoID uuid.UUID) ([]dto.ProductoResponse, error)
	Buscar(ctx context.Context, texto string) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ConsultarPrecio(ctx context.Context, id uuid.UUID) (*dto.ConsultaPrecioResponse, error)
}

type productoService struct {
	repo     repository.ProductoRepository
	tipoRepo repository.TipoProductoRepository
}

func NewProductoService(repo repository.ProductoRepository, tipoRepo repository.TipoProductoRepository) ProductoService {
	return &productoService{repo: repo, tipoRepo: tipoRepo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	tipoID, err := uuid.Parse(req.TipoProductoID)
	if err != nil {
		return nil, domain.NewValidation("id_tipo_producto inválido")
	}
	tipo, err := s.tipoRepo.FindByID(ctx, tipoID)
	if err != nil {
		return nil, domain.NewNotFound("Tipo de producto")
	}
	if req.Precio.IsNegative() {
		return nil, domain.NewValidation("El precio no puede ser negativo")
	}

	producto := &model.Producto{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		Precio:         req.Precio,
		StockActual:    req.StockActual,
		TipoProductoID: tipoID,
		Activo:         true,
	}
	if err := s.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	producto.TipoProducto = tipo
	return productoToResponse(producto), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Producto")
	}
	return productoToResponse(producto), nil
}

func (s *productoService) ObtenerTodos(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

func (s *productoService) ObtenerActivos(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

func (s *productoService) ObtenerPorTipo(ctx context.Context, tipoID uuid.UUID) ([]dto.ProductoResponse, error) {
	if _, err := s.tipoRepo.FindByID(ctx, tipoID); err != nil {
		return nil, domain.NewNotFound("Tipo de producto")
	}
	productos, err := s.repo.ListPorTipo(ctx, tipoID)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

func (s *productoService) Buscar(ctx context.Context, texto string) ([]dto.ProductoResponse, error) {
	if texto == "" {
		return nil, domain.NewValidation("Debe indicar un texto de búsqueda")
	}
	productos, err := s.repo.BuscarPorNombre(ctx, texto)
	if err != nil {
		return nil, err
	}
	return productosToResponse(productos), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Producto")
	}

	if req.Nombre != nil {
		producto.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		producto.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, domain.NewValidation("El precio no puede ser negativo")
		}
		producto.Precio = *req.Precio
	}
	if req.StockActual != nil {
		producto.StockActual = *req.StockActual
	}
	if req.TipoProductoID != nil {
		tipoID, err := uuid.Parse(*req.TipoProductoID)
		if err != nil {
			return nil, domain.NewValidation("id_tipo_producto inválido")
		}
		if _, err := s.tipoRepo.FindByID(ctx, tipoID); err != nil {
			return nil, domain.NewNotFound("Tipo de producto")
		}
		producto.TipoProductoID = tipoID
		producto.TipoProducto = nil
	}
	if req.Activo != nil {
		producto.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

// AjustarStock corrects the stock_actual cache directly, without a ledger
// entry. Meant for manual reconciliation, not day to day movements.
func (s *productoService) AjustarStock(ctx context.Context, id uuid.UUID, delta int) (*dto.ProductoResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, domain.NewNotFound("Producto")
	}
	if err := s.repo.AjustarStock(ctx, id, delta); err != nil {
		return nil, err
	}
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.NewNotFound("Producto")
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.NewNotFound("Producto")
	}
	return s.repo.Reactivar(ctx, id)
}

// Eliminar removes the row for good. Desactivar is the recommended path; this
// exists for products created by mistake, before any movement references them.
func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.NewNotFound("Producto")
	}
	return s.repo.Delete(ctx, id)
}

func (s *productoService) ConsultarPrecio(ctx context.Context, id uuid.UUID) (*dto.ConsultaPrecioResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Producto")
	}
	return &dto.ConsultaPrecioResponse{
		Nombre:          producto.Nombre,
		Precio:          producto.Precio,
		StockDisponible: producto.StockActual,
	}, nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:             p.ID.String(),
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Precio:         p.Precio,
		StockActual:    p.StockActual,
		TipoProductoID: p.TipoProductoID.String(),
		Activo:         p.Activo,
	}
	if p.TipoProducto != nil {
		resp.NombreTipo = p.TipoProducto.Nombre
	}
	return resp
}

func productosToResponse(productos []model.Producto) []dto.ProductoResponse {
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = *productoToResponse(&productos[i])
	}
	return resp
}
