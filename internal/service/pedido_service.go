package service

import (
	"context"
	"time"

	"comandapos/internal/domain"
	"comandapos/internal/dto"
	"comandapos/internal/model"
	"comandapos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PedidoService manages orders and their lines. Mutating an order's lines does
// not touch its Total; callers invoke RecalcularTotal when they want the
// header synced with the lines.
type PedidoService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	ObtenerTodos(ctx context.Context) ([]dto.PedidoResponse, error)
	ObtenerPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.PedidoResponse, error)
	ObtenerPorArqueo(ctx context.Context, arqueoID uuid.UUID) ([]dto.PedidoResponse, error)
	ObtenerPorEstado(ctx context.Context, estado string) ([]dto.PedidoResponse, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.PedidoResponse, error)
	ActualizarAdmin(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	RecalcularTotal(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)

	CrearDetalle(ctx context.Context, req dto.CrearDetalleRequest) (*dto.DetalleResponse, error)
	ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.DetalleResponse, error)
	ObtenerDetalles(ctx context.Context, pedidoID uuid.UUID) ([]dto.DetalleResponse, error)
	ActualizarDetalle(ctx context.Context, id uuid.UUID, req dto.ActualizarDetalleRequest) (*dto.DetalleResponse, error)
	EliminarDetalle(ctx context.Context, id uuid.UUID) error
}

type pedidoService struct {
	repo         repository.PedidoRepository
	arqueoRepo   repository.ArqueoRepository
	productoRepo repository.ProductoRepository
}

func NewPedidoService(repo repository.PedidoRepository, arqueoRepo repository.ArqueoRepository, productoRepo repository.ProductoRepository) PedidoService {
	return &pedidoService{repo: repo, arqueoRepo: arqueoRepo, productoRepo: productoRepo}
}

// ── Orders ────────────────────────────────────────────────────────────────────

func (s *pedidoService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	arqueoID, err := uuid.Parse(req.ArqueoID)
	if err != nil {
		return nil, domain.NewValidation("id_arqueo inválido")
	}
	if _, err := s.arqueoRepo.FindByID(ctx, arqueoID); err != nil {
		return nil, domain.NewNotFound("Arqueo de caja")
	}

	estado := req.Estado
	if estado == "" {
		estado = model.EstadoPendiente
	}
	if !model.EstadoValido(estado) {
		return nil, domain.NewValidation("Estado de pedido inválido")
	}

	pedido := &model.Pedido{
		UsuarioID:   usuarioID,
		ArqueoID:    arqueoID,
		FechaPedido: time.Now(),
		Total:       req.Total,
		FormaPago:   req.FormaPago,
		Estado:      estado,
	}
	if err := s.repo.Create(ctx, pedido); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Pedido")
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) ObtenerTodos(ctx context.Context) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return pedidosToResponse(pedidos), nil
}

func (s *pedidoService) ObtenerPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.ListPorUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return pedidosToResponse(pedidos), nil
}

func (s *pedidoService) ObtenerPorArqueo(ctx context.Context, arqueoID uuid.UUID) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.ListPorArqueo(ctx, arqueoID)
	if err != nil {
		return nil, err
	}
	return pedidosToResponse(pedidos), nil
}

func (s *pedidoService) ObtenerPorEstado(ctx context.Context, estado string) ([]dto.PedidoResponse, error) {
	if !model.EstadoValido(estado) {
		return nil, domain.NewValidation("Estado de pedido inválido")
	}
	pedidos, err := s.repo.ListPorEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return pedidosToResponse(pedidos), nil
}

// ActualizarEstado admits any member of the estado enum; transitions are not
// otherwise restricted.
func (s *pedidoService) ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.PedidoResponse, error) {
	if !model.EstadoValido(estado) {
		return nil, domain.NewValidation("Estado de pedido inválido")
	}
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Pedido")
	}
	if err := s.repo.UpdateEstado(ctx, id, estado); err != nil {
		return nil, err
	}
	pedido.Estado = estado
	return pedidoToResponse(pedido), nil
}

// ActualizarAdmin rewrites the order header wholesale, including its owner.
func (s *pedidoService) ActualizarAdmin(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Pedido")
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, domain.NewValidation("id_usuario inválido")
	}
	arqueoID, err := uuid.Parse(req.ArqueoID)
	if err != nil {
		return nil, domain.NewValidation("id_arqueo inválido")
	}
	fecha, err := time.Parse(time.RFC3339, req.FechaPedido)
	if err != nil {
		return nil, domain.NewValidation("fecha_pedido inválida")
	}
	if !model.EstadoValido(req.Estado) {
		return nil, domain.NewValidation("Estado de pedido inválido")
	}

	pedido.UsuarioID = usuarioID
	pedido.ArqueoID = arqueoID
	pedido.FechaPedido = fecha
	pedido.Total = req.Total
	pedido.Estado = req.Estado
	if err := s.repo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido), nil
}

// Cancelar marks the order Cancelado. Delivered orders are final.
func (s *pedidoService) Cancelar(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Pedido")
	}
	if pedido.Estado == model.EstadoEntregado {
		return nil, domain.NewConflict("No se puede cancelar un pedido ya entregado")
	}
	if err := s.repo.UpdateEstado(ctx, id, model.EstadoCancelado); err != nil {
		return nil, err
	}
	pedido.Estado = model.EstadoCancelado
	return pedidoToResponse(pedido), nil
}

// RecalcularTotal sets the header total to the sum of cantidad * precio_unitario
// over the order's lines.
func (s *pedidoService) RecalcularTotal(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Pedido")
	}
	total := decimal.Zero
	for _, d := range pedido.Detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	pedido.Total = total
	if err := s.repo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido), nil
}

// ── Order lines ───────────────────────────────────────────────────────────────

func (s *pedidoService) CrearDetalle(ctx context.Context, req dto.CrearDetalleRequest) (*dto.DetalleResponse, error) {
	pedidoID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		return nil, domain.NewValidation("id_pedido inválido")
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, domain.NewValidation("id_producto inválido")
	}
	if _, err := s.repo.FindByID(ctx, pedidoID); err != nil {
		return nil, domain.NewNotFound("Pedido")
	}
	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, domain.NewNotFound("Producto")
	}

	detalle := &model.DetallePedido{
		PedidoID:       pedidoID,
		ProductoID:     productoID,
		Cantidad:       req.Cantidad,
		PrecioUnitario: req.PrecioUnitario,
	}
	if err := s.repo.CreateDetalle(ctx, detalle); err != nil {
		return nil, err
	}

	resp := detalleToResponse(detalle)
	resp.NombreProducto = producto.Nombre
	return resp, nil
}

func (s *pedidoService) ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.DetalleResponse, error) {
	detalle, err := s.repo.FindDetalleByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Detalle de pedido")
	}
	return detalleToResponse(detalle), nil
}

func (s *pedidoService) ObtenerDetalles(ctx context.Context, pedidoID uuid.UUID) ([]dto.DetalleResponse, error) {
	if _, err := s.repo.FindByID(ctx, pedidoID); err != nil {
		return nil, domain.NewNotFound("Pedido")
	}
	detalles, err := s.repo.ListDetalles(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DetalleResponse, len(detalles))
	for i := range detalles {
		resp[i] = *detalleToResponse(&detalles[i])
	}
	return resp, nil
}

func (s *pedidoService) ActualizarDetalle(ctx context.Context, id uuid.UUID, req dto.ActualizarDetalleRequest) (*dto.DetalleResponse, error) {
	detalle, err := s.repo.FindDetalleByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Detalle de pedido")
	}
	detalle.Cantidad = req.Cantidad
	detalle.PrecioUnitario = req.PrecioUnitario
	if err := s.repo.UpdateDetalle(ctx, detalle); err != nil {
		return nil, err
	}
	return detalleToResponse(detalle), nil
}

func (s *pedidoService) EliminarDetalle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindDetalleByID(ctx, id); err != nil {
		return domain.NewNotFound("Detalle de pedido")
	}
	return s.repo.DeleteDetalle(ctx, id)
}

// ── Mapping ───────────────────────────────────────────────────────────────────

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:          p.ID.String(),
		UsuarioID:   p.UsuarioID.String(),
		ArqueoID:    p.ArqueoID.String(),
		FechaPedido: p.FechaPedido.Format(time.RFC3339),
		Total:       p.Total,
		FormaPago:   p.FormaPago,
		Estado:      p.Estado,
	}
	for i := range p.Detalles {
		resp.Detalles = append(resp.Detalles, *detalleToResponse(&p.Detalles[i]))
	}
	return resp
}

func pedidosToResponse(pedidos []model.Pedido) []dto.PedidoResponse {
	resp := make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		resp[i] = *pedidoToResponse(&pedidos[i])
	}
	return resp
}

func detalleToResponse(d *model.DetallePedido) *dto.DetalleResponse {
	resp := &dto.DetalleResponse{
		ID:             d.ID.String(),
		PedidoID:       d.PedidoID.String(),
		ProductoID:     d.ProductoID.String(),
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
	}
	if d.Producto != nil {
		resp.NombreProducto = d.Producto.Nombre
	}
	return resp
}
