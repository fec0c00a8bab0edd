package service

import (
	"context"
	"time"

	"comandapos/internal/domain"
	"comandapos/internal/dto"
	"comandapos/internal/model"
	"comandapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventarioService records stock-affecting events and answers "how much is in
// stock". The movement ledger is the authoritative stock figure; every accepted
// write also maintains the productos.stock_actual cache inside the same
// transaction so the column tracks the ledger.
type InventarioService interface {
	Crear(ctx context.Context, req dto.CrearMovimientoInventarioRequest) (*dto.MovimientoInventarioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MovimientoInventarioResponse, error)
	ObtenerTodos(ctx context.Context) ([]dto.MovimientoInventarioResponse, error)
	ObtenerPorProducto(ctx context.Context, productoID uuid.UUID) ([]dto.MovimientoInventarioResponse, error)
	ObtenerPorTipo(ctx context.Context, tipo string) ([]dto.MovimientoInventarioResponse, error)
	ObtenerPorRango(ctx context.Context, desde, hasta time.Time) ([]dto.MovimientoInventarioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMovimientoInventarioRequest) (*dto.MovimientoInventarioResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Balance(ctx context.Context, productoID uuid.UUID) (*dto.BalanceResponse, error)
}

type inventarioService struct {
	repo         repository.InventarioRepository
	productoRepo repository.ProductoRepository
}

func NewInventarioService(repo repository.InventarioRepository, productoRepo repository.ProductoRepository) InventarioService {
	return &inventarioService{repo: repo, productoRepo: productoRepo}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Egresos must not drive the ledger balance below zero. The balance read and
// the insert commit atomically.

func (s *inventarioService) Crear(ctx context.Context, req dto.CrearMovimientoInventarioRequest) (*dto.MovimientoInventarioResponse, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, domain.NewValidation("id_producto inválido")
	}
	if req.Cantidad <= 0 {
		return nil, domain.NewValidation("La cantidad debe ser un número positivo")
	}
	if req.Tipo != model.TipoIngreso && req.Tipo != model.TipoEgreso {
		return nil, domain.NewValidation("El tipo de movimiento debe ser 'Ingreso' o 'Egreso'")
	}

	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, domain.NewNotFound("Producto")
	}

	fecha, err := parseFechaMovimiento(req.Fecha)
	if err != nil {
		return nil, err
	}

	mov := &model.MovimientoInventario{
		ProductoID:    productoID,
		Tipo:          req.Tipo,
		Cantidad:      req.Cantidad,
		Fecha:         fecha,
		Observaciones: req.Observaciones,
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if req.Tipo == model.TipoEgreso {
			balance, err := s.balance(ctx, tx, productoID)
			if err != nil {
				return err
			}
			if balance.Balance < req.Cantidad {
				return domain.NewConflict("Stock insuficiente para realizar el egreso")
			}
		}
		if err := s.create(ctx, tx, mov); err != nil {
			return err
		}
		return s.ajustarCache(ctx, tx, productoID, deltaMovimiento(req.Tipo, req.Cantidad))
	})
	if err != nil {
		return nil, err
	}

	resp := movimientoInventarioToResponse(mov)
	resp.NombreProducto = producto.Nombre
	return resp, nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// The sufficiency check accounts for the delta versus the existing movement:
//   - Ingreso → Egreso: the full new quantity is checked against the balance.
//   - Egreso with a larger quantity: only the increment is checked.
//   - Quantity decreasing, Egreso → Ingreso, Ingreso → Ingreso: no check.

func (s *inventarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMovimientoInventarioRequest) (*dto.MovimientoInventarioResponse, error) {
	existente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Movimiento")
	}

	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, domain.NewValidation("id_producto inválido")
	}
	if req.Cantidad <= 0 {
		return nil, domain.NewValidation("La cantidad debe ser un número positivo")
	}
	if req.Tipo != model.TipoIngreso && req.Tipo != model.TipoEgreso {
		return nil, domain.NewValidation("El tipo de movimiento debe ser 'Ingreso' o 'Egreso'")
	}

	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, domain.NewNotFound("Producto")
	}

	fecha := existente.Fecha
	if req.Fecha != nil {
		if fecha, err = parseFechaMovimiento(req.Fecha); err != nil {
			return nil, err
		}
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if req.Tipo == model.TipoEgreso {
			if existente.Tipo == model.TipoIngreso ||
				(existente.Tipo == model.TipoEgreso && req.Cantidad > existente.Cantidad) {
				diferencia := req.Cantidad
				if existente.Tipo == model.TipoEgreso {
					diferencia = req.Cantidad - existente.Cantidad
				}
				balance, err := s.balance(ctx, tx, productoID)
				if err != nil {
					return err
				}
				if balance.Balance < diferencia {
					return domain.NewConflict("Stock insuficiente para realizar la modificación")
				}
			}
		}

		// Reverse the old movement's effect on the cache, then apply the new
		// one. When the movement switches products each cache gets its own
		// half of the correction.
		deltaViejo := deltaMovimiento(existente.Tipo, existente.Cantidad)
		deltaNuevo := deltaMovimiento(req.Tipo, req.Cantidad)
		origenID := existente.ProductoID

		existente.ProductoID = productoID
		existente.Tipo = req.Tipo
		existente.Cantidad = req.Cantidad
		existente.Fecha = fecha
		existente.Observaciones = req.Observaciones
		if err := s.update(ctx, tx, existente); err != nil {
			return err
		}
		if origenID != productoID {
			if err := s.ajustarCache(ctx, tx, origenID, -deltaViejo); err != nil {
				return err
			}
			return s.ajustarCache(ctx, tx, productoID, deltaNuevo)
		}
		if delta := deltaNuevo - deltaViejo; delta != 0 {
			return s.ajustarCache(ctx, tx, productoID, delta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := movimientoInventarioToResponse(existente)
	resp.NombreProducto = producto.Nombre
	return resp, nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────
// Removing an Ingreso must not drive the historical balance negative; Egreso
// deletions are unchecked.

func (s *inventarioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	mov, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.NewNotFound("Movimiento")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if mov.Tipo == model.TipoIngreso {
			balance, err := s.balance(ctx, tx, mov.ProductoID)
			if err != nil {
				return err
			}
			if balance.Balance < mov.Cantidad {
				return domain.NewConflict("No se puede eliminar este ingreso porque causaría un stock negativo")
			}
		}
		if err := s.delete(ctx, tx, id); err != nil {
			return err
		}
		return s.ajustarCache(ctx, tx, mov.ProductoID, -deltaMovimiento(mov.Tipo, mov.Cantidad))
	})
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *inventarioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MovimientoInventarioResponse, error) {
	mov, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewNotFound("Movimiento")
	}
	return movimientoInventarioToResponse(mov), nil
}

func (s *inventarioService) ObtenerTodos(ctx context.Context) ([]dto.MovimientoInventarioResponse, error) {
	movs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return movimientosInventarioToResponse(movs), nil
}

func (s *inventarioService) ObtenerPorProducto(ctx context.Context, productoID uuid.UUID) ([]dto.MovimientoInventarioResponse, error) {
	if _, err := s.productoRepo.FindByID(ctx, productoID); err != nil {
		return nil, domain.NewNotFound("Producto")
	}
	movs, err := s.repo.ListPorProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	return movimientosInventarioToResponse(movs), nil
}

func (s *inventarioService) ObtenerPorTipo(ctx context.Context, tipo string) ([]dto.MovimientoInventarioResponse, error) {
	if tipo != model.TipoIngreso && tipo != model.TipoEgreso {
		return nil, domain.NewValidation("El tipo de movimiento debe ser 'Ingreso' o 'Egreso'")
	}
	movs, err := s.repo.ListPorTipo(ctx, tipo)
	if err != nil {
		return nil, err
	}
	return movimientosInventarioToResponse(movs), nil
}

func (s *inventarioService) ObtenerPorRango(ctx context.Context, desde, hasta time.Time) ([]dto.MovimientoInventarioResponse, error) {
	movs, err := s.repo.ListPorRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return movimientosInventarioToResponse(movs), nil
}

// Balance is a read-time aggregate over the movement log — always consistent
// with the ledger by construction, independent of the stock_actual cache.
func (s *inventarioService) Balance(ctx context.Context, productoID uuid.UUID) (*dto.BalanceResponse, error) {
	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, domain.NewNotFound("Producto")
	}
	balance, err := s.repo.Balance(ctx, productoID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		ProductoID:     productoID.String(),
		NombreProducto: producto.Nombre,
		TotalIngresos:  balance.TotalIngresos,
		TotalEgresos:   balance.TotalEgresos,
		BalanceActual:  balance.Balance,
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *inventarioService) balance(ctx context.Context, tx *gorm.DB, productoID uuid.UUID) (*model.BalanceInventario, error) {
	if tx == nil {
		return s.repo.Balance(ctx, productoID)
	}
	return s.repo.BalanceTx(tx, productoID)
}

func (s *inventarioService) create(ctx context.Context, tx *gorm.DB, m *model.MovimientoInventario) error {
	if tx == nil {
		return s.repo.Create(ctx, m)
	}
	return s.repo.CreateTx(tx, m)
}

func (s *inventarioService) update(ctx context.Context, tx *gorm.DB, m *model.MovimientoInventario) error {
	if tx == nil {
		return s.repo.Update(ctx, m)
	}
	return s.repo.UpdateTx(tx, m)
}

func (s *inventarioService) delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if tx == nil {
		return s.repo.Delete(ctx, id)
	}
	return s.repo.DeleteTx(tx, id)
}

func (s *inventarioService) ajustarCache(ctx context.Context, tx *gorm.DB, productoID uuid.UUID, delta int) error {
	if tx == nil {
		return s.productoRepo.AjustarStock(ctx, productoID, delta)
	}
	return s.productoRepo.AjustarStockTx(tx, productoID, delta)
}

// deltaMovimiento returns the signed effect of a movement on the balance.
func deltaMovimiento(tipo string, cantidad int) int {
	if tipo == model.TipoEgreso {
		return -cantidad
	}
	return cantidad
}

func parseFechaMovimiento(fecha *string) (time.Time, error) {
	if fecha == nil || *fecha == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *fecha); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidation("Fecha inválida")
}

func movimientoInventarioToResponse(m *model.MovimientoInventario) *dto.MovimientoInventarioResponse {
	resp := &dto.MovimientoInventarioResponse{
		ID:            m.ID.String(),
		ProductoID:    m.ProductoID.String(),
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		Fecha:         m.Fecha.Format(time.RFC3339),
		Observaciones: m.Observaciones,
	}
	if m.Producto != nil {
		resp.NombreProducto = m.Producto.Nombre
	}
	return resp
}

func movimientosInventarioToResponse(movs []model.MovimientoInventario) []dto.MovimientoInventarioResponse {
	resp := make([]dto.MovimientoInventarioResponse, len(movs))
	for i := range movs {
		resp[i] = *movimientoInventarioToResponse(&movs[i])
	}
	return resp
}
