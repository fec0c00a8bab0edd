package handler

import (
	"net/http"
	"time"

	"comandapos/internal/apierror"
	"comandapos/internal/dto"
	"comandapos/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// Crear godoc
// @Summary Registra un movimiento de inventario
// @Tags inventario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearMovimientoInventarioRequest true "Movimiento"
// @Success 201 {object} dto.MovimientoInventarioResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/inventario/movimientos [post]
func (h *InventarioHandler) Crear(c *gin.Context) {
	var req dto.CrearMovimientoInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventarioHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ObtenerTodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) PorProducto(c *gin.Context) {
	productoID, ok := parseUUIDParam(c, "productoId")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorProducto(c.Request.Context(), productoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) PorTipo(c *gin.Context) {
	resp, err := h.svc.ObtenerPorTipo(c.Request.Context(), c.Param("tipo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorRango filters movements between fecha_inicio and fecha_fin (inclusive).
func (h *InventarioHandler) PorRango(c *gin.Context) {
	var filter dto.RangoFechasFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros de fecha inválidos"))
		return
	}
	desde, err := parseFecha(filter.FechaInicio)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha_inicio inválida"))
		return
	}
	hasta, err := parseFecha(filter.FechaFin)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha_fin inválida"))
		return
	}
	resp, err := h.svc.ObtenerPorRango(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Balance godoc
// @Summary Balance de inventario de un producto
// @Tags inventario
// @Produce json
// @Security BearerAuth
// @Param productoId path string true "ID de producto"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/inventario/balance/{productoId} [get]
func (h *InventarioHandler) Balance(c *gin.Context) {
	productoID, ok := parseUUIDParam(c, "productoId")
	if !ok {
		return
	}
	resp, err := h.svc.Balance(c.Request.Context(), productoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarMovimientoInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
