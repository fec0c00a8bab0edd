package handler

import (
	"net/http"

	"comandapos/internal/dto"
	"comandapos/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Crear godoc
// @Summary Crea un pedido contra un arqueo
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearPedidoRequest true "Pedido"
// @Success 201 {object} dto.PedidoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/pedidos [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	id, ok := usuarioID(c)
	if !ok {
		return
	}
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !puedeAcceder(c, resp.UsuarioID, "No tiene permisos para ver este pedido") {
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ObtenerTodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Propios lists the authenticated user's orders.
func (h *PedidosHandler) Propios(c *gin.Context) {
	id, ok := usuarioID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorUsuario(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) PorArqueo(c *gin.Context) {
	arqueoID, ok := parseUUIDParam(c, "arqueoId")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorArqueo(c.Request.Context(), arqueoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) PorEstado(c *gin.Context) {
	resp, err := h.svc.ObtenerPorEstado(c.Request.Context(), c.Param("estado"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarEstado godoc
// @Summary Cambia el estado de un pedido
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de pedido"
// @Param body body dto.ActualizarEstadoRequest true "Nuevo estado"
// @Success 200 {object} dto.PedidoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/pedidos/{id}/estado [put]
func (h *PedidosHandler) ActualizarEstado(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarAdmin(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar godoc
// @Summary Cancela un pedido no entregado
// @Tags pedidos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de pedido"
// @Success 200 {object} dto.PedidoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/pedidos/{id}/cancelar [put]
func (h *PedidosHandler) Cancelar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	pedido, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !puedeAcceder(c, pedido.UsuarioID, "No tiene permisos para cancelar este pedido") {
		return
	}
	resp, err := h.svc.Cancelar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) RecalcularTotal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.RecalcularTotal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Detalles ─────────────────────────────────────────────────────────────────

func (h *PedidosHandler) CrearDetalle(c *gin.Context) {
	var req dto.CrearDetalleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearDetalle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) ObtenerDetalle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) ListarDetalles(c *gin.Context) {
	pedidoID, ok := parseUUIDParam(c, "pedidoId")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerDetalles(c.Request.Context(), pedidoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) ActualizarDetalle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarDetalleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarDetalle(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) EliminarDetalle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarDetalle(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
