package handler

import (
	"net/http"

	"comandapos/internal/dto"
	"comandapos/internal/service"

	"github.com/gin-gonic/gin"
)

type TiposProductoHandler struct{ svc service.TipoProductoService }

func NewTiposProductoHandler(svc service.TipoProductoService) *TiposProductoHandler {
	return &TiposProductoHandler{svc: svc}
}

func (h *TiposProductoHandler) Crear(c *gin.Context) {
	var req dto.TipoProductoRequest
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

func (h *TiposProductoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ObtenerTodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TiposProductoHandler) Obtener(c *gin.Context) {
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

func (h *TiposProductoHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.TipoProductoRequest
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

// Eliminar godoc
// @Summary Elimina un tipo de producto sin productos asociados
// @Tags tipos-producto
// @Security BearerAuth
// @Param id path string true "ID de tipo"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/tipos-producto/{id} [delete]
func (h *TiposProductoHandler) Eliminar(c *gin.Context) {
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
