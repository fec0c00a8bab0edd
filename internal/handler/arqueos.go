package handler

import (
	"net/http"

	"comandapos/internal/dto"
	"comandapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ArqueosHandler struct{ svc service.ArqueoService }

func NewArqueosHandler(svc service.ArqueoService) *ArqueosHandler {
	return &ArqueosHandler{svc: svc}
}

// Abrir godoc
// @Summary Abre un arqueo de caja para el usuario autenticado
// @Tags arqueos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AbrirArqueoRequest true "Saldo inicial"
// @Success 201 {object} dto.ArqueoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/arqueos [post]
func (h *ArqueosHandler) Abrir(c *gin.Context) {
	id, ok := usuarioID(c)
	if !ok {
		return
	}
	var req dto.AbrirArqueoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Activo returns the authenticated user's open arqueo, if any.
func (h *ArqueosHandler) Activo(c *gin.Context) {
	id, ok := usuarioID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerAbiertoPorUsuario(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArqueosHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !puedeAcceder(c, resp.UsuarioID, "No tiene permisos para ver este arqueo") {
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArqueosHandler) ListarAbiertos(c *gin.Context) {
	resp, err := h.svc.ObtenerAbiertos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Propios lists every arqueo belonging to the authenticated user.
func (h *ArqueosHandler) Propios(c *gin.Context) {
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

func (h *ArqueosHandler) ListarTodos(c *gin.Context) {
	resp, err := h.svc.ObtenerTodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cerrar godoc
// @Summary Cierra un arqueo registrando los totales declarados
// @Tags arqueos
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID de arqueo"
// @Param body body dto.CerrarArqueoRequest true "Totales de cierre"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/arqueos/{id}/cerrar [put]
func (h *ArqueosHandler) Cerrar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CerrarArqueoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	arqueo, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !puedeAcceder(c, arqueo.UsuarioID, "No tiene permisos para cerrar este arqueo") {
		return
	}
	if err := h.svc.Cerrar(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArqueosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarArqueoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarAdmin(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArqueosHandler) Eliminar(c *gin.Context) {
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
