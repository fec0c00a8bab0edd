package handler

import (
	"net/http"

	"comandapos/internal/dto"
	"comandapos/internal/service"

	"github.com/gin-gonic/gin"
)

type MovimientosCajaHandler struct{ svc service.MovimientoCajaService }

func NewMovimientosCajaHandler(svc service.MovimientoCajaService) *MovimientosCajaHandler {
	return &MovimientosCajaHandler{svc: svc}
}

// Crear godoc
// @Summary Registra un ingreso o egreso de caja
// @Tags movimientos-caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.MovimientoCajaRequest true "Movimiento"
// @Success 201 {object} dto.MovimientoCajaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/movimientos-caja [post]
func (h *MovimientosCajaHandler) Crear(c *gin.Context) {
	var req dto.MovimientoCajaRequest
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

func (h *MovimientosCajaHandler) Obtener(c *gin.Context) {
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

// PorArqueo lists the movements of one arqueo ordered by fecha.
func (h *MovimientosCajaHandler) PorArqueo(c *gin.Context) {
	arqueoID, ok := parseUUIDParam(c, "arqueoId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorArqueo(c.Request.Context(), arqueoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovimientosCajaHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarMovimientoCajaRequest
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

func (h *MovimientosCajaHandler) Eliminar(c *gin.Context) {
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
