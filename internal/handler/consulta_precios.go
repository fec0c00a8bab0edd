package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"comandapos/internal/apierror"
	"comandapos/internal/dto"
	"comandapos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const precioCacheTTL = 4 * time.Hour

// ConsultaPreciosHandler serves the public price check endpoint.
// No authentication required and no side effects.
type ConsultaPreciosHandler struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewConsultaPreciosHandler(repo repository.ProductoRepository, rdb *redis.Client) *ConsultaPreciosHandler {
	return &ConsultaPreciosHandler{repo: repo, rdb: rdb}
}

// GetPrecio godoc
// @Summary Consulta de precio de un producto (sin autenticacion)
// @Tags precio
// @Produce json
// @Param id path string true "ID de producto"
// @Success 200 {object} dto.ConsultaPrecioResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/precio/{id} [get]
func (h *ConsultaPreciosHandler) GetPrecio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	ctx := c.Request.Context()
	cacheKey := "precio:" + id.String()

	// Try Redis first; fall through to the DB on any miss or decode error.
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ConsultaPrecioResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	producto, err := h.repo.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	resp := dto.ConsultaPrecioResponse{
		Nombre:          producto.Nombre,
		Precio:          producto.Precio,
		StockDisponible: producto.StockActual,
	}

	// Populate cache best effort, ignore errors.
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, precioCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
