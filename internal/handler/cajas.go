package handler

import (
	"net/http"

	"feriapos/internal/dto"
	"feriapos/internal/middleware"
	"feriapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// usuarioIDFromClaims resolves the authenticated operator. The token always
// carries a valid UUID; a parse failure means a foreign token.
func usuarioIDFromClaims(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token inválido"})
		return uuid.Nil, false
	}
	return id, true
}

// Abrir godoc
// @Summary Abre una caja para el usuario autenticado
// @Tags caja
// @Accept json
// @Produce json
// @Param body body dto.AbrirCajaRequest true "Monto de apertura"
// @Success 201 {object} dto.CajaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/caja/abrir [post]
func (h *CajaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID, ok := usuarioIDFromClaims(c)
	if !ok {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Cerrar godoc
// @Summary Cierra la caja abierta del usuario autenticado
// @Tags caja
// @Accept json
// @Produce json
// @Param body body dto.CerrarCajaRequest true "Monto de cierre y observaciones"
// @Success 200 {object} dto.CajaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caja/cerrar [put]
func (h *CajaHandler) Cerrar(c *gin.Context) {
	var req dto.CerrarCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID, ok := usuarioIDFromClaims(c)
	if !ok {
		return
	}
	resp, err := h.svc.Cerrar(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actual returns the open caja of the authenticated user, or null when none.
func (h *CajaHandler) Actual(c *gin.Context) {
	usuarioID, ok := usuarioIDFromClaims(c)
	if !ok {
		return
	}
	resp, err := h.svc.Actual(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen returns the sale totals of the open caja grouped by forma de pago.
func (h *CajaHandler) Resumen(c *gin.Context) {
	usuarioID, ok := usuarioIDFromClaims(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reporte godoc
// @Summary Lista sesiones de caja con filtros opcionales
// @Tags caja
// @Produce json
// @Param fecha_inicio query string false "YYYY-MM-DD"
// @Param fecha_fin    query string false "YYYY-MM-DD"
// @Param usuario_id   query string false "UUID del usuario"
// @Success 200 {array} dto.ReporteCajaItem
// @Router /v1/caja/reporte [get]
func (h *CajaHandler) Reporte(c *gin.Context) {
	var filter dto.ReporteCajasFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Reporte(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
