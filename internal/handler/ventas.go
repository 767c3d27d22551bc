package handler

import (
	"net/http"

	"feriapos/internal/dto"
	"feriapos/internal/service"

	"github.com/gin-gonic/gin"
)

type VentaHandler struct{ svc service.VentaService }

func NewVentaHandler(svc service.VentaService) *VentaHandler { return &VentaHandler{svc: svc} }

// Registrar godoc
// @Summary Registra una venta contra la caja abierta del usuario
// @Tags ventas
// @Accept json
// @Produce json
// @Param body body dto.RegistrarVentaRequest true "Detalle de la venta"
// @Success 201 {object} dto.VentaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 412 {object} apierror.APIError
// @Router /v1/ventas [post]
func (h *VentaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID, ok := usuarioIDFromClaims(c)
	if !ok {
		return
	}
	resp, err := h.svc.RegistrarVenta(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarPorCaja returns the sales of one caja with their line items.
func (h *VentaHandler) ListarPorCaja(c *gin.Context) {
	cajaID, ok := parseIDParam(c, "caja_id")
	if !ok {
		return
	}
	ventas, err := h.svc.ListVentasPorCaja(c.Request.Context(), cajaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ventas)
}

// ReportePorEvento godoc
// @Summary Reporte de ventas de un evento en un rango de fechas
// @Tags reportes
// @Produce json
// @Param evento_id query string true "UUID del evento"
// @Param desde     query string true "YYYY-MM-DD"
// @Param hasta     query string true "YYYY-MM-DD"
// @Success 200 {object} dto.ReporteEventoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/reportes/ventas [get]
func (h *VentaHandler) ReportePorEvento(c *gin.Context) {
	var filter dto.ReporteEventoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ReportePorEvento(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
