package handler

import (
	"net/http"

	"feriapos/internal/dto"
	"feriapos/internal/service"

	"github.com/gin-gonic/gin"
)

type EventoHandler struct{ svc service.EventoService }

func NewEventoHandler(svc service.EventoService) *EventoHandler {
	return &EventoHandler{svc: svc}
}

// Crear godoc
// @Summary Crea un evento
// @Tags eventos
// @Accept json
// @Produce json
// @Param body body dto.CrearEventoRequest true "Datos del evento"
// @Success 201 {object} dto.EventoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/eventos [post]
func (h *EventoHandler) Crear(c *gin.Context) {
	var req dto.CrearEventoRequest
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

func (h *EventoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Activo returns the active evento covering today, 404 when none.
func (h *EventoHandler) Activo(c *gin.Context) {
	resp, err := h.svc.Activo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventoHandler) Editar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EditarEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Editar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventoHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarEstadoEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventoHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
