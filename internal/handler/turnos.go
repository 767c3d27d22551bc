package handler

import (
	"net/http"

	"feriapos/internal/dto"
	"feriapos/internal/service"

	"github.com/gin-gonic/gin"
)

type TurnoHandler struct{ svc service.TurnoService }

func NewTurnoHandler(svc service.TurnoService) *TurnoHandler { return &TurnoHandler{svc: svc} }

// Crear godoc
// @Summary Crea un turno con sus asignaciones iniciales
// @Tags turnos
// @Accept json
// @Produce json
// @Param body body dto.CrearTurnoRequest true "Datos del turno"
// @Success 201 {object} dto.TurnoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/turnos [post]
func (h *TurnoHandler) Crear(c *gin.Context) {
	var req dto.CrearTurnoRequest
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

func (h *TurnoHandler) ListarPorEvento(c *gin.Context) {
	eventoID, ok := parseIDParam(c, "evento_id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorEvento(c.Request.Context(), eventoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TurnoHandler) Editar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EditarTurnoRequest
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

// Eliminar removes the turno and all its asignaciones.
func (h *TurnoHandler) Eliminar(c *gin.Context) {
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

// Asignar godoc
// @Summary Asigna un usuario a un turno
// @Tags turnos
// @Accept json
// @Produce json
// @Param body body dto.AsignarUsuarioRequest true "Asignación"
// @Success 201 {object} dto.AsignacionResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/turnos/asignar [post]
func (h *TurnoHandler) Asignar(c *gin.Context) {
	var req dto.AsignarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Asignar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TurnoHandler) ListarAsignaciones(c *gin.Context) {
	turnoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarAsignaciones(c.Request.Context(), turnoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TurnoHandler) EditarRolAsignado(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EditarRolAsignadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EditarRolAsignado(c.Request.Context(), id, req.RolAsignado); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TurnoHandler) EliminarAsignacion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarAsignacion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
