package handler

import (
	"net/http"

	"feriapos/internal/dto"
	"feriapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductoHandler struct{ svc service.ProductoService }

func NewProductoHandler(svc service.ProductoService) *ProductoHandler {
	return &ProductoHandler{svc: svc}
}

// Listar godoc
// @Summary Lista productos filtrados por estado
// @Tags productos
// @Produce json
// @Param estado query string false "activo | inactivo (default activo)"
// @Success 200 {array} dto.ProductoResponse
// @Router /v1/productos [get]
func (h *ProductoHandler) Listar(c *gin.Context) {
	estado := c.DefaultQuery("estado", "activo")
	resp, err := h.svc.Listar(c.Request.Context(), estado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductoHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
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

// Crear godoc
// @Summary Crea un producto del catálogo
// @Tags productos
// @Accept json
// @Produce json
// @Param body body dto.CrearProductoRequest true "Datos del producto"
// @Success 201 {object} dto.ProductoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/productos [post]
func (h *ProductoHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
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

// Actualizar applies a partial edit: only fields present in the body change.
func (h *ProductoHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
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

func (h *ProductoHandler) Desactivar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductoHandler) Restaurar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Restaurar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
