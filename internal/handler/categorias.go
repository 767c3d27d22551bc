package handler

import (
	"net/http"

	"feriapos/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriaHandler struct{ svc service.ProductoService }

func NewCategoriaHandler(svc service.ProductoService) *CategoriaHandler {
	return &CategoriaHandler{svc: svc}
}

// Listar godoc
// @Summary Lista las categorías del catálogo
// @Tags categorias
// @Produce json
// @Success 200 {array} dto.CategoriaResponse
// @Router /v1/categorias [get]
func (h *CategoriaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarCategorias(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
