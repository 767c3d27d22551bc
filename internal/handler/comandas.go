package handler

import (
	"net/http"
	"os"

	"feriapos/internal/apierror"
	"feriapos/internal/infra"
	"feriapos/internal/service"
	"feriapos/internal/worker"

	"github.com/gin-gonic/gin"
)

type ComandaHandler struct {
	ventas      service.VentaService
	dispatcher  *worker.Dispatcher
	storagePath string
}

func NewComandaHandler(ventas service.VentaService, dispatcher *worker.Dispatcher, storagePath string) *ComandaHandler {
	return &ComandaHandler{ventas: ventas, dispatcher: dispatcher, storagePath: storagePath}
}

// Obtener godoc
// @Summary Descarga la comanda PDF de una venta
// @Tags comandas
// @Produce application/pdf
// @Param venta_id path string true "UUID de la venta"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/comandas/{venta_id} [get]
func (h *ComandaHandler) Obtener(c *gin.Context) {
	ventaID, ok := parseIDParam(c, "venta_id")
	if !ok {
		return
	}
	if _, err := h.ventas.ObtenerVenta(c.Request.Context(), ventaID); err != nil {
		respondError(c, err)
		return
	}

	path := infra.ComandaPDFPath(ventaID.String(), h.storagePath)
	if _, err := os.Stat(path); err != nil {
		// The worker has not produced it yet (or the job was lost);
		// re-enqueue so a retry picks it up.
		if h.dispatcher != nil {
			_ = h.dispatcher.EnqueueComanda(c.Request.Context(), worker.ComandaJobPayload{
				VentaID: ventaID.String(),
			})
		}
		c.JSON(http.StatusNotFound, apierror.New("La comanda aún no está disponible"))
		return
	}
	c.File(path)
}
