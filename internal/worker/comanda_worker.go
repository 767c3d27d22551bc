package worker

// Processes comanda jobs from QueueComanda: renders the PDF receipt for a
// venta and, when the customer left an email, chains an email job with the
// PDF attached.

import (
	"context"
	"encoding/json"
	"fmt"

	"feriapos/internal/infra"
	"feriapos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ComandaJobPayload is the job envelope sent to QueueComanda.
type ComandaJobPayload struct {
	VentaID      string  `json:"venta_id"`
	ClienteEmail *string `json:"cliente_email,omitempty"`
}

type ComandaWorker struct {
	ventaRepo   repository.VentaRepository
	dispatcher  *Dispatcher
	storagePath string
}

func NewComandaWorker(ventaRepo repository.VentaRepository, dispatcher *Dispatcher, storagePath string) *ComandaWorker {
	return &ComandaWorker{
		ventaRepo:   ventaRepo,
		dispatcher:  dispatcher,
		storagePath: storagePath,
	}
}

func (w *ComandaWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ComandaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("comanda_worker: invalid payload")
		return nil // malformed payloads never succeed, do not retry
	}
	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("comanda_worker: invalid venta_id")
		return nil
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		return fmt.Errorf("comanda_worker: venta %s: %w", payload.VentaID, err)
	}

	pdfPath, err := infra.GenerateComandaPDF(venta, w.storagePath)
	if err != nil {
		return fmt.Errorf("comanda_worker: pdf: %w", err)
	}
	log.Info().Str("pdf", pdfPath).Str("venta_id", payload.VentaID).Msg("comanda_worker: PDF generated")

	if payload.ClienteEmail != nil && *payload.ClienteEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.ClienteEmail,
			Subject: "Comanda FeriaPOS",
			Body:    fmt.Sprintf("Adjunto encontrarás tu comanda.\nTotal: ₡%s", venta.Total.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *payload.ClienteEmail).Msg("comanda_worker: failed to enqueue email")
		}
	}
	return nil
}
