package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"feriapos/internal/apierror"
	"feriapos/internal/dto"
	"feriapos/internal/model"
	"feriapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CajaService interface {
	Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirCajaRequest) (*dto.CajaResponse, error)
	Cerrar(ctx context.Context, usuarioID uuid.UUID, req dto.CerrarCajaRequest) (*dto.CajaResponse, error)
	Actual(ctx context.Context, usuarioID uuid.UUID) (*dto.CajaResponse, error)
	Resumen(ctx context.Context, usuarioID uuid.UUID) (*dto.ResumenCajaResponse, error)
	Reporte(ctx context.Context, filter dto.ReporteCajasFilter) ([]dto.ReporteCajaItem, error)
}

type cajaService struct {
	repo repository.CajaRepository
}

func NewCajaService(repo repository.CajaRepository) CajaService {
	return &cajaService{repo: repo}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *cajaService) Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirCajaRequest) (*dto.CajaResponse, error) {
	// Guard: one open caja per usuario. Only a confirmed "no rows" lets the
	// open proceed; any other lookup failure aborts.
	existing, err := s.repo.FindAbiertaPorUsuario(ctx, usuarioID)
	switch {
	case err == nil && existing != nil:
		return nil, apierror.Conflict("Ya existe una caja abierta para este usuario")
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apierror.Transaction("error consultando la caja", err)
	}
	if req.MontoApertura.IsNegative() {
		return nil, apierror.Validation("monto_apertura no puede ser negativo")
	}

	caja := &model.Caja{
		UsuarioID:     usuarioID,
		MontoApertura: req.MontoApertura,
		Estado:        "abierta",
		FechaApertura: time.Now(),
	}
	if err := s.repo.Create(ctx, caja); err != nil {
		return nil, apierror.Transaction("error abriendo la caja", err)
	}
	return cajaToResponse(caja), nil
}

// ── Cerrar ────────────────────────────────────────────────────────────────────

func (s *cajaService) Cerrar(ctx context.Context, usuarioID uuid.UUID, req dto.CerrarCajaRequest) (*dto.CajaResponse, error) {
	caja, err := s.repo.FindAbiertaPorUsuario(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("No hay una caja abierta para este usuario")
		}
		return nil, apierror.Transaction("error consultando la caja", err)
	}
	if req.MontoCierre.IsNegative() {
		return nil, apierror.Validation("monto_cierre no puede ser negativo")
	}

	ahora := time.Now()
	monto := req.MontoCierre
	caja.MontoCierre = &monto
	caja.FechaCierre = &ahora
	caja.Estado = "cerrada"
	if req.Observaciones != nil {
		caja.Observaciones = strings.TrimSpace(*req.Observaciones)
	}

	if err := s.repo.Update(ctx, caja); err != nil {
		return nil, apierror.Transaction("error cerrando la caja", err)
	}
	return cajaToResponse(caja), nil
}

// ── Actual ────────────────────────────────────────────────────────────────────
// No open caja is a normal state for this query, not an error: the response
// is simply null so the POS screen can offer the "abrir" action.

func (s *cajaService) Actual(ctx context.Context, usuarioID uuid.UUID) (*dto.CajaResponse, error) {
	caja, err := s.repo.FindAbiertaPorUsuario(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierror.Transaction("error consultando la caja", err)
	}
	return cajaToResponse(caja), nil
}

// ── Resumen ───────────────────────────────────────────────────────────────────
// Sale totals of the open session grouped by forma de pago.

func (s *cajaService) Resumen(ctx context.Context, usuarioID uuid.UUID) (*dto.ResumenCajaResponse, error) {
	caja, err := s.repo.FindAbiertaPorUsuario(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("No hay una caja abierta para este usuario")
		}
		return nil, apierror.Transaction("error consultando la caja", err)
	}

	sums, err := s.repo.SumVentasPorFormaPago(ctx, caja.ID)
	if err != nil {
		return nil, apierror.Transaction("error calculando el resumen", err)
	}

	resumen := dto.TotalesPorFormaPago{
		Efectivo: sums["efectivo"],
		Sinpe:    sums["sinpe"],
	}
	resumen.Total = resumen.Efectivo.Add(resumen.Sinpe)

	return &dto.ResumenCajaResponse{
		Resumen: resumen,
		Caja:    *cajaToResponse(caja),
	}, nil
}

// ── Reporte ───────────────────────────────────────────────────────────────────

func (s *cajaService) Reporte(ctx context.Context, filter dto.ReporteCajasFilter) ([]dto.ReporteCajaItem, error) {
	cajas, err := s.repo.Reporte(ctx, filter)
	if err != nil {
		return nil, apierror.Transaction("error generando el reporte de cajas", err)
	}

	items := make([]dto.ReporteCajaItem, 0, len(cajas))
	for i := range cajas {
		item := dto.ReporteCajaItem{CajaResponse: *cajaToResponse(&cajas[i])}
		if cajas[i].Usuario != nil {
			item.NombreUsuario = strings.TrimSpace(cajas[i].Usuario.Nombre + " " + cajas[i].Usuario.PrimerApellido)
		}
		items = append(items, item)
	}
	return items, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func cajaToResponse(c *model.Caja) *dto.CajaResponse {
	resp := &dto.CajaResponse{
		ID:            c.ID.String(),
		UsuarioID:     c.UsuarioID.String(),
		MontoApertura: c.MontoApertura,
		MontoCierre:   c.MontoCierre,
		Observaciones: c.Observaciones,
		Estado:        c.Estado,
		FechaApertura: c.FechaApertura.Format(time.RFC3339),
	}
	if c.FechaCierre != nil {
		t := c.FechaCierre.Format(time.RFC3339)
		resp.FechaCierre = &t
	}
	return resp
}
