package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"feriapos/internal/apierror"
	"feriapos/internal/dto"
	"feriapos/internal/model"
	"feriapos/internal/repository"
	"feriapos/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// recargoParaLlevar is the flat surcharge (in colones) added per unit when a
// line item is marked para llevar.
var recargoParaLlevar = decimal.NewFromInt(100)

type VentaService interface {
	RegistrarVenta(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	ListVentasPorCaja(ctx context.Context, cajaID uuid.UUID) ([]model.Venta, error)
	ReportePorEvento(ctx context.Context, filter dto.ReporteEventoFilter) (*dto.ReporteEventoResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	cajaRepo     repository.CajaRepository
	productoRepo repository.ProductoRepository
	dispatcher   *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	cajaRepo repository.CajaRepository,
	productoRepo repository.ProductoRepository,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:         repo,
		cajaRepo:     cajaRepo,
		productoRepo: productoRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Sale flow:
//   1. Pre-flight: validate payment fields, resolve every producto (outside TX)
//   2. Compute total = Σ precio×cantidad + recargo para llevar, and vuelto
//   3. BEGIN TX: resolve caja abierta, insert venta + detalle, descontar stock
//   4. COMMIT
//   5. (async) dispatch comanda job

func (s *ventaService) RegistrarVenta(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	eventoID, err := uuid.Parse(req.EventoID)
	if err != nil {
		return nil, apierror.Validation("evento_id inválido")
	}
	if strings.TrimSpace(req.NombreCliente) == "" {
		return nil, apierror.Validation("nombre_cliente es requerido")
	}

	// Payment-method specific requirements
	switch req.FormaPago {
	case "sinpe":
		if req.Comprobante == nil || strings.TrimSpace(*req.Comprobante) == "" {
			return nil, apierror.Validation("comprobante es requerido para pagos sinpe")
		}
	case "efectivo":
		if req.MontoPagado == nil || req.MontoPagado.IsNegative() {
			return nil, apierror.Validation("monto_pagado es requerido para pagos en efectivo")
		}
	default:
		return nil, apierror.Validation("forma_pago inválida")
	}

	if len(req.Productos) == 0 {
		return nil, apierror.Validation("la venta debe incluir al menos un producto")
	}

	// Resolve products and calculate the total (pre-flight, outside TX).
	// Each line is charged at the submitted precio, which the ticket records
	// as the price at sale time.
	type resolvedItem struct {
		productoID uuid.UUID
		nombre     string
		precio     decimal.Decimal
		cantidad   int
		paraLlevar bool
	}

	var resolved []resolvedItem
	total := decimal.Zero

	for _, item := range req.Productos {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("producto_id inválido: %s", item.ProductoID))
		}
		if item.Cantidad <= 0 {
			return nil, apierror.Validation(fmt.Sprintf("cantidad inválida para el producto %s", item.ProductoID))
		}
		if item.Precio.IsNegative() {
			return nil, apierror.Validation(fmt.Sprintf("precio inválido para el producto %s", item.ProductoID))
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("producto %s no encontrado", item.ProductoID))
		}
		if p.Estado != "activo" {
			return nil, apierror.Validation(fmt.Sprintf("producto %s está inactivo y no puede venderse", p.Nombre))
		}

		cantidad := decimal.NewFromInt(int64(item.Cantidad))
		linea := item.Precio.Mul(cantidad)
		if item.ParaLlevar {
			linea = linea.Add(recargoParaLlevar.Mul(cantidad))
		}
		total = total.Add(linea)

		resolved = append(resolved, resolvedItem{
			productoID: pid,
			nombre:     p.Nombre,
			precio:     item.Precio,
			cantidad:   item.Cantidad,
			paraLlevar: item.ParaLlevar,
		})
	}

	// Vuelto only applies to efectivo. Never negative: short payments are the
	// cashier's problem at the till, not the system's.
	var vuelto *decimal.Decimal
	if req.FormaPago == "efectivo" {
		v := req.MontoPagado.Sub(total)
		if v.IsNegative() {
			v = decimal.Zero
		}
		vuelto = &v
	}

	var venta model.Venta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		caja, err := s.cajaRepo.FindAbiertaTx(tx, usuarioID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.Precondition("no hay una caja abierta para este usuario")
			}
			return apierror.Transaction("error consultando la caja", err)
		}

		venta = model.Venta{
			UsuarioID:     usuarioID,
			CajaID:        caja.ID,
			EventoID:      eventoID,
			NombreCliente: strings.TrimSpace(req.NombreCliente),
			FormaPago:     req.FormaPago,
			MontoPagado:   req.MontoPagado,
			Vuelto:        vuelto,
			Total:         total,
			Fecha:         time.Now(),
		}
		if req.FormaPago == "sinpe" {
			comprobante := strings.TrimSpace(*req.Comprobante)
			venta.ComprobanteSinpe = &comprobante
			venta.MontoPagado = nil
		}
		for _, r := range resolved {
			venta.Detalles = append(venta.Detalles, model.DetalleVenta{
				ProductoID:     r.productoID,
				Cantidad:       r.cantidad,
				PrecioUnitario: r.precio,
				ParaLlevar:     r.paraLlevar,
			})
		}

		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return apierror.Transaction("error registrando la venta", err)
		}

		for _, r := range resolved {
			if err := s.productoRepo.DecrementarStockTx(tx, r.productoID, r.cantidad); err != nil {
				return apierror.Transaction(fmt.Sprintf("error descontando stock de %s", r.nombre), err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async comanda job (best-effort, fire & forget)
	if s.dispatcher != nil {
		payload := map[string]interface{}{
			"venta_id": venta.ID.String(),
		}
		if req.ClienteEmail != nil && *req.ClienteEmail != "" {
			payload["cliente_email"] = *req.ClienteEmail
		}
		_ = s.dispatcher.EnqueueComanda(ctx, payload)
	}

	return &dto.VentaResponse{
		ID:      venta.ID.String(),
		Total:   total,
		Vuelto:  vuelto,
		Mensaje: "Venta registrada",
	}, nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("venta no encontrada")
		}
		return nil, apierror.Transaction("error consultando la venta", err)
	}
	return venta, nil
}

func (s *ventaService) ListVentasPorCaja(ctx context.Context, cajaID uuid.UUID) ([]model.Venta, error) {
	ventas, err := s.repo.ListPorCaja(ctx, cajaID)
	if err != nil {
		return nil, apierror.Transaction("error listando ventas", err)
	}
	return ventas, nil
}

func (s *ventaService) ReportePorEvento(ctx context.Context, filter dto.ReporteEventoFilter) (*dto.ReporteEventoResponse, error) {
	eventoID, err := uuid.Parse(filter.EventoID)
	if err != nil {
		return nil, apierror.Validation("evento_id inválido")
	}
	desde, err := time.Parse("2006-01-02", filter.Desde)
	if err != nil {
		return nil, apierror.Validation("desde inválido, formato esperado YYYY-MM-DD")
	}
	hasta, err := time.Parse("2006-01-02", filter.Hasta)
	if err != nil {
		return nil, apierror.Validation("hasta inválido, formato esperado YYYY-MM-DD")
	}
	// Make hasta inclusive through end of day
	hasta = hasta.Add(24*time.Hour - time.Nanosecond)

	rep, err := s.repo.ReportePorEvento(ctx, eventoID, desde, hasta)
	if err != nil {
		return nil, apierror.Transaction("error generando el reporte", err)
	}
	return &dto.ReporteEventoResponse{
		TotalVentas:   rep.TotalVentas,
		MontoTotal:    rep.MontoTotal,
		TotalEfectivo: rep.TotalEfectivo,
		TotalSinpe:    rep.TotalSinpe,
	}, nil
}
