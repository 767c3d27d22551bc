package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
	// Precio is the unit price charged for the line and recorded on the
	// ticket as the price at sale time.
	Precio     decimal.Decimal `json:"precio"      validate:"min=0"`
	ParaLlevar bool            `json:"para_llevar"`
}

type RegistrarVentaRequest struct {
	EventoID      string             `json:"evento_id"      validate:"required,uuid"`
	NombreCliente string             `json:"nombre_cliente" validate:"required"`
	FormaPago     string             `json:"forma_pago"     validate:"required,oneof=efectivo sinpe"`
	Productos     []ItemVentaRequest `json:"productos"      validate:"required,min=1,dive"`
	// Comprobante is the SINPE transfer reference — required when forma_pago=sinpe
	Comprobante *string `json:"comprobante"`
	// MontoPagado is the cash amount tendered — required when forma_pago=efectivo
	MontoPagado *decimal.Decimal `json:"monto_pagado"`
	// ClienteEmail: optional — when present, the comanda worker mails the PDF receipt.
	ClienteEmail *string `json:"cliente_email" validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID      string           `json:"venta_id"`
	Total   decimal.Decimal  `json:"total"`
	Vuelto  *decimal.Decimal `json:"vuelto"`
	Mensaje string           `json:"mensaje"`
}

// ReporteEventoFilter is bound from the query string of GET /v1/reportes/ventas.
// All three parameters are mandatory.
type ReporteEventoFilter struct {
	EventoID string `form:"evento_id" validate:"required,uuid"`
	Desde    string `form:"desde"     validate:"required,datetime=2006-01-02"`
	Hasta    string `form:"hasta"     validate:"required,datetime=2006-01-02"`
}

type ReporteEventoResponse struct {
	TotalVentas   int64           `json:"total_ventas"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
	TotalEfectivo decimal.Decimal `json:"total_efectivo"`
	TotalSinpe    decimal.Decimal `json:"total_sinpe"`
}
