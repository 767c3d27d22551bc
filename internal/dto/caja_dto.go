package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCajaRequest struct {
	MontoApertura decimal.Decimal `json:"monto_apertura" validate:"min=0"`
}

type CerrarCajaRequest struct {
	MontoCierre   decimal.Decimal `json:"monto_cierre"  validate:"min=0"`
	Observaciones *string         `json:"observaciones"`
}

// ReporteCajasFilter holds the optional filters of GET /v1/caja/reporte.
type ReporteCajasFilter struct {
	FechaInicio string `form:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin    string `form:"fecha_fin"    validate:"omitempty,datetime=2006-01-02"`
	UsuarioID   string `form:"usuario_id"   validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CajaResponse struct {
	ID            string           `json:"id"`
	UsuarioID     string           `json:"usuario_id"`
	MontoApertura decimal.Decimal  `json:"monto_apertura"`
	MontoCierre   *decimal.Decimal `json:"monto_cierre"`
	Observaciones string           `json:"observaciones"`
	Estado        string           `json:"estado"`
	FechaApertura string           `json:"fecha_apertura"`
	FechaCierre   *string          `json:"fecha_cierre"`
}

// ResumenCajaResponse aggregates sale totals of the open session by payment
// method.
type ResumenCajaResponse struct {
	Resumen TotalesPorFormaPago `json:"resumen"`
	Caja    CajaResponse        `json:"caja"`
}

type TotalesPorFormaPago struct {
	Efectivo decimal.Decimal `json:"efectivo"`
	Sinpe    decimal.Decimal `json:"sinpe"`
	Total    decimal.Decimal `json:"total"`
}

// ReporteCajaItem is one row of the caja listing report, enriched with the
// operator name.
type ReporteCajaItem struct {
	CajaResponse
	NombreUsuario string `json:"nombre_usuario"`
}
