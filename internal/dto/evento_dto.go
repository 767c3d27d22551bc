package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearEventoRequest struct {
	Nombre      string  `json:"nombre"       validate:"required,min=2"`
	Descripcion *string `json:"descripcion"`
	FechaInicio string  `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string  `json:"fecha_fin"    validate:"required,datetime=2006-01-02"`
}

type EditarEventoRequest struct {
	Nombre      string  `json:"nombre"       validate:"required,min=2"`
	Descripcion *string `json:"descripcion"`
	FechaInicio string  `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string  `json:"fecha_fin"    validate:"required,datetime=2006-01-02"`
}

type CambiarEstadoEventoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=activo inactivo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EventoResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Estado      string `json:"estado"`
}
