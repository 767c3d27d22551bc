package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AsignacionRequest struct {
	UsuarioID   string `json:"usuario_id"   validate:"required,uuid"`
	RolAsignado string `json:"rol_asignado" validate:"required,min=2"`
}

type CrearTurnoRequest struct {
	EventoID     string              `json:"evento_id"    validate:"required,uuid"`
	Fecha        string              `json:"fecha"        validate:"required,datetime=2006-01-02"`
	HoraInicio   string              `json:"hora_inicio"  validate:"required,datetime=15:04"`
	HoraFin      string              `json:"hora_fin"     validate:"required,datetime=15:04"`
	Asignaciones []AsignacionRequest `json:"asignaciones" validate:"dive"`
}

type AsignarUsuarioRequest struct {
	TurnoID     string `json:"turno_id"     validate:"required,uuid"`
	UsuarioID   string `json:"usuario_id"   validate:"required,uuid"`
	RolAsignado string `json:"rol_asignado" validate:"required,min=2"`
}

type EditarTurnoRequest struct {
	Fecha      string `json:"fecha"       validate:"required,datetime=2006-01-02"`
	HoraInicio string `json:"hora_inicio" validate:"required,datetime=15:04"`
	HoraFin    string `json:"hora_fin"    validate:"required,datetime=15:04"`
}

type EditarRolAsignadoRequest struct {
	RolAsignado string `json:"rol_asignado" validate:"required,min=2"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TurnoResponse struct {
	ID         string `json:"id"`
	EventoID   string `json:"evento_id"`
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

type AsignacionResponse struct {
	ID          string `json:"id"`
	TurnoID     string `json:"turno_id"`
	UsuarioID   string `json:"usuario_id"`
	RolAsignado string `json:"rol_asignado"`
	Nombre      string `json:"nombre"`
}
