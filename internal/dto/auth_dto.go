package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Usuario    string `json:"usuario"    validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

type CrearUsuarioRequest struct {
	Nombre          string  `json:"nombre"           validate:"required,min=2"`
	PrimerApellido  string  `json:"primer_apellido"  validate:"required"`
	SegundoApellido *string `json:"segundo_apellido"`
	Usuario         string  `json:"usuario"          validate:"required,min=3"`
	Contrasena      string  `json:"contrasena"       validate:"required,min=4"`
	Rol             string  `json:"rol"              validate:"required,oneof=admin coordinador vendedor"`
	Estado          *string `json:"estado"           validate:"omitempty,oneof=activo inactivo"`
}

// EditarUsuarioRequest is a patch: only non-nil fields are applied. The
// password is re-hashed only when a non-empty one is supplied.
type EditarUsuarioRequest struct {
	Nombre          *string `json:"nombre"`
	PrimerApellido  *string `json:"primer_apellido"`
	SegundoApellido *string `json:"segundo_apellido"`
	Usuario         *string `json:"usuario"`
	Contrasena      *string `json:"contrasena"`
	Rol             *string `json:"rol"    validate:"omitempty,oneof=admin coordinador vendedor"`
	Estado          *string `json:"estado" validate:"omitempty,oneof=activo inactivo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	PrimerApellido  string `json:"primer_apellido"`
	SegundoApellido string `json:"segundo_apellido"`
	Usuario         string `json:"usuario"`
	Rol             string `json:"rol"`
	Estado          string `json:"estado"`
	FechaCreacion   string `json:"fecha_creacion"`
}

type LoginResponse struct {
	Mensaje string `json:"mensaje"`
}
