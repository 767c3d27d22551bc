package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=120"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"       validate:"required"`
	Cantidad    int             `json:"cantidad"     validate:"min=0"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	ImagenURL   *string         `json:"imagen_url"`
}

// ActualizarProductoRequest is a patch: only non-nil fields are applied.
// ImagenURL in particular is replaced only when a new one is supplied.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=2,max=120"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Cantidad    *int             `json:"cantidad"     validate:"omitempty,min=0"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	ImagenURL   *string          `json:"imagen_url"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Cantidad    int             `json:"cantidad"`
	CategoriaID string          `json:"categoria_id"`
	Categoria   string          `json:"categoria"`
	ImagenURL   *string         `json:"imagen_url"`
	Estado      string          `json:"estado"`
}

type CategoriaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
