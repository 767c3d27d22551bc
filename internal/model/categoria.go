package model

import "github.com/google/uuid"

// Categoria classifies products on the stand menu. Read-only from the POS
// perspective — rows are seeded with the schema.
type Categoria struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }
