package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a menu item of the stand.
// Estado: "activo" | "inactivo" — soft delete via status flip.
// Cantidad is the current stock; sales decrement it without a floor check
// (see RegistrarVenta), so it may go negative under concurrent sales.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion string    `gorm:"not null;default:''"`
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cantidad    int             `gorm:"not null;default:0"`
	CategoriaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	// ImagenURL is the opaque filename of an uploaded image; serving the file
	// is handled outside the core.
	ImagenURL *string
	Estado    string `gorm:"type:varchar(10);not null;default:'activo'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }
