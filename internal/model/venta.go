package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is an immutable sale record.
// FormaPago: "efectivo" | "sinpe"
// MontoPagado and Vuelto are only set for efectivo; ComprobanteSinpe only for
// sinpe. Created together with its DetalleVenta rows in one transaction.
type Venta struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CajaID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	EventoID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	NombreCliente    string          `gorm:"not null"`
	FormaPago        string          `gorm:"type:varchar(10);not null"`
	ComprobanteSinpe *string         `gorm:"type:varchar(60)"`
	MontoPagado      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Vuelto           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Total            decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Fecha            time.Time        `gorm:"index"`

	Detalles []DetalleVenta `gorm:"foreignKey:VentaID"`
	Usuario  *Usuario       `gorm:"foreignKey:UsuarioID"`
}

func (Venta) TableName() string { return "ventas" }

// DetalleVenta is one line item of a Venta. PrecioUnitario is the price at
// sale time, independent of later catalog changes.
type DetalleVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ParaLlevar     bool            `gorm:"not null;default:false"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVenta) TableName() string { return "detalle_venta" }
