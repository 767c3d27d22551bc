package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Caja is a cash-drawer session scoping sales to one operator between an open
// and a close action.
// Estado: "abierta" | "cerrada" — at most one "abierta" per usuario at a time.
// Sessions are closed, never deleted.
type Caja struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MontoApertura decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MontoCierre   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Observaciones string           `gorm:"not null;default:''"`
	Estado        string           `gorm:"type:varchar(10);not null;default:'abierta'"`
	FechaApertura time.Time
	FechaCierre   *time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Caja) TableName() string { return "cajas" }
