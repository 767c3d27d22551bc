package model

import (
	"time"

	"github.com/google/uuid"
)

// Evento is a time-bounded event (feria, festival day) that scopes sales and
// turnos for reporting.
// Estado: "activo" | "inactivo"
type Evento struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Descripcion string    `gorm:"not null;default:''"`
	FechaInicio time.Time `gorm:"type:date;not null"`
	FechaFin    time.Time `gorm:"type:date;not null"`
	Estado      string    `gorm:"type:varchar(10);not null;default:'activo'"`
	CreatedAt   time.Time
}

func (Evento) TableName() string { return "eventos" }
