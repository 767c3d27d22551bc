package model

import (
	"time"

	"github.com/google/uuid"
)

// Turno is a scheduled shift within an evento. Deleting a turno cascades over
// its asignaciones inside one transaction.
type Turno struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Fecha      time.Time `gorm:"type:date;not null"`
	HoraInicio string    `gorm:"type:varchar(8);not null"` // HH:MM
	HoraFin    string    `gorm:"type:varchar(8);not null"`

	Asignaciones []TurnoUsuario `gorm:"foreignKey:TurnoID"`
}

func (Turno) TableName() string { return "turnos" }

// TurnoUsuario assigns one usuario to a turno with a role for that shift.
// The (turno_id, usuario_id) pair is unique — a usuario cannot be assigned
// twice to the same turno.
type TurnoUsuario struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TurnoID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_turno_usuario;not null"`
	UsuarioID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_turno_usuario;not null"`
	RolAsignado string    `gorm:"not null"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (TurnoUsuario) TableName() string { return "turno_usuarios" }
