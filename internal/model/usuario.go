package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system operators with role-based access.
// Rol: "admin" | "coordinador" | "vendedor"
// Estado: "activo" | "inactivo" — soft delete, never hard-deleted from here.
type Usuario struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre          string    `gorm:"not null"`
	PrimerApellido  string    `gorm:"not null"`
	SegundoApellido string
	Usuario         string `gorm:"uniqueIndex;not null"`
	Contrasena      string `gorm:"not null"` // bcrypt hash
	Rol             string `gorm:"type:varchar(20);not null"`
	Estado          string `gorm:"type:varchar(10);not null;default:'activo'"`
	FechaCreacion   time.Time
}

func (Usuario) TableName() string { return "usuarios" }
