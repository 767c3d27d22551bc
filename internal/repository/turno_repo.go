package repository

import (
	"context"

	"feriapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TurnoRepository interface {
	// CreateTx inserts the turno and its asignaciones in one transaction.
	CreateTx(tx *gorm.DB, t *model.Turno) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Turno, error)
	ListPorEvento(ctx context.Context, eventoID uuid.UUID) ([]model.Turno, error)
	Update(ctx context.Context, t *model.Turno) error
	DeleteAsignacionesTx(tx *gorm.DB, turnoID uuid.UUID) error
	DeleteTx(tx *gorm.DB, turnoID uuid.UUID) error

	CreateAsignacion(ctx context.Context, a *model.TurnoUsuario) error
	FindAsignacion(ctx context.Context, turnoID, usuarioID uuid.UUID) (*model.TurnoUsuario, error)
	FindAsignacionByID(ctx context.Context, id uuid.UUID) (*model.TurnoUsuario, error)
	ListAsignaciones(ctx context.Context, turnoID uuid.UUID) ([]model.TurnoUsuario, error)
	UpdateRolAsignado(ctx context.Context, id uuid.UUID, rol string) (int64, error)
	DeleteAsignacion(ctx context.Context, id uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type turnoRepo struct{ db *gorm.DB }

func NewTurnoRepository(db *gorm.DB) TurnoRepository { return &turnoRepo{db: db} }

func (r *turnoRepo) CreateTx(tx *gorm.DB, t *model.Turno) error {
	return tx.Create(t).Error
}

func (r *turnoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Turno, error) {
	var t model.Turno
	err := r.db.WithContext(ctx).
		Preload("Asignaciones").
		Preload("Asignaciones.Usuario").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *turnoRepo) ListPorEvento(ctx context.Context, eventoID uuid.UUID) ([]model.Turno, error) {
	var turnos []model.Turno
	err := r.db.WithContext(ctx).
		Preload("Asignaciones").
		Preload("Asignaciones.Usuario").
		Where("evento_id = ?", eventoID).
		Order("fecha ASC, hora_inicio ASC").
		Find(&turnos).Error
	return turnos, err
}

func (r *turnoRepo) Update(ctx context.Context, t *model.Turno) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *turnoRepo) DeleteAsignacionesTx(tx *gorm.DB, turnoID uuid.UUID) error {
	return tx.Where("turno_id = ?", turnoID).Delete(&model.TurnoUsuario{}).Error
}

func (r *turnoRepo) DeleteTx(tx *gorm.DB, turnoID uuid.UUID) error {
	return tx.Delete(&model.Turno{}, "id = ?", turnoID).Error
}

func (r *turnoRepo) CreateAsignacion(ctx context.Context, a *model.TurnoUsuario) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *turnoRepo) FindAsignacion(ctx context.Context, turnoID, usuarioID uuid.UUID) (*model.TurnoUsuario, error) {
	var a model.TurnoUsuario
	err := r.db.WithContext(ctx).
		Where("turno_id = ? AND usuario_id = ?", turnoID, usuarioID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *turnoRepo) FindAsignacionByID(ctx context.Context, id uuid.UUID) (*model.TurnoUsuario, error) {
	var a model.TurnoUsuario
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *turnoRepo) ListAsignaciones(ctx context.Context, turnoID uuid.UUID) ([]model.TurnoUsuario, error) {
	var asigs []model.TurnoUsuario
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("turno_id = ?", turnoID).
		Find(&asigs).Error
	return asigs, err
}

func (r *turnoRepo) UpdateRolAsignado(ctx context.Context, id uuid.UUID, rol string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.TurnoUsuario{}).
		Where("id = ?", id).
		Update("rol_asignado", rol)
	return res.RowsAffected, res.Error
}

func (r *turnoRepo) DeleteAsignacion(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.TurnoUsuario{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *turnoRepo) DB() *gorm.DB { return r.db }
