package repository

import (
	"context"
	"time"

	"feriapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventoRepository interface {
	Create(ctx context.Context, e *model.Evento) error
	List(ctx context.Context) ([]model.Evento, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Evento, error)
	// FindActivo returns the active evento whose date range covers hoy.
	FindActivo(ctx context.Context, hoy time.Time) (*model.Evento, error)
	Update(ctx context.Context, e *model.Evento) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type eventoRepo struct{ db *gorm.DB }

func NewEventoRepository(db *gorm.DB) EventoRepository { return &eventoRepo{db: db} }

func (r *eventoRepo) Create(ctx context.Context, e *model.Evento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventoRepo) List(ctx context.Context) ([]model.Evento, error) {
	var eventos []model.Evento
	err := r.db.WithContext(ctx).Order("fecha_inicio DESC").Find(&eventos).Error
	return eventos, err
}

func (r *eventoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Evento, error) {
	var e model.Evento
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventoRepo) FindActivo(ctx context.Context, hoy time.Time) (*model.Evento, error) {
	var e model.Evento
	fecha := hoy.Format("2006-01-02")
	err := r.db.WithContext(ctx).
		Where("estado = 'activo' AND fecha_inicio <= ? AND fecha_fin >= ?", fecha, fecha).
		Order("fecha_inicio ASC").
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventoRepo) Update(ctx context.Context, e *model.Evento) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *eventoRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Evento{}).
		Where("id = ?", id).
		Update("estado", estado)
	return res.RowsAffected, res.Error
}

func (r *eventoRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Evento{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
