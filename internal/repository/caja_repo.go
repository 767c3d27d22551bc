package repository

import (
	"context"

	"feriapos/internal/dto"
	"feriapos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CajaRepository interface {
	Create(ctx context.Context, c *model.Caja) error
	FindAbiertaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Caja, error)
	Update(ctx context.Context, c *model.Caja) error
	// FindAbiertaTx resolves the open caja inside a sale transaction.
	FindAbiertaTx(tx *gorm.DB, usuarioID uuid.UUID) (*model.Caja, error)
	// SumVentasPorFormaPago aggregates ventas.total grouped by forma_pago for
	// one caja.
	SumVentasPorFormaPago(ctx context.Context, cajaID uuid.UUID) (map[string]decimal.Decimal, error)
	Reporte(ctx context.Context, filter dto.ReporteCajasFilter) ([]model.Caja, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) Create(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cajaRepo) FindAbiertaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND estado = 'abierta'", usuarioID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cajaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cajaRepo) Update(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cajaRepo) FindAbiertaTx(tx *gorm.DB, usuarioID uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := tx.Where("usuario_id = ? AND estado = 'abierta'", usuarioID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cajaRepo) SumVentasPorFormaPago(ctx context.Context, cajaID uuid.UUID) (map[string]decimal.Decimal, error) {
	type row struct {
		FormaPago string
		Total     decimal.Decimal
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Venta{}).
		Select("forma_pago, COALESCE(SUM(total), 0) AS total").
		Where("caja_id = ?", cajaID).
		Group("forma_pago").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	sums := map[string]decimal.Decimal{
		"efectivo": decimal.Zero,
		"sinpe":    decimal.Zero,
	}
	for _, rw := range rows {
		sums[rw.FormaPago] = rw.Total
	}
	return sums, nil
}

func (r *cajaRepo) Reporte(ctx context.Context, filter dto.ReporteCajasFilter) ([]model.Caja, error) {
	q := r.db.WithContext(ctx).Model(&model.Caja{}).Preload("Usuario")
	if filter.FechaInicio != "" {
		q = q.Where("fecha_apertura >= ?", filter.FechaInicio)
	}
	if filter.FechaFin != "" {
		q = q.Where("fecha_apertura <= ?", filter.FechaFin)
	}
	if filter.UsuarioID != "" {
		q = q.Where("usuario_id = ?", filter.UsuarioID)
	}
	var cajas []model.Caja
	err := q.Order("fecha_apertura DESC").Find(&cajas).Error
	return cajas, err
}
