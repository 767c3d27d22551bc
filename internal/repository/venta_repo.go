package repository

import (
	"context"
	"time"

	"feriapos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	// CreateTx inserts the venta and its detalle rows inside the caller's
	// transaction.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	ListPorCaja(ctx context.Context, cajaID uuid.UUID) ([]model.Venta, error)
	ReportePorEvento(ctx context.Context, eventoID uuid.UUID, desde, hasta time.Time) (*ReporteEvento, error)
	DB() *gorm.DB
}

// ReporteEvento carries the aggregates of the per-event sales report.
type ReporteEvento struct {
	TotalVentas   int64
	MontoTotal    decimal.Decimal
	TotalEfectivo decimal.Decimal
	TotalSinpe    decimal.Decimal
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Detalles.Producto").
		Preload("Usuario").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) ListPorCaja(ctx context.Context, cajaID uuid.UUID) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles").
		Preload("Detalles.Producto").
		Where("caja_id = ?", cajaID).
		Order("fecha DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ReportePorEvento(ctx context.Context, eventoID uuid.UUID, desde, hasta time.Time) (*ReporteEvento, error) {
	var rep ReporteEvento
	base := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("evento_id = ? AND fecha >= ? AND fecha <= ?", eventoID, desde, hasta)

	type agg struct {
		TotalVentas int64
		MontoTotal  decimal.Decimal
	}
	var a agg
	if err := base.Session(&gorm.Session{}).
		Select("COUNT(*) AS total_ventas, COALESCE(SUM(total), 0) AS monto_total").
		Scan(&a).Error; err != nil {
		return nil, err
	}
	rep.TotalVentas = a.TotalVentas
	rep.MontoTotal = a.MontoTotal

	type porForma struct {
		FormaPago string
		Total     decimal.Decimal
	}
	var rows []porForma
	if err := base.Session(&gorm.Session{}).
		Select("forma_pago, COALESCE(SUM(total), 0) AS total").
		Group("forma_pago").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	rep.TotalEfectivo = decimal.Zero
	rep.TotalSinpe = decimal.Zero
	for _, rw := range rows {
		switch rw.FormaPago {
		case "efectivo":
			rep.TotalEfectivo = rw.Total
		case "sinpe":
			rep.TotalSinpe = rw.Total
		}
	}
	return &rep, nil
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
