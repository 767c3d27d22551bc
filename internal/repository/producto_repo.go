package repository

import (
	"context"

	"feriapos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	// List returns productos filtered by estado ("activo", "inactivo" or ""
	// for all), with their categoria preloaded.
	List(ctx context.Context, estado string) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) (int64, error)
	// DecrementarStockTx applies cantidad = cantidad - n inside the sale
	// transaction. The update is unguarded: stock may go negative.
	DecrementarStockTx(tx *gorm.DB, id uuid.UUID, n int) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, estado string) ([]model.Producto, error) {
	q := r.db.WithContext(ctx).Preload("Categoria")
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}
	var productos []model.Producto
	err := q.Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Producto{}).
		Where("id = ?", id).
		Update("estado", estado)
	return res.RowsAffected, res.Error
}

func (r *productoRepo) DecrementarStockTx(tx *gorm.DB, id uuid.UUID, n int) error {
	return tx.Model(&model.Producto{}).
		Where("id = ?", id).
		Update("cantidad", gorm.Expr("cantidad - ?", n)).Error
}
