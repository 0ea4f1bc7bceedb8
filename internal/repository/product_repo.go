package repository

import (
	"go-pos-ws/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id string) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id string) error
	AdjustStock(tx *gorm.DB, id string, delta float64) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id string) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// AdjustStock applies a relative stock delta (stock = stock + delta) on the
// given transaction handle. The delta form serializes concurrent writers at
// the row level, so there is no read-modify-write gap to lose an update in.
// Returns the number of rows touched: zero means the product does not exist.
func (r *productRepo) AdjustStock(tx *gorm.DB, id string, delta float64) (int64, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	return res.RowsAffected, res.Error
}
