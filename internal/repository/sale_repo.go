package repository

import (
	"go-pos-ws/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	FindAll() ([]model.Sale, error)
	FindByID(id string) (*model.Sale, error)
	FindItemsBySaleID(tx *gorm.DB, saleID string) ([]model.SaleItem, error)
	DeleteSaleWithItems(tx *gorm.DB, saleID string) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Items").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id string) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Items").First(&sale, "id = ?", id).Error
	return &sale, err
}

// FindItemsBySaleID reads line items on the given transaction handle so the
// void path sees them under the same unit of work that deletes them.
func (r *saleRepo) FindItemsBySaleID(tx *gorm.DB, saleID string) ([]model.SaleItem, error) {
	var items []model.SaleItem
	err := tx.Where("sale_id = ?", saleID).Find(&items).Error
	return items, err
}

// DeleteSaleWithItems removes line items first, then the sale row.
func (r *saleRepo) DeleteSaleWithItems(tx *gorm.DB, saleID string) error {
	if err := tx.Where("sale_id = ?", saleID).Delete(&model.SaleItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Sale{}, "id = ?", saleID).Error
}
