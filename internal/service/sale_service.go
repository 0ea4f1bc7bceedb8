package service

import (
	"context"
	"errors"
	"time"

	"go-pos-ws/internal/apperr"
	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/internal/ws"
	"go-pos-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// txTimeout bounds every unit of work. A timeout aborts via rollback, so a
// half-applied unit is never visible.
const txTimeout = 5 * time.Second

func withTxTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, txTimeout)
}

type SaleService interface {
	RecordSale(ctx context.Context, req *model.CreateSaleRequest) (*model.Sale, error)
	VoidSale(ctx context.Context, saleID string) error
	GetAllSales() ([]model.Sale, error)
	GetSaleByID(id string) (*model.Sale, error)
}

type saleService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewSaleService(pRepo repository.ProductRepository, sRepo repository.SaleRepository, db *gorm.DB, hub *ws.Hub) SaleService {
	return &saleService{
		productRepo: pRepo,
		saleRepo:    sRepo,
		db:          db,
		wsHub:       hub,
	}
}

// RecordSale inserts the sale, its line items (carrying the caller-supplied
// name/price snapshot) and applies a relative stock decrement per product,
// all inside one transaction. Any failure rolls the whole unit back: no
// sale, no items, no stock change survives.
//
// Stock is allowed to go negative: there is deliberately no sufficiency
// check before the decrement.
func (s *saleService) RecordSale(ctx context.Context, req *model.CreateSaleRequest) (*model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.Validationf("field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	sale := &model.Sale{
		ID:            uuid.NewString(),
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
	}

	ctx, cancel := withTxTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for _, line := range req.Items {
			item := model.SaleItem{
				ID:            uuid.NewString(),
				SaleID:        sale.ID,
				ProductID:     line.ProductID,
				Name:          line.Name,
				Quantity:      line.Quantity,
				UnitPrice:     line.UnitPrice,
				UnitCostPrice: line.UnitCostPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			affected, err := s.productRepo.AdjustStock(tx, line.ProductID, -line.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return apperr.NotFoundf("product %s", line.ProductID)
			}

			sale.Items = append(sale.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.EventSaleCompleted, sale)
	return sale, nil
}

// VoidSale reverses a recorded sale: each line item's quantity goes back
// onto its product's stock, then items and sale row are deleted, all in one
// transaction. Voiding is the exact algebraic inverse of recording.
func (s *saleService) VoidSale(ctx context.Context, saleID string) error {
	ctx, cancel := withTxTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := s.saleRepo.FindItemsBySaleID(tx, saleID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperr.NotFoundf("sale %s", saleID)
		}

		for _, item := range items {
			affected, err := s.productRepo.AdjustStock(tx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			// A vanished product means the inverse cannot be applied
			// in full; roll back rather than half-void the sale.
			if affected == 0 {
				return apperr.NotFoundf("product %s", item.ProductID)
			}
		}

		return s.saleRepo.DeleteSaleWithItems(tx, saleID)
	})
	if err != nil {
		return err
	}

	s.wsHub.Publish(ws.EventSaleVoided, map[string]interface{}{"sale_id": saleID})
	return nil
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetSaleByID(id string) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("sale %s", id)
		}
		return nil, err
	}
	return sale, nil
}
