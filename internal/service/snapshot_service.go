package service

import (
	"context"
	"time"

	"go-pos-ws/internal/apperr"
	"go-pos-ws/internal/model"
	"go-pos-ws/pkg/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// restoreTimeout is wider than the per-request budget: restore rewrites the
// whole dataset.
const restoreTimeout = 30 * time.Second

type SnapshotService interface {
	Export(ctx context.Context) (*model.SnapshotDocument, error)
	Restore(ctx context.Context, doc *model.SnapshotDocument) error
}

type snapshotService struct {
	db *gorm.DB
}

func NewSnapshotService(db *gorm.DB) SnapshotService {
	return &snapshotService{db: db}
}

// Export projects every row of every core table into one versioned
// document. All five reads share a transaction so the snapshot is a single
// point-in-time view. Collections are normalized to empty slices so the
// document always restores against its own shape check.
func (s *snapshotService) Export(ctx context.Context) (*model.SnapshotDocument, error) {
	ctx, cancel := withTxTimeout(ctx)
	defer cancel()

	var data model.SnapshotData
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Find(&data.Products).Error; err != nil {
			return err
		}
		if err := tx.Find(&data.Sales).Error; err != nil {
			return err
		}
		if err := tx.Find(&data.SaleItems).Error; err != nil {
			return err
		}
		if err := tx.Find(&data.Users).Error; err != nil {
			return err
		}
		return tx.Find(&data.Settings).Error
	})
	if err != nil {
		return nil, err
	}

	if data.Products == nil {
		data.Products = []model.Product{}
	}
	if data.Sales == nil {
		data.Sales = []model.Sale{}
	}
	if data.SaleItems == nil {
		data.SaleItems = []model.SaleItem{}
	}
	if data.Users == nil {
		data.Users = []model.User{}
	}
	if data.Settings == nil {
		data.Settings = []model.Setting{}
	}

	return &model.SnapshotDocument{
		Version:    model.SnapshotVersion,
		ExportedAt: time.Now().UnixMilli(),
		Data:       data,
	}, nil
}

// Restore replaces the entire dataset with the document's contents, as one
// atomic unit: delete children before parents, insert parents before
// children. A failure anywhere rolls back and leaves the pre-restore
// dataset completely untouched.
func (s *snapshotService) Restore(ctx context.Context, doc *model.SnapshotDocument) error {
	if err := validateSnapshot(doc); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, restoreTimeout)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete in dependency order: children first.
		for _, m := range []interface{}{
			&model.SaleItem{}, &model.Sale{}, &model.Product{}, &model.User{}, &model.Setting{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		// Insert in reverse dependency order so FK references are
		// satisfiable at insert time. Associations are omitted: line
		// items come only from data.saleItems, even when a hand-edited
		// document nests them under a sale too.
		if len(doc.Data.Products) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(doc.Data.Products, 200).Error; err != nil {
				return err
			}
		}
		if len(doc.Data.Sales) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(doc.Data.Sales, 200).Error; err != nil {
				return err
			}
		}
		if len(doc.Data.SaleItems) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(doc.Data.SaleItems, 200).Error; err != nil {
				return err
			}
		}
		if len(doc.Data.Users) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(doc.Data.Users, 200).Error; err != nil {
				return err
			}
		}
		if len(doc.Data.Settings) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(doc.Data.Settings, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// validateSnapshot rejects malformed documents before any mutation begins.
// All five collections must be present, and every row must carry its
// required fields: empty strings satisfy NOT NULL, so constraint checks
// alone would let a product without a SKU through.
func validateSnapshot(doc *model.SnapshotDocument) error {
	if doc == nil {
		return apperr.Validationf("empty snapshot document")
	}
	if doc.Data.Products == nil || doc.Data.Sales == nil || doc.Data.SaleItems == nil ||
		doc.Data.Users == nil || doc.Data.Settings == nil {
		return apperr.Validationf("snapshot data must contain products, sales, saleItems, users and settings")
	}

	for i := range doc.Data.Products {
		if doc.Data.Products[i].ID == "" {
			return apperr.Validationf("products[%d]: missing id", i)
		}
		if errs := validator.ValidateStruct(&doc.Data.Products[i]); len(errs) > 0 {
			return apperr.Validationf("products[%d]: field '%s' failed on tag '%s'", i, errs[0].FailedField, errs[0].Tag)
		}
	}
	for i := range doc.Data.Sales {
		if doc.Data.Sales[i].ID == "" {
			return apperr.Validationf("sales[%d]: missing id", i)
		}
	}
	for i := range doc.Data.SaleItems {
		if doc.Data.SaleItems[i].ID == "" {
			return apperr.Validationf("saleItems[%d]: missing id", i)
		}
		if errs := validator.ValidateStruct(&doc.Data.SaleItems[i]); len(errs) > 0 {
			return apperr.Validationf("saleItems[%d]: field '%s' failed on tag '%s'", i, errs[0].FailedField, errs[0].Tag)
		}
	}
	for i := range doc.Data.Users {
		if doc.Data.Users[i].ID == "" {
			return apperr.Validationf("users[%d]: missing id", i)
		}
		if doc.Data.Users[i].Username == "" {
			return apperr.Validationf("users[%d]: missing username", i)
		}
	}
	for i := range doc.Data.Settings {
		if doc.Data.Settings[i].Key == "" {
			return apperr.Validationf("settings[%d]: missing key", i)
		}
	}
	return nil
}
