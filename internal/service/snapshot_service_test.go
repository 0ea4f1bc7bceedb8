package service

import (
	"context"
	"testing"

	"go-pos-ws/internal/apperr"
	"go-pos-ws/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDataset(t *testing.T, db *gorm.DB) (*model.Product, *model.Sale) {
	t.Helper()

	product := createTestProduct(t, db, "SNAP-1", 10)

	svc := newSaleService(db)
	sale, err := svc.RecordSale(context.Background(), &model.CreateSaleRequest{
		Items: []model.SaleLine{
			{ProductID: product.ID, Name: product.Name, Quantity: 3, UnitPrice: 5, UnitCostPrice: 2},
		},
		Total:         15,
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	user := &model.User{Username: "cashier1", FullName: "Cashier One", Role: model.RoleCashier}
	require.NoError(t, user.SetPassword("secret1"))
	require.NoError(t, db.Create(user).Error)

	require.NoError(t, db.Create(&model.Setting{Key: "store_name", Value: "Main Street"}).Error)

	return product, sale
}

func TestSnapshot_RoundTripIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSnapshotService(db)

	product, _ := seedDataset(t, db)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SnapshotVersion, doc.Version)
	assert.NotZero(t, doc.ExportedAt)
	require.Len(t, doc.Data.Products, 1)
	require.Len(t, doc.Data.Sales, 1)
	require.Len(t, doc.Data.SaleItems, 1)
	require.Len(t, doc.Data.Users, 1)
	assert.NotEmpty(t, doc.Data.Users[0].Password) // credentials round-trip in snapshots
	require.Len(t, doc.Data.Settings, 1)

	require.NoError(t, svc.Restore(context.Background(), doc))

	// Every table's row set and every stock value is observably identical.
	redone, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc.Data, redone.Data)
	assert.Equal(t, 7.0, productStock(t, db, product.ID))
}

func TestSnapshot_RestoreReplacesDataset(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSnapshotService(db)

	seedDataset(t, db)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)

	// Diverge from the snapshot: extra product, changed stock.
	createTestProduct(t, db, "EXTRA", 99)
	require.NoError(t, db.Model(&model.Product{}).Where("sku = ?", "SNAP-1").
		UpdateColumn("stock", 0.0).Error)

	require.NoError(t, svc.Restore(context.Background(), doc))

	assert.EqualValues(t, 1, countRows(t, db, &model.Product{}))
	var restored model.Product
	require.NoError(t, db.First(&restored, "sku = ?", "SNAP-1").Error)
	assert.Equal(t, 7.0, restored.Stock)
}

func TestSnapshot_RestoreRejectsMissingCollection(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSnapshotService(db)

	seedDataset(t, db)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	before, err := svc.Export(context.Background())
	require.NoError(t, err)

	doc.Data.Users = nil
	err = svc.Restore(context.Background(), doc)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// Nothing was touched.
	after, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before.Data, after.Data)
}

func TestSnapshot_RestoreRejectsMalformedProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSnapshotService(db)

	seedDataset(t, db)

	before, err := svc.Export(context.Background())
	require.NoError(t, err)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	doc.Data.Products = append(doc.Data.Products,
		model.Product{BaseModel: model.BaseModel{ID: "p-2"}, SKU: "OK-2", Name: "Fine"},
		model.Product{BaseModel: model.BaseModel{ID: "p-3"}, Name: "No SKU"},
	)

	err = svc.Restore(context.Background(), doc)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	after, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before.Data, after.Data)
}

func TestSnapshot_RestoreRollsBackOnConstraintViolation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSnapshotService(db)

	seedDataset(t, db)

	before, err := svc.Export(context.Background())
	require.NoError(t, err)

	// Passes field validation but violates the unique SKU index mid-insert.
	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	doc.Data.Products = append(doc.Data.Products,
		model.Product{BaseModel: model.BaseModel{ID: "dup-1"}, SKU: "SNAP-1", Name: "Duplicate"},
	)

	err = svc.Restore(context.Background(), doc)
	require.Error(t, err)

	// All-or-nothing: the pre-restore dataset is fully intact.
	after, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before.Data, after.Data)
}

func TestSnapshot_RestoreIgnoresNestedSaleItems(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSnapshotService(db)

	seedDataset(t, db)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)

	// A hand-edited document may nest items under each sale as well as
	// listing them in saleItems; only the latter is inserted.
	require.Len(t, doc.Data.Sales, 1)
	doc.Data.Sales[0].Items = doc.Data.SaleItems

	require.NoError(t, svc.Restore(context.Background(), doc))

	assert.EqualValues(t, 1, countRows(t, db, &model.SaleItem{}))
}

func TestSnapshot_ExportEmptyDatasetStillRestorable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSnapshotService(db)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)

	// Empty collections are present, not null, so the shape check passes.
	assert.NotNil(t, doc.Data.Products)
	assert.NotNil(t, doc.Data.Sales)
	assert.NotNil(t, doc.Data.SaleItems)
	assert.NotNil(t, doc.Data.Users)
	assert.NotNil(t, doc.Data.Settings)

	require.NoError(t, svc.Restore(context.Background(), doc))
}
