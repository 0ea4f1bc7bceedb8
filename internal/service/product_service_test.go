package service

import (
	"testing"

	"go-pos-ws/internal/apperr"
	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) ProductService {
	return NewProductService(repository.NewProductRepo(db), ws.NewHub())
}

func TestProduct_CreateAndDuplicateSKU(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	half := 2.5
	err := svc.CreateProduct(&model.Product{
		SKU:           "COKE-330",
		Name:          "Coke 330ml",
		Category:      "Drinks",
		Stock:         24,
		Unit:          "can",
		UnitPrice:     4,
		HalfUnitPrice: &half,
		CostPrice:     2,
	})
	require.NoError(t, err)

	err = svc.CreateProduct(&model.Product{SKU: "COKE-330", Name: "Other"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestProduct_CreateRequiresSKUAndName(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	err := svc.CreateProduct(&model.Product{Name: "No SKU"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = svc.CreateProduct(&model.Product{SKU: "NO-NAME"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestProduct_UpdateAndArchive(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	p := createTestProduct(t, db, "UP-1", 3)

	updated, err := svc.UpdateProduct(p.ID, &model.Product{
		SKU:       "UP-1",
		Name:      "Renamed",
		Stock:     3,
		UnitPrice: 6,
		Archived:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.Archived)

	_, err = svc.UpdateProduct("missing-id", &model.Product{SKU: "X", Name: "X"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProduct_Delete(t *testing.T) {
	db := setupTestDB(t)
	svc := newProductService(db)

	p := createTestProduct(t, db, "DEL-1", 1)

	require.NoError(t, svc.DeleteProduct(p.ID))
	assert.EqualValues(t, 0, countRows(t, db, &model.Product{}))

	assert.ErrorIs(t, svc.DeleteProduct(p.ID), apperr.ErrNotFound)
}
