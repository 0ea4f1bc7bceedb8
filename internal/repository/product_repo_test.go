package repository

import (
	"testing"

	"go-pos-ws/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo_AdjustStockIsRelative(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	product := &model.Product{SKU: "ADJ-1", Name: "Adjustable", Stock: 10}
	require.NoError(t, repo.Create(product))

	affected, err := repo.AdjustStock(db, product.ID, -3.5)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.AdjustStock(db, product.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	loaded, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.5, loaded.Stock)
}

func TestProductRepo_AdjustStockUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	affected, err := repo.AdjustStock(db, "no-such-id", -1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestProductRepo_FindBySKU(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	require.NoError(t, repo.Create(&model.Product{SKU: "FIND-1", Name: "Findable"}))

	found, err := repo.FindBySKU("FIND-1")
	require.NoError(t, err)
	assert.Equal(t, "Findable", found.Name)

	_, err = repo.FindBySKU("missing")
	assert.Error(t, err)
}
