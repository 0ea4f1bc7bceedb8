package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_UpsertThenGetAll(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingService(repository.NewSettingRepo(db))

	require.NoError(t, svc.Upsert(context.Background(), map[string]string{
		"store_name": "Main Street",
		"currency":   "USD",
	}))

	settings, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"store_name": "Main Street",
		"currency":   "USD",
	}, settings)
}

func TestSettings_UpsertUpdatesInPlace(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingService(repository.NewSettingRepo(db))

	require.NoError(t, svc.Upsert(context.Background(), map[string]string{"tax_rate": "0.10"}))
	require.NoError(t, svc.Upsert(context.Background(), map[string]string{"tax_rate": "0.21"}))

	// Exactly one row per key, holding the last committed value.
	assert.EqualValues(t, 1, countRows(t, db, &model.Setting{}))

	settings, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.21", settings["tax_rate"])
}

func TestSettings_ConcurrentUpsertsSameKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingService(repository.NewSettingRepo(db))

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			err := svc.Upsert(context.Background(), map[string]string{
				"theme": fmt.Sprintf("theme-%d", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// No duplicate rows, whichever write committed last wins.
	var rows []model.Setting
	require.NoError(t, db.Where("key = ?", "theme").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Value, "theme-")
}

func TestSettings_CanceledContextAbortsBatch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingService(repository.NewSettingRepo(db))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Upsert(ctx, map[string]string{"k": "v"})
	require.Error(t, err)

	// The aborted unit of work left nothing behind.
	settings, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestSettings_EmptyBatchIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingService(repository.NewSettingRepo(db))

	require.NoError(t, svc.Upsert(context.Background(), map[string]string{}))

	settings, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, settings)
}
