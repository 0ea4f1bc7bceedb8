package service

import (
	"context"

	"go-pos-ws/internal/repository"
)

type SettingService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, entries map[string]string) error
}

type settingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(repo repository.SettingRepository) SettingService {
	return &settingService{settingRepo: repo}
}

// GetAll returns the full key→value map as of the read; no freshness
// guarantee beyond that.
func (s *settingService) GetAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

// Upsert applies the whole batch atomically, bounded by the unit-of-work
// timeout: it either fully applies or fully fails as one unit.
func (s *settingService) Upsert(ctx context.Context, entries map[string]string) error {
	ctx, cancel := withTxTimeout(ctx)
	defer cancel()

	return s.settingRepo.UpsertAll(ctx, entries)
}
