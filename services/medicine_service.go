package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/VibhourSharma/prescript-ease/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const medicineCacheTTL = 24 * time.Hour

// MedicineService serves drug-label lookups through a Redis read-through
// cache. Cache trouble is never fatal; the lookup falls back to openFDA.
type MedicineService struct {
	fda    *OpenFDAService
	cache  *redis.Client
	logger *zap.Logger
}

func NewMedicineService(fda *OpenFDAService, cache *redis.Client, logger *zap.Logger) *MedicineService {
	return &MedicineService{fda: fda, cache: cache, logger: logger}
}

func (s *MedicineService) Lookup(ctx context.Context, query string) (*models.MedicineInfo, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	key := "medicine:" + normalized

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var info models.MedicineInfo
			if err := json.Unmarshal([]byte(cached), &info); err == nil {
				return &info, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("Medicine cache read failed", zap.Error(err))
		}
	}

	info, err := s.fda.Search(normalized)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if serialized, err := json.Marshal(info); err == nil {
			if err := s.cache.Set(ctx, key, serialized, medicineCacheTTL).Err(); err != nil {
				s.logger.Warn("Medicine cache write failed", zap.Error(err))
			}
		}
	}
	return info, nil
}
