package availability

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/engine/workingday"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/cache"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// Service получает свободные слоты для окна рабочих дней.
// Одновременные запросы одного окна объединяются в один запрос к провайдеру.
type Service struct {
	provider Provider
	cache    Cache
	ttl      time.Duration
	group    singleflight.Group
	metrics  Metrics
	logger   Logger
}

// NewService создает новый экземпляр сервиса. cache может быть nil.
func NewService(provider Provider, c Cache, ttl time.Duration, metrics Metrics, logger Logger) *Service {
	return &Service{
		provider: provider,
		cache:    c,
		ttl:      ttl,
		metrics:  metrics,
		logger:   logger,
	}
}

// Fetch возвращает слоты окна из кэша или от провайдера
func (s *Service) Fetch(ctx context.Context, w workingday.Window) (*models.Result, error) {
	if len(w.Days) == 0 {
		return nil, ErrInvalidWindow
	}
	key := cache.AvailabilityKey(civiltime.Timezone, w.First(), w.Last())

	if s.cache != nil {
		slots, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.metrics.IncCacheRequest(cacheError)
			s.logger.Warn("Fetch: cache get %s failed, falling back to provider: %v", key, err)
		case ok:
			s.metrics.IncCacheRequest(cacheHit)
			return &models.Result{Key: key, Slots: slots, FromCache: true}, nil
		default:
			s.metrics.IncCacheRequest(cacheMiss)
		}
	}

	return s.load(ctx, key, w)
}

// Refresh запрашивает провайдера в обход кэша и обновляет кэш
func (s *Service) Refresh(ctx context.Context, w workingday.Window) (*models.Result, error) {
	if len(w.Days) == 0 {
		return nil, ErrInvalidWindow
	}
	return s.load(ctx, cache.AvailabilityKey(civiltime.Timezone, w.First(), w.Last()), w)
}

func (s *Service) load(ctx context.Context, key string, w workingday.Window) (*models.Result, error) {
	// запрос к провайдеру не отменяется вместе с вызвавшим его клиентом:
	// его результат ждут и другие участники группы
	detached := context.WithoutCancel(ctx)

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		slots, err := s.provider.GetAvailability(detached, w.RangeStart, w.RangeEnd, civiltime.Timezone)
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			if err := s.cache.Set(detached, key, slots, s.ttl); err != nil {
				s.logger.Warn("Fetch: cache set %s failed: %v", key, err)
			}
		}
		return slots, nil
	})
	if err != nil {
		s.logger.Error("Fetch: provider request for %s failed: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if shared {
		s.logger.Info("Fetch: request for %s was coalesced", key)
	}
	return &models.Result{Key: key, Slots: v.([]domain.AvailableSlot)}, nil
}
