package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// RedisOptions параметры подключения
type RedisOptions struct {
	URL          string
	Password     string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewRedisClient создает клиента и проверяет соединение
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	parsed, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse redis URL: %v", ErrBackend, err)
	}

	if opts.Password != "" {
		parsed.Password = opts.Password
	}
	if opts.PoolSize > 0 {
		parsed.PoolSize = opts.PoolSize
	}
	if opts.DialTimeout > 0 {
		parsed.DialTimeout = opts.DialTimeout
	}
	if opts.ReadTimeout > 0 {
		parsed.ReadTimeout = opts.ReadTimeout
	}
	if opts.WriteTimeout > 0 {
		parsed.WriteTimeout = opts.WriteTimeout
	}

	client := redis.NewClient(parsed)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis ping failed: %v", ErrBackend, err)
	}

	return client, nil
}

// redisStore подмножество redis.Cmdable, которое нужно кэшу
type redisStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisCache кэш слотов в Redis, значения хранятся в JSON
type RedisCache struct {
	store redisStore
}

// NewRedisCache принимает *redis.Client или любой redis.Cmdable
func NewRedisCache(store redisStore) *RedisCache {
	return &RedisCache{store: store}
}

type slotPayload struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.AvailableSlot, bool, error) {
	raw, err := c.store.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %v", ErrBackend, key, err)
	}

	var payload []slotPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}

	slots := make([]domain.AvailableSlot, len(payload))
	for i, p := range payload {
		slots[i] = domain.AvailableSlot{Start: p.Start.UTC(), End: p.End.UTC()}
	}
	return slots, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, slots []domain.AvailableSlot, ttl time.Duration) error {
	payload := make([]slotPayload, len(slots))
	for i, s := range slots {
		payload[i] = slotPayload{Start: s.Start.UTC(), End: s.End.UTC()}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := c.store.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrBackend, key, err)
	}
	return nil
}
