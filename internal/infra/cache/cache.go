package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

var (
	// ErrEncode возвращается при ошибке сериализации слотов
	ErrEncode = errors.New("cache: failed to encode slots")

	// ErrDecode возвращается, когда в кэше лежит повреждённое значение
	ErrDecode = errors.New("cache: failed to decode slots")

	// ErrBackend возвращается при ошибке хранилища кэша
	ErrBackend = errors.New("cache: backend error")
)

// AvailabilityCache хранит ответы провайдера по каноническому ключу окна
type AvailabilityCache interface {
	Get(ctx context.Context, key string) ([]domain.AvailableSlot, bool, error)
	Set(ctx context.Context, key string, slots []domain.AvailableSlot, ttl time.Duration) error
}

// AvailabilityKey канонический ключ: одинаковые окна дают одинаковый ключ
func AvailabilityKey(timezone string, first, last civiltime.Date) string {
	return fmt.Sprintf("availability:%s:%s:%s", timezone, first.Key(), last.Key())
}
