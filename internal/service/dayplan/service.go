package dayplan

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/dayplan/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Service собирает исходные данные для классификации и раскладки дней
type Service struct {
	windows     WindowSource
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса. blockRepo может быть nil,
// тогда на таймлайне будут только повторяющиеся перерывы.
func NewService(
	windows WindowSource,
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	logger Logger,
) *Service {
	return &Service{
		windows:     windows,
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		logger:      logger,
	}
}

// Load загружает окна и активные бронирования за [from, to].
// withBlocks дополнительно загружает разовые блокировки и разворачивает перерывы.
func (s *Service) Load(ctx context.Context, from, to civiltime.Date, withBlocks bool) (*models.Plan, error) {
	// 1. Проверяем диапазон и переводим его в мгновения
	if !from.Valid() || !to.Valid() || to.Before(from) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidRange, from, to)
	}
	rangeStart, ok := from.StartInstant()
	if !ok {
		return nil, fmt.Errorf("%w: start of %s does not exist", ErrInvalidRange, from)
	}
	rangeEnd, ok := to.EndInstant()
	if !ok {
		return nil, fmt.Errorf("%w: end of %s does not exist", ErrInvalidRange, to)
	}

	// 2. Окна доступности
	windows, err := s.windows.Windows(ctx, from, to)
	if err != nil {
		s.logger.Error("Load: failed to get windows for %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: failed to get windows: %v", ErrInternal, err)
	}

	// 3. Бронирования: отменённые и no-show в загрузку не входят
	bookings, err := s.bookingRepo.ListInRange(ctx, rangeStart, rangeEnd, false)
	if err != nil {
		s.logger.Error("Load: failed to get bookings for %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	plan := &models.Plan{
		From:     from,
		To:       to,
		Windows:  windows,
		Bookings: domain.ActiveOnly(bookings),
	}

	if !withBlocks {
		return plan, nil
	}

	// 4. Разовые блокировки и повторяющиеся перерывы
	if s.blockRepo != nil {
		blocks, err := s.blockRepo.ListBlocks(ctx, rangeStart, rangeEnd)
		if err != nil {
			s.logger.Error("Load: failed to get blocks for %s..%s: %v", from, to, err)
			return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}
		plan.Blocks = append(plan.Blocks, blocks...)
	}
	plan.Blocks = append(plan.Blocks, s.windows.Breaks(from, to)...)

	s.logger.Info("Load: %s..%s windows=%d bookings=%d blocks=%d",
		from, to, len(plan.Windows), len(plan.Bookings), len(plan.Blocks))
	return plan, nil
}
