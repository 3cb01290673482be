package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Service сервис управления исключениями из недельного расписания
type Service struct {
	overrideRepo OverrideRepository
	maxDays      int
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(overrideRepo OverrideRepository, maxDays int, logger Logger) *Service {
	if maxDays <= 0 {
		maxDays = domain.DefaultMaxCalendarDays
	}
	return &Service{
		overrideRepo: overrideRepo,
		maxDays:      maxDays,
		logger:       logger,
	}
}

// GetOverride получает исключение для даты
func (s *Service) GetOverride(ctx context.Context, day civiltime.Date) (*models.OverrideResponse, error) {
	s.logger.Info("GetOverride: fetching override for %s", day)

	if !day.Valid() {
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	list, err := s.overrideRepo.GetOverrides(ctx, day, day)
	if err != nil {
		s.logger.Error("GetOverride: repository error for %s: %v", day, err)
		return nil, fmt.Errorf("%w: GetOverride - repository error: %v", ErrInternal, err)
	}
	if len(list) == 0 {
		s.logger.Warn("GetOverride: no override for %s", day)
		return nil, ErrOverrideNotFound
	}

	return models.FromDomainOverride(list[0]), nil
}

// ListOverrides получает исключения за диапазон дат
func (s *Service) ListOverrides(ctx context.Context, from, to civiltime.Date) (*models.OverrideListResponse, error) {
	s.logger.Info("ListOverrides: fetching overrides for %s..%s", from, to)

	if !from.Valid() || !to.Valid() || to.Before(from) {
		return nil, fmt.Errorf("%w: invalid date range", ErrInvalidInput)
	}
	if from.DaysUntil(to)+1 > s.maxDays {
		return nil, fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, s.maxDays)
	}

	list, err := s.overrideRepo.GetOverrides(ctx, from, to)
	if err != nil {
		s.logger.Error("ListOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOverrides: found %d overrides", len(list))
	return models.FromDomainOverrideList(list), nil
}

// SetOverride создает или заменяет исключение для даты
// Доступно только сотрудникам (проверяется middleware)
func (s *Service) SetOverride(ctx context.Context, req *models.SetOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("SetOverride: user=%d sets override for %s (closed=%t)", req.UserID, req.Date, req.Closed)

	// 1. Валидация даты
	if !req.Date.Valid() {
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	// 2. Открытый день без окон не имеет смысла - для этого есть closed
	if !req.Closed && len(req.Windows) == 0 {
		s.logger.Warn("SetOverride: no windows for open day %s", req.Date)
		return nil, fmt.Errorf("%w: windows are required when the day is not closed", ErrInvalidInput)
	}

	// 3. Разбираем окна
	override, err := req.ToDomainOverride()
	if err != nil {
		s.logger.Warn("SetOverride: invalid windows for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Сохраняем
	if err := s.overrideRepo.UpsertOverride(ctx, override); err != nil {
		s.logger.Error("SetOverride: repository error for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: SetOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetOverride: override for %s saved", req.Date)
	return models.FromDomainOverride(override), nil
}

// DeleteOverride удаляет исключение, день возвращается к недельному расписанию
func (s *Service) DeleteOverride(ctx context.Context, day civiltime.Date, userID int64) error {
	s.logger.Info("DeleteOverride: user=%d deletes override for %s", userID, day)

	if !day.Valid() {
		return fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	if err := s.overrideRepo.DeleteOverride(ctx, day); err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: no override for %s", day)
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for %s: %v", day, err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOverride: override for %s deleted", day)
	return nil
}
