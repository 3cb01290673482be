package get_reschedule_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/engine/workingday"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Request модель запроса слотов для переноса бронирования
type Request struct {
	BookingID int64
	Target    civiltime.Date // Желаемый день; по умолчанию день бронирования
	Scope     string         // Идентификатор выбора клиента (вкладка, сессия)
}

// Response модель ответа со слотами, сгруппированными по дням
type Response struct {
	BookingID  int64
	Booking    *domain.Booking
	Target     civiltime.Date
	Days       []civiltime.Date // Дни окна
	RangeStart time.Time
	RangeEnd   time.Time
	Slots      []workingday.DaySlots
	SlotCount  int
	FromCache  bool
	Stale      bool   // Клиент уже выбрал другой день, результат устарел
	Warning    string // Окно неполное
}
