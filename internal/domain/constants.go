package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxCalendarDays     = 62
	DefaultCacheTTLSeconds     = 120
)

// InactiveStatuses список статусов неактивных бронирований
// Не учитываются при расчёте загрузки дня
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByCompany,
	StatusNoShow,
}
