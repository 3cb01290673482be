package resolve_working_window

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Request модель запроса окна рабочих дней.
// Указывается дата или мгновение; без обоих берётся текущий день.
type Request struct {
	Target  civiltime.Date
	Instant time.Time
}

// Response модель ответа с окном рабочих дней
type Response struct {
	Target     civiltime.Date
	Days       []civiltime.Date
	RangeStart time.Time // Первый день, 00:00:00 по гражданскому времени
	RangeEnd   time.Time // Последний день, 23:59:59 по гражданскому времени
	Key        string    // Канонический ключ окна для кэша
	Excluded   []time.Weekday
	Warning    string // Непусто, если рабочих дней не хватило
}
