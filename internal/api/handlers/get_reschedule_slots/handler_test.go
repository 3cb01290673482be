package get_reschedule_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/engine/workingday"
	getRescheduleSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_reschedule_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type stubUseCase struct {
	resp *getRescheduleSlots.Response
	err  error
	got  *getRescheduleSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getRescheduleSlots.Request) (*getRescheduleSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/api/v1/bookings/{bookingId}/reschedule-slots", middleware.Auth(http.HandlerFunc(h.Handle))).
		Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func newRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.UserIDHeader, "42")
	return req
}

func utc(day, hour int) time.Time {
	return time.Date(2024, time.June, day, hour, 0, 0, 0, time.UTC)
}

func TestHandler_Handle(t *testing.T) {
	d := func(day int) civiltime.Date { return civiltime.Date{Year: 2024, Month: time.June, Day: day} }

	uc := &stubUseCase{resp: &getRescheduleSlots.Response{
		BookingID: 7,
		Booking: &domain.Booking{
			ID:          7,
			ServiceName: "Haircut",
			Start:       utc(12, 14),
			End:         utc(12, 15),
			Status:      domain.StatusConfirmed,
		},
		Target:     d(12),
		Days:       []civiltime.Date{d(11), d(12), d(13)},
		RangeStart: time.Date(2024, time.June, 11, 4, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2024, time.June, 14, 3, 59, 59, 0, time.UTC),
		Slots: []workingday.DaySlots{
			{Day: d(13), Slots: []domain.AvailableSlot{{Start: utc(13, 13), End: utc(13, 14)}}},
		},
		SlotCount: 1,
		FromCache: true,
	}}
	h := NewHandler(uc, logger.NewNop())

	req := newRequest("/api/v1/bookings/7/reschedule-slots?target=2024-06-12")
	req.Header.Set(SelectionScopeHeader, "tab-1")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.got.BookingID)
	assert.Equal(t, d(12), uc.got.Target)
	assert.Equal(t, "tab-1", uc.got.Scope)
	assert.JSONEq(t, `{
		"booking": {
			"id": 7,
			"serviceName": "Haircut",
			"start": "2024-06-12T10:00:00-04:00",
			"end": "2024-06-12T11:00:00-04:00",
			"status": "confirmed"
		},
		"target": "2024-06-12",
		"rangeStart": "2024-06-11T00:00:00-04:00",
		"rangeEnd": "2024-06-13T23:59:59-04:00",
		"days": [
			{"date": "2024-06-11", "slots": []},
			{"date": "2024-06-12", "slots": []},
			{"date": "2024-06-13", "slots": [{"start": "2024-06-13T09:00:00-04:00", "end": "2024-06-13T10:00:00-04:00"}]}
		],
		"slotCount": 1,
		"fromCache": true,
		"stale": false
	}`, rec.Body.String())
}

func TestHandler_Handle_DefaultScope(t *testing.T) {
	uc := &stubUseCase{resp: &getRescheduleSlots.Response{Stale: true}}
	h := NewHandler(uc, logger.NewNop())

	rec := serve(h, newRequest("/api/v1/bookings/7/reschedule-slots"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", uc.got.Scope)
	assert.True(t, uc.got.Target.IsZero())
	assert.Contains(t, rec.Body.String(), `"stale":true`)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
		code int
	}{
		{"bad id", "/api/v1/bookings/abc/reschedule-slots", nil, http.StatusBadRequest},
		{"zero id", "/api/v1/bookings/0/reschedule-slots", nil, http.StatusBadRequest},
		{"bad target", "/api/v1/bookings/7/reschedule-slots?target=tomorrow", nil, http.StatusBadRequest},
		{"not found", "/api/v1/bookings/7/reschedule-slots", fmt.Errorf("%w: id=7", getRescheduleSlots.ErrBookingNotFound), http.StatusNotFound},
		{"cancelled", "/api/v1/bookings/7/reschedule-slots", getRescheduleSlots.ErrNotReschedulable, http.StatusConflict},
		{"provider down", "/api/v1/bookings/7/reschedule-slots", fmt.Errorf("%w: timeout", getRescheduleSlots.ErrAvailabilityUnavailable), http.StatusServiceUnavailable},
		{"invalid", "/api/v1/bookings/7/reschedule-slots", getRescheduleSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/api/v1/bookings/7/reschedule-slots", getRescheduleSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
			rec := serve(h, newRequest(tt.path))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_Handle_Unauthorized(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/7/reschedule-slots", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}
