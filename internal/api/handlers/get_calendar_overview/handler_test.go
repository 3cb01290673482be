package get_calendar_overview

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getCalendarOverview "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar_overview"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type stubUseCase struct {
	err error
	got *getCalendarOverview.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getCalendarOverview.Request) (*getCalendarOverview.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &getCalendarOverview.Response{
		From: req.From,
		To:   req.To,
		Days: []getCalendarOverview.Day{{
			Date:        req.From,
			Status:      domain.DayStatusClosed,
			Utilization: 0.9,
		}},
		Counts: map[domain.DayStatus]int{domain.DayStatusClosed: 1},
	}, nil
}

func TestToUseCaseRequest(t *testing.T) {
	t.Run("month", func(t *testing.T) {
		req, err := ToUseCaseRequest(url.Values{"month": {"2024-02"}})
		require.NoError(t, err)
		assert.Equal(t, civiltime.Date{Year: 2024, Month: time.February, Day: 1}, req.From)
		assert.Equal(t, civiltime.Date{Year: 2024, Month: time.February, Day: 29}, req.To)
	})

	t.Run("december", func(t *testing.T) {
		req, err := ToUseCaseRequest(url.Values{"month": {"2024-12"}})
		require.NoError(t, err)
		assert.Equal(t, civiltime.Date{Year: 2024, Month: time.December, Day: 31}, req.To)
	})

	t.Run("range", func(t *testing.T) {
		req, err := ToUseCaseRequest(url.Values{"from": {"2024-03-01"}, "to": {"2024-03-15"}})
		require.NoError(t, err)
		assert.Equal(t, 14, req.From.DaysUntil(req.To))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ToUseCaseRequest(url.Values{"from": {"2024-03-01"}})
		assert.ErrorIs(t, err, errMissingRange)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ToUseCaseRequest(url.Values{"month": {"2024-13"}})
		assert.ErrorIs(t, err, errInvalidDate)
	})
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
		code  int
	}{
		{"ok", "month=2024-07", nil, http.StatusOK},
		{"missing range", "", nil, http.StatusBadRequest},
		{"too large", "from=2024-01-01&to=2024-12-31", fmt.Errorf("%w: 366 days", getCalendarOverview.ErrRangeTooLarge), http.StatusBadRequest},
		{"internal", "month=2024-07", fmt.Errorf("%w: db", getCalendarOverview.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?"+tt.query, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_Handle_Body(t *testing.T) {
	h := NewHandler(&stubUseCase{}, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?from=2024-07-01&to=2024-07-01", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"from": "2024-07-01",
		"to": "2024-07-01",
		"days": [{"date": "2024-07-01", "status": "closed", "utilizationPercent": 90, "isPast": false, "isToday": false}],
		"counts": {"closed": 1}
	}`, rec.Body.String())
}
