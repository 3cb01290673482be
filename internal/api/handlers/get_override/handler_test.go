package get_override

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) GetOverride(_ context.Context, day civiltime.Date) (*models.OverrideResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.OverrideResponse{Date: day.Key(), Closed: true, Windows: []string{}, Reason: "inventory"}, nil
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/days/{date}/override", h.Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		rec := serve(NewHandler(&stubService{}, logger.NewNop()), "/api/v1/days/2024-07-04/override")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"date": "2024-07-04", "closed": true, "windows": [], "reason": "inventory"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		rec := serve(NewHandler(&stubService{err: schedule.ErrOverrideNotFound}, logger.NewNop()), "/api/v1/days/2024-07-05/override")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		rec := serve(NewHandler(&stubService{}, logger.NewNop()), "/api/v1/days/2024-02-30/override")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
