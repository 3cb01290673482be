package set_override

import (
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// SetOverrideRequest HTTP request model
type SetOverrideRequest struct {
	Closed  bool     `json:"closed"`
	Windows []string `json:"windows"`
	Reason  string   `json:"reason"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetOverrideRequest) ToServiceRequest(day civiltime.Date, userID int64) *models.SetOverrideRequest {
	return &models.SetOverrideRequest{
		UserID:  userID,
		Date:    day,
		Closed:  r.Closed,
		Windows: r.Windows,
		Reason:  r.Reason,
	}
}
