package get_calendar_overview

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxDays int) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.From.Valid() || !req.To.Valid() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	if days := req.From.DaysUntil(req.To) + 1; days > maxDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLarge, days, maxDays)
	}

	return nil
}
