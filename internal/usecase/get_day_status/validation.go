package get_day_status

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.Date.Valid() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
