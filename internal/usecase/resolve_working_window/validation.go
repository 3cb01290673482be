package resolve_working_window

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.Target.IsZero() && !req.Target.Valid() {
		return fmt.Errorf("%w: invalid target date", ErrInvalidInput)
	}

	return nil
}
