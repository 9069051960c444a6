package get_day_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// validateRequest валидирует входные данные и парсит дату
func validateRequest(req *Request) (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected format %s", ErrInvalidInput, req.Date, domain.DateFormat)
	}

	return date, nil
}
