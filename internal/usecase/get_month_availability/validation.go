package get_month_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// validateRequest валидирует входные данные и парсит месяц
func validateRequest(req *Request) (time.Time, error) {
	if req.Month == "" {
		return time.Time{}, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	ref, err := time.Parse(domain.MonthFormat, req.Month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid month %q, expected format %s", ErrInvalidInput, req.Month, domain.MonthFormat)
	}

	return ref, nil
}
