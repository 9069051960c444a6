package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// ClassifyWindow places a date relative to today and the rolling booking
// window. Comparison is by date component only; the window boundary is
// inclusive: exactly today+windowDays is still in_window.
//
// The window classification is a hard override downstream: past and
// beyond_window dates never expose bookable capacity no matter what
// overrides say.
func ClassifyWindow(date, today time.Time, windowDays int) domain.WindowClass {
	d := domain.DateOnly(date)
	t := domain.DateOnly(today)

	if d.Before(t) {
		return domain.WindowPast
	}
	if d.After(t.AddDate(0, 0, windowDays)) {
		return domain.WindowBeyond
	}
	return domain.WindowIn
}
