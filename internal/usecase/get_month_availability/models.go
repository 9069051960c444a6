package get_month_availability

// Request модель запроса доступности на месяц
type Request struct {
	Month string // Месяц в формате "2006-01"
}

// SlotResponse доступность одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Status    string `json:"status"`    // available / limited / full / blocked / past
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

// DayResponse доступность одного дня календарной сетки
type DayResponse struct {
	Date         string         `json:"date"`   // "2006-01-02"
	Window       string         `json:"window"` // past / in_window / beyond_window
	Status       string         `json:"status"` // available / limited / full / blocked
	OutsideMonth bool           `json:"outsideMonth,omitempty"`
	Slots        []SlotResponse `json:"slots"`
}

// Response календарная сетка месяца
// Дни идут подряд, начиная с воскресенья, количество кратно 7 -
// клиент рендерит сетку без собственных вычислений дат
type Response struct {
	Month string        `json:"month"`
	Days  []DayResponse `json:"days"`
}
