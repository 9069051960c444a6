package get_day_availability

// Request модель запроса доступности на день
type Request struct {
	Date string // Дата в формате "2006-01-02"
}

// SlotResponse доступность одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Status    string `json:"status"`    // available / limited / full / blocked / past
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

// Response доступность дня со слотами
type Response struct {
	Date   string         `json:"date"`
	Window string         `json:"window"` // past / in_window / beyond_window
	Status string         `json:"status"` // Агрегированный статус дня
	Slots  []SlotResponse `json:"slots"`
}
