package create_override

// CreateOverrideRequest HTTP request model
type CreateOverrideRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	Capacity  int    `json:"capacity"`
	Force     bool   `json:"force,omitempty"`
}
