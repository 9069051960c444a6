package create_block

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	Date      string  `json:"date"`                // "2025-10-15"
	StartTime *string `json:"startTime,omitempty"` // nil = весь день
	Reason    *string `json:"reason,omitempty"`
	Force     bool    `json:"force,omitempty"`
}
