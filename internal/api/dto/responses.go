package dto

import "time"

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// SolveResponse is the success payload of POST /api/solve. Every *_text
// field is display text in the decimal-comma convention; the raw minor-unit
// integers ride alongside for clients that compute.
type SolveResponse struct {
	Found          bool                   `json:"found"`
	SolveID        string                 `json:"solve_id"`
	TargetText     string                 `json:"target_text"`
	TotalText      string                 `json:"total_text"`
	DifferenceText string                 `json:"difference_text"`
	ToleranceText  string                 `json:"tolerance_text"`
	Exact          bool                   `json:"exact"`
	DroppedLines   int                    `json:"dropped_lines,omitempty"`
	Selected       []SelectedItemResponse `json:"selected"`
}

// SelectedItemResponse is one chosen line item, ordered ascending by its
// original position in the input.
type SelectedItemResponse struct {
	Position    int    `json:"position"`
	Label       string `json:"label"`
	AmountText  string `json:"amount_text"`
	AmountCents int64  `json:"amount_cents"`
}

// NoMatchResponse reports an infeasible solve. It is deliberately a
// different shape from SolveResponse; consumers branch on the found field,
// never on message text.
type NoMatchResponse struct {
	Found   bool   `json:"found"`
	Message string `json:"message"`
}

// SolveRecordResponse represents one entry of the solve history.
type SolveRecordResponse struct {
	ID             string                 `json:"id"`
	CreatedAt      string                 `json:"created_at"`
	TargetText     string                 `json:"target_text"`
	ToleranceText  string                 `json:"tolerance_text"`
	ItemCount      int                    `json:"item_count"`
	DroppedLines   int                    `json:"dropped_lines,omitempty"`
	Found          bool                   `json:"found"`
	TotalText      string                 `json:"total_text,omitempty"`
	Exact          bool                   `json:"exact"`
	DurationMS     int64                  `json:"duration_ms"`
	Selected       []SelectedItemResponse `json:"selected,omitempty"`
}

// SolveListResponse is returned when listing solve history.
type SolveListResponse struct {
	Solves []SolveRecordResponse `json:"solves"`
	Count  int                   `json:"count"`
}

// NewHealthResponse creates a health response with current timestamp.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
