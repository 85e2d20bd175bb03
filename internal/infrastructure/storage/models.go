package storage

import "time"

// SolveRecord is one completed reconciliation attempt. Amounts are signed
// minor units; Selected is empty when no combination was found.
type SolveRecord struct {
	ID             string         `json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	TargetCents    int64          `json:"target_cents"`
	ToleranceCents int64          `json:"tolerance_cents"`
	ItemCount      int            `json:"item_count"`
	DroppedLines   int            `json:"dropped_lines"`
	Found          bool           `json:"found"`
	AchievedCents  int64          `json:"achieved_cents"`
	Exact          bool           `json:"exact"`
	DurationMS     int64          `json:"duration_ms"`
	Selected       []SelectedItem `json:"selected,omitempty"`
}

// SelectedItem is one chosen line item within a solve record.
type SelectedItem struct {
	Position    int    `json:"position"`
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
}
