// Package service orchestrates one reconciliation request end to end:
// decode the raw inputs, run the solver, shape the outcome, and record it
// in the solve history. The service holds no state between calls.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adrianopnk-hub/nf-solver-web/internal/infrastructure/storage"
	"github.com/adrianopnk-hub/nf-solver-web/internal/items"
	"github.com/adrianopnk-hub/nf-solver-web/internal/money"
	"github.com/adrianopnk-hub/nf-solver-web/internal/solver"
)

// Request carries the raw form inputs exactly as submitted.
type Request struct {
	Items     string
	Target    string
	Tolerance string
}

// SelectedItem is one chosen line item in a successful match.
type SelectedItem struct {
	Position    int
	Label       string
	AmountCents int64
}

// Match is the outcome of a reconcile. Found=false is the infeasible case,
// a normal result distinct from every error.
type Match struct {
	Found          bool
	SolveID        string
	TargetCents    int64
	ToleranceCents int64
	AchievedCents  int64
	Exact          bool
	DroppedLines   int
	Selected       []SelectedItem
}

// ValidationError rejects a whole request before any solving occurs: the
// target was unparsable or no line yielded a usable amount. It preserves
// the raw inputs so the caller can redisplay them for correction.
type ValidationError struct {
	Reason  string
	Request Request
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// Service runs reconciliation requests.
type Service struct {
	limits solver.Limits
	repo   storage.Repository // optional; nil disables history
	logger *slog.Logger
}

// New creates a reconciliation service. repo may be nil to disable solve
// history.
func New(limits solver.Limits, repo storage.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{limits: limits, repo: repo, logger: logger}
}

// Reconcile parses the request, solves, and shapes the result.
//
// Error taxonomy: a *ValidationError means the request was rejected whole;
// an error wrapping solver.ErrWidthExceeded means the input magnitude blew
// the configured table ceiling. An infeasible solve is NOT an error: it
// returns a Match with Found=false. Per-line parse failures only reduce the
// candidate set and are reported via Match.DroppedLines.
func (s *Service) Reconcile(ctx context.Context, req Request) (*Match, error) {
	target, err := money.Parse(req.Target)
	if err != nil {
		return nil, &ValidationError{Reason: "target amount is missing or unparsable", Request: req}
	}

	// a missing or unparsable tolerance defaults to zero
	tolerance, err := money.Parse(req.Tolerance)
	if err != nil {
		tolerance = 0
	}

	results := items.ParseLines(req.Items)
	list := items.Items(results)
	if len(list) == 0 {
		return nil, &ValidationError{Reason: "no line yields a parseable amount", Request: req}
	}
	dropped := len(results) - len(list)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	sel, err := solver.Solve(items.Values(list), target, tolerance, s.limits)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Warn("solve refused",
			"error", err,
			"items", len(list),
			"target_cents", target,
		)
		return nil, err
	}

	match := &Match{
		SolveID:        uuid.NewString(),
		TargetCents:    target,
		ToleranceCents: tolerance,
		DroppedLines:   dropped,
	}

	if sel != nil {
		match.Found = true
		match.AchievedCents = sel.Sum
		match.Exact = sel.Sum == target
		match.Selected = make([]SelectedItem, 0, len(sel.Positions))
		for _, pos := range sel.Positions {
			item := list[pos]
			match.Selected = append(match.Selected, SelectedItem{
				Position:    item.Position,
				Label:       item.Label,
				AmountCents: item.Amount,
			})
		}
	}

	s.logger.Info("solve completed",
		"solve_id", match.SolveID,
		"found", match.Found,
		"items", len(list),
		"dropped_lines", dropped,
		"duration", elapsed,
	)

	s.record(match, len(list), elapsed)
	return match, nil
}

// record persists the outcome to the solve history. Failures are logged,
// never surfaced: history is an operational convenience, not part of the
// request contract.
func (s *Service) record(match *Match, itemCount int, elapsed time.Duration) {
	if s.repo == nil {
		return
	}

	rec := &storage.SolveRecord{
		ID:             match.SolveID,
		CreatedAt:      time.Now().UTC(),
		TargetCents:    match.TargetCents,
		ToleranceCents: match.ToleranceCents,
		ItemCount:      itemCount,
		DroppedLines:   match.DroppedLines,
		Found:          match.Found,
		AchievedCents:  match.AchievedCents,
		Exact:          match.Exact,
		DurationMS:     elapsed.Milliseconds(),
	}
	for _, sel := range match.Selected {
		rec.Selected = append(rec.Selected, storage.SelectedItem{
			Position:    sel.Position,
			Label:       sel.Label,
			AmountCents: sel.AmountCents,
		})
	}

	if err := s.repo.SaveSolve(rec); err != nil {
		s.logger.Error("failed to record solve", "solve_id", match.SolveID, "error", err)
	}
}
