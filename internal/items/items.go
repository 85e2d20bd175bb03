// Package items loads labeled, positionally-ordered line-item amounts from
// raw multi-line text.
//
// Each non-empty input line is either "label; amount", "label<TAB>amount",
// or a bare amount. Lines whose amount does not parse are reported as
// explicit per-line outcomes rather than silently discarded, so callers can
// surface diagnostics or drop them as they see fit.
package items

import (
	"fmt"
	"strings"

	"github.com/adrianopnk-hub/nf-solver-web/internal/money"
)

// LineItem is one candidate amount in minor units. Position is the stable
// 0-based index among successfully parsed items, in input order; it is the
// sole identity carried through solving and output ordering.
type LineItem struct {
	Label    string `json:"label"`
	Amount   int64  `json:"amount"`
	Position int    `json:"position"`
}

// LineResult is the outcome of parsing one non-empty input line. Exactly
// one of Item and Err is set.
type LineResult struct {
	Line int    // 1-based number among non-empty lines
	Raw  string // the trimmed input line
	Item *LineItem
	Err  error
}

// ParseLines splits raw text into per-line outcomes. Blank lines are
// skipped; everything else is numbered starting at 1 and either yields a
// LineItem or a parse error for that line. Positions are assigned in input
// order, counting successful lines only.
func ParseLines(text string) []LineResult {
	var results []LineResult

	line := 0
	position := 0
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		line++

		label, amountText := splitLine(raw, line)

		amount, err := money.Parse(amountText)
		if err != nil {
			results = append(results, LineResult{
				Line: line,
				Raw:  raw,
				Err:  fmt.Errorf("line %d: %w", line, err),
			})
			continue
		}

		results = append(results, LineResult{
			Line: line,
			Raw:  raw,
			Item: &LineItem{Label: label, Amount: amount, Position: position},
		})
		position++
	}

	return results
}

// Items collects the successful outcomes, positions 0..n-1 in input order.
func Items(results []LineResult) []LineItem {
	items := make([]LineItem, 0, len(results))
	for _, r := range results {
		if r.Item != nil {
			items = append(items, *r.Item)
		}
	}
	return items
}

// Values extracts the amounts in position order for the solver.
func Values(items []LineItem) []int64 {
	values := make([]int64, len(items))
	for i, item := range items {
		values[i] = item.Amount
	}
	return values
}

// splitLine separates a line into label and amount text. Fields are split
// on ";" or tab; the first field is the label, the last is the amount. A
// bare amount or an empty label falls back to "Item N".
func splitLine(raw string, line int) (label, amountText string) {
	fields := strings.Split(strings.ReplaceAll(raw, "\t", ";"), ";")
	if len(fields) == 1 {
		return fmt.Sprintf("Item %d", line), fields[0]
	}

	label = strings.TrimSpace(fields[0])
	if label == "" {
		label = fmt.Sprintf("Item %d", line)
	}
	return label, fields[len(fields)-1]
}
