// Package solver implements the bounded subset-sum search used to
// reconcile a target amount against candidate line-item amounts.
//
// The solver is a pure function library: no state survives a call, and
// independent calls are safe to run concurrently. Runtime scales with the
// total magnitude of the input amounts, not the item count, so a table
// width ceiling bounds resource use.
package solver

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultMaxWidth bounds the reachability table when the caller does not
// configure a ceiling. 25 million cells covers inputs whose positive and
// negative amounts each total up to R$ 125.000,00.
const DefaultMaxWidth = 25_000_000

// ErrWidthExceeded reports that the reachability table for the given input
// would exceed the configured ceiling. The solve is refused outright, never
// truncated.
var ErrWidthExceeded = errors.New("table width exceeds limit")

// Limits bounds the resources one solve may consume.
type Limits struct {
	// MaxWidth caps the reachability table size. Zero means DefaultMaxWidth.
	MaxWidth int64
}

// Selection is a successful solve: the original positions of the chosen
// items in ascending order, and their exact sum.
type Selection struct {
	Positions []int
	Sum       int64
}

// Cell states for the reachability table. An explicit enumeration, so no
// sentinel integer can collide with a legitimate item index.
type cellState uint8

const (
	unreached cellState = iota
	base                // the empty subset at shifted zero
	reached
)

// cell records how a shifted sum was first reached: the item completing the
// path and the shifted sum it extends. First-reached wins; cells are never
// overwritten, which keeps reconstruction deterministic.
type cell struct {
	state cellState
	item  int
	prev  int64
}

// Solve searches for a subset of values whose sum lies within
// [target-tolerance, target+tolerance], preferring the sum closest to the
// target and, among equidistant sums, the one not exceeding it. Each value
// is used at most once.
//
// A nil Selection with a nil error means no admissible subset exists; that
// is a normal outcome, not an error. The only error condition is the table
// width ceiling in limits being exceeded, reported via ErrWidthExceeded.
func Solve(values []int64, target, tolerance int64, limits Limits) (*Selection, error) {
	if tolerance < 0 {
		tolerance = 0
	}
	if len(values) == 0 {
		return nil, nil
	}

	var minSum, maxSum int64
	for _, v := range values {
		if v < 0 {
			minSum += v
		} else {
			maxSum += v
		}
	}

	// Intersect the tolerance window with the achievable range before
	// committing to any table work.
	lower := max(minSum, target-tolerance)
	upper := min(maxSum, target+tolerance)
	if lower > upper {
		return nil, nil
	}

	offset := -minSum
	width := maxSum - minSum

	maxWidth := limits.MaxWidth
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if width > maxWidth {
		return nil, fmt.Errorf("width %d, limit %d: %w", width, maxWidth, ErrWidthExceeded)
	}

	table := buildTable(values, offset, width)

	best := selectBest(table, lower, upper, offset, target)
	if best < 0 {
		return nil, nil
	}
	// The empty subset is not an admissible selection, even when the zero
	// sum is the best candidate in the window.
	if table[best].state == base {
		return nil, nil
	}

	return &Selection{
		Positions: reconstruct(table, best),
		Sum:       best - offset,
	}, nil
}

// buildTable runs the 0/1 subset-sum sweep over shifted sums 0..width,
// processing items strictly in input order. Non-negative amounts sweep
// descending and negative amounts ascending, the mirror rule that prevents
// an item from combining with its own contribution within one pass.
func buildTable(values []int64, offset, width int64) []cell {
	table := make([]cell, width+1)
	table[offset].state = base

	for idx, v := range values {
		if v >= 0 {
			for i := width; i >= 0; i-- {
				extend(table, width, i, v, idx)
			}
		} else {
			for i := int64(0); i <= width; i++ {
				extend(table, width, i, v, idx)
			}
		}
	}
	return table
}

// extend marks shifted sum i reached through item idx when i-v is already
// reached and i is still open.
func extend(table []cell, width, i, v int64, idx int) {
	if table[i].state != unreached {
		return
	}
	from := i - v
	if from < 0 || from > width || table[from].state == unreached {
		return
	}
	table[i] = cell{state: reached, item: idx, prev: from}
}

// selectBest scans the intersected window ascending and returns the shifted
// index of the winning sum, or -1 when nothing in the window is reachable.
// The key is (distance to target, then not-exceeding preferred); the
// ascending scan makes the result reproducible.
func selectBest(table []cell, lower, upper, offset, target int64) int64 {
	bestShifted := int64(-1)
	var bestDist, bestOver int64

	for s := lower; s <= upper; s++ {
		if table[s+offset].state == unreached {
			continue
		}

		dist := s - target
		if dist < 0 {
			dist = -dist
		}
		var over int64
		if s > target {
			over = 1
		}

		if bestShifted < 0 || dist < bestDist || (dist == bestDist && over < bestOver) {
			bestShifted = s + offset
			bestDist, bestOver = dist, over
		}
	}
	return bestShifted
}

// reconstruct follows predecessor links from the winning shifted sum back
// to the shifted zero, collecting item positions. Chain order is unrelated
// to input order, so the result is explicitly re-sorted ascending.
func reconstruct(table []cell, shifted int64) []int {
	var positions []int
	for i := shifted; table[i].state == reached; i = table[i].prev {
		positions = append(positions, table[i].item)
	}
	sort.Ints(positions)
	return positions
}
