package pagenav

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Gap marks omitted pages in a display sequence. Page numbers are 1-based,
// so zero never collides with a real page. Rendering layers typically turn
// it into an ellipsis.
const Gap = 0

// Records holds the 1-based absolute indices of the first and last records
// visible on the current page.
type Records struct {
	First int
	Last  int
}

// WindowPages computes the ordered display sequence of page numbers and Gap
// markers for a bounded page set.
//
// The sequence keeps three ranges: up to window pages on each side of
// current (shifted inward at the boundaries so the near block keeps its
// width), the first margin pages and the last margin pages. Adjacent or
// overlapping ranges merge with no marker; any hole of one or more missing
// page numbers collapses to exactly one Gap. With margin zero the boundary
// margins disappear and a single Gap marks each truncated end instead.
//
// Returns ErrConfiguration if window or margin is negative, or if current is
// not a page of a total-page set.
func WindowPages(current, total, window, margin int) ([]int, error) {
	if err := validateWindowMargin(window, margin); err != nil {
		return nil, err
	}
	if total < 1 {
		return nil, fmt.Errorf("%w: total page count must be at least 1, got %d", ErrConfiguration, total)
	}
	if current < 1 || current > total {
		return nil, fmt.Errorf("%w: current page %d is outside 1..%d", ErrConfiguration, current, total)
	}

	low := current - window
	high := current + window
	if low < 1 {
		high += 1 - low
		low = 1
	}
	if high > total {
		low -= high - total
		high = total
		low = max(low, 1)
	}

	if margin == 0 {
		pages := make([]int, 0, high-low+3)
		if low > 1 {
			pages = append(pages, Gap)
		}
		for n := low; n <= high; n++ {
			pages = append(pages, n)
		}
		if high < total {
			pages = append(pages, Gap)
		}

		return pages, nil
	}

	merged := make([]int, 0, high-low+1+2*margin)
	for n := 1; n <= min(margin, total); n++ {
		merged = append(merged, n)
	}
	for n := low; n <= high; n++ {
		merged = append(merged, n)
	}
	for n := max(1, total-margin+1); n <= total; n++ {
		merged = append(merged, n)
	}
	slices.Sort(merged)

	return markGaps(lo.Uniq(merged), false), nil
}

// WindowPagesFunc is WindowPages for an unbounded page set, where the total
// page count is unknown. pageExists reports whether a page number holds any
// items; pages at or before current are assumed to exist without probing.
//
// The sequence only ever expands forward: there is no tail margin, and a
// trailing Gap is appended when at least one more page exists past the kept
// range.
func WindowPagesFunc(current int, pageExists func(int) bool, window, margin int) ([]int, error) {
	if err := validateWindowMargin(window, margin); err != nil {
		return nil, err
	}
	if current < 1 {
		return nil, fmt.Errorf("%w: current page %d is less than 1", ErrConfiguration, current)
	}

	low := current - window
	high := current + window
	if low < 1 {
		high += 1 - low
		low = 1
	}

	// Walk forward from the current page until the first missing one. Only
	// the confirmed stretch is displayed.
	confirmed := current
	for n := current + 1; n <= high; n++ {
		if !pageExists(n) {
			break
		}
		confirmed = n
	}
	high = confirmed

	merged := make([]int, 0, high-low+1+margin)
	for n := 1; n <= min(margin, high); n++ {
		merged = append(merged, n)
	}
	for n := low; n <= high; n++ {
		merged = append(merged, n)
	}
	slices.Sort(merged)

	return markGaps(lo.Uniq(merged), pageExists(high+1)), nil
}

// markGaps interleaves a sorted, deduplicated page list with Gap markers:
// one marker per hole, a leading marker when the list does not start at
// page 1 and a trailing marker when requested.
func markGaps(sorted []int, trailing bool) []int {
	pages := make([]int, 0, len(sorted)+2)
	previous := 0
	for _, n := range sorted {
		if n-previous > 1 && previous != 0 {
			pages = append(pages, Gap)
		} else if previous == 0 && n > 1 {
			pages = append(pages, Gap)
		}
		pages = append(pages, n)
		previous = n
	}
	if trailing {
		pages = append(pages, Gap)
	}

	return pages
}

// RecordRange computes the absolute record indices visible on a page of a
// bounded page set: items on an absorbed orphan page count toward the last
// page that swallowed them.
func RecordRange(number, perPage, orphans, count int) Records {
	first := (number-1)*perPage + 1
	last := first + perPage - 1
	if last+orphans >= count {
		last = count
	}

	return Records{First: first, Last: last}
}

func validateWindowMargin(window, margin int) error {
	if window < 0 {
		return fmt.Errorf("%w: window cannot be negative, got %d", ErrConfiguration, window)
	}
	if margin < 0 {
		return fmt.Errorf("%w: margin cannot be negative, got %d", ErrConfiguration, margin)
	}

	return nil
}
