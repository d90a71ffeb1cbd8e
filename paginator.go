package pagenav

import "fmt"

// Paginator is the bounded numbering strategy: the total item count is known
// up front, so the total page count, the full page range and orphan merging
// are all available.
//
// A Paginator is built once per render pass and is read-only afterwards; it
// is safe to share between goroutines as long as nobody mutates it.
type Paginator[T any] struct {
	source              Source[T]
	count               int
	perPage             int
	orphans             int
	allowEmptyFirstPage bool
}

// NewPaginator builds a bounded paginator over source, whose total item
// count must be supplied by the caller (typically len() for slices or a
// COUNT query for database sources).
//
// Returns ErrConfiguration if perPage is not positive or count is negative.
func NewPaginator[T any](source Source[T], count, perPage int) (*Paginator[T], error) {
	if perPage < 1 {
		return nil, fmt.Errorf("%w: per-page must be a positive integer, got %d", ErrConfiguration, perPage)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: item count cannot be negative, got %d", ErrConfiguration, count)
	}

	return &Paginator[T]{
		source:  source,
		count:   count,
		perPage: perPage,
	}, nil
}

// NewSlicePaginator builds a bounded paginator directly over an in-memory slice.
func NewSlicePaginator[T any](items []T, perPage int) (*Paginator[T], error) {
	return NewPaginator[T](SliceSource[T](items), len(items), perPage)
}

// WithOrphans sets the orphan threshold: a trailing page holding at most
// this many items is merged into the previous page. Negative values are
// treated as zero.
func (p *Paginator[T]) WithOrphans(orphans int) *Paginator[T] {
	p.orphans = max(orphans, 0)

	return p
}

// WithAllowEmptyFirstPage allows page 1 to be served even when the source
// holds no items at all.
func (p *Paginator[T]) WithAllowEmptyFirstPage() *Paginator[T] {
	p.allowEmptyFirstPage = true

	return p
}

// Count returns the total number of items.
func (p *Paginator[T]) Count() int {
	return p.count
}

// PerPage returns the page size.
func (p *Paginator[T]) PerPage() int {
	return p.perPage
}

// Orphans returns the orphan threshold.
func (p *Paginator[T]) Orphans() int {
	return p.orphans
}

// NumPages returns the total page count. A paginator over an empty source
// has one page when empty first pages are allowed, zero otherwise.
func (p *Paginator[T]) NumPages() int {
	if p.count == 0 && !p.allowEmptyFirstPage {
		return 0
	}

	hits := max(1, p.count-p.orphans)

	return (hits + p.perPage - 1) / p.perPage
}

// PageRange returns the sequence 1..NumPages().
func (p *Paginator[T]) PageRange() []int {
	pages := make([]int, 0, p.NumPages())
	for n := 1; n <= p.NumPages(); n++ {
		pages = append(pages, n)
	}

	return pages
}

// ValidateNumber checks that number addresses an existing page and returns
// it unchanged. Returns ErrEmptyPage when it does not, except that page 1 is
// always accepted for an empty source with empty first pages allowed.
func (p *Paginator[T]) ValidateNumber(number int) (int, error) {
	if number < 1 {
		return 0, fmt.Errorf("%w: page number %d is less than 1", ErrEmptyPage, number)
	}
	if number > p.NumPages() && !(number == 1 && p.allowEmptyFirstPage) {
		return 0, fmt.Errorf("%w: page number %d is out of range", ErrEmptyPage, number)
	}

	return number, nil
}

// Page materializes the page with the given 1-based number. The slice for
// the last page is extended to absorb a trailing orphan page.
func (p *Paginator[T]) Page(number int) (*Page[T], error) {
	number, err := p.ValidateNumber(number)
	if err != nil {
		return nil, err
	}

	bottom := (number - 1) * p.perPage
	top := bottom + p.perPage
	if top+p.orphans >= p.count {
		top = p.count
	}

	items, err := p.source.Slice(bottom, top)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch page %d: %w", number, err)
	}

	return &Page[T]{
		Number:    number,
		Items:     items,
		paginator: p,
	}, nil
}
