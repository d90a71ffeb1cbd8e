package pagenav

import "github.com/samber/lo"

// Page is one page's worth of items from a bounded Paginator, together with
// its 1-based number. It is owned by the call that requested it and is not
// cached.
type Page[T any] struct {
	// Number is the 1-based page number.
	Number int
	// Items holds the items belonging to this page.
	Items []T

	paginator *Paginator[T]
}

// Paginator returns the paginator this page was materialized from.
func (pg *Page[T]) Paginator() *Paginator[T] {
	return pg.paginator
}

// Len returns the number of items on this page.
func (pg *Page[T]) Len() int {
	return len(pg.Items)
}

func (pg *Page[T]) HasPrevious() bool {
	return pg.Number > 1
}

func (pg *Page[T]) HasNext() bool {
	return pg.Number < pg.paginator.NumPages()
}

// PreviousPageNumber returns the number of the preceding page. Only
// meaningful when HasPrevious is true.
func (pg *Page[T]) PreviousPageNumber() int {
	return pg.Number - 1
}

// NextPageNumber returns the number of the following page. Only meaningful
// when HasNext is true.
func (pg *Page[T]) NextPageNumber() int {
	return pg.Number + 1
}

// StartIndex returns the 1-based absolute index of the first item on this
// page within the whole sequence, or 0 for an empty source.
func (pg *Page[T]) StartIndex() int {
	if pg.paginator.Count() == 0 {
		return 0
	}

	return (pg.Number-1)*pg.paginator.PerPage() + 1
}

// EndIndex returns the 1-based absolute index of the last item on this page.
// The last page ends at the total item count, which also covers absorbed
// orphans.
func (pg *Page[T]) EndIndex() int {
	return lo.Ternary(
		pg.Number == pg.paginator.NumPages(),
		pg.paginator.Count(),
		pg.Number*pg.paginator.PerPage(),
	)
}
