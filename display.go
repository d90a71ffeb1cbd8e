package pagenav

import (
	"errors"
	"fmt"
)

// Display is the render-ready view of one paginated region, handed to the
// templating layer. It is recomputed on every render and never cached.
type Display[T any] struct {
	// Pages is the ordered display sequence; Gap entries mark omitted pages.
	Pages []int
	// Records holds the absolute indices of the visible record range.
	Records Records
	// Page is the page currently being displayed.
	Page *Page[T]
	// Paginator is passed through for the rendering layer.
	Paginator *Paginator[T]
	// Hashtag is an optional anchor appended to generated links.
	Hashtag string
	// IsPaginated reports whether there is more than one page.
	IsPaginated bool
}

// BuildDisplay computes the display state for a bounded page using the given
// window and margin sizes.
func BuildDisplay[T any](pg *Page[T], window, margin int) (*Display[T], error) {
	p := pg.Paginator()

	pages, err := WindowPages(pg.Number, p.NumPages(), window, margin)
	if err != nil {
		return nil, err
	}

	return &Display[T]{
		Pages:       pages,
		Records:     RecordRange(pg.Number, p.PerPage(), p.Orphans(), p.Count()),
		Page:        pg,
		Paginator:   p,
		IsPaginated: p.NumPages() > 1,
	}, nil
}

// BuildDisplayWith is BuildDisplay with window and margin taken from settings.
func BuildDisplayWith[T any](pg *Page[T], s *Settings) (*Display[T], error) {
	return BuildDisplay(pg, s.Window, s.Margin)
}

// WithHashtag sets the anchor string and returns the display.
func (d *Display[T]) WithHashtag(hashtag string) *Display[T] {
	d.Hashtag = hashtag

	return d
}

// InfiniteDisplay is the render-ready view of one unbounded paginated region.
type InfiniteDisplay[T any] struct {
	// Pages is the ordered display sequence; Gap entries mark omitted pages.
	Pages []int
	// Records holds the absolute indices of the visible record range.
	Records Records
	// Page is the page currently being displayed.
	Page *InfinitePage[T]
	// Paginator is passed through for the rendering layer.
	Paginator *InfinitePaginator[T]
	// Hashtag is an optional anchor appended to generated links.
	Hashtag string
	// IsPaginated reports whether any page besides the current one exists.
	IsPaginated bool
}

// BuildInfiniteDisplay computes the display state for an unbounded page. The
// record range is derived from the items actually fetched, and the page
// sequence only expands forward from the current page.
func BuildInfiniteDisplay[T any](pg *InfinitePage[T], window, margin int) (*InfiniteDisplay[T], error) {
	p := pg.Paginator()

	pages, err := WindowPagesFunc(pg.Number, p.pageExists, window, margin)
	if err != nil {
		return nil, err
	}

	return &InfiniteDisplay[T]{
		Pages:       pages,
		Records:     Records{First: pg.StartIndex(), Last: pg.EndIndex()},
		Page:        pg,
		Paginator:   p,
		IsPaginated: pg.HasPrevious() || pg.HasNext(),
	}, nil
}

// WithHashtag sets the anchor string and returns the display.
func (d *InfiniteDisplay[T]) WithHashtag(hashtag string) *InfiniteDisplay[T] {
	d.Hashtag = hashtag

	return d
}

// AutoPage is the result of AutoPaginate: either a usable page, or the
// InvalidPage flag for the rendering layer to act on.
type AutoPage[T any] struct {
	Page        *Page[T]
	InvalidPage bool
}

// AutoPaginate builds a bounded paginator over items using the settings'
// page size and orphans, then materializes the requested page.
//
// An out-of-range or empty page is reported according to the settings: with
// FailOnInvalidPage the error is returned for the caller to map to a
// not-found response, otherwise the InvalidPage flag is set and no error is
// returned. Configuration errors are always returned.
func AutoPaginate[T any](items []T, number int, s *Settings) (AutoPage[T], error) {
	p, err := NewSlicePaginator(items, s.PerPage)
	if err != nil {
		return AutoPage[T]{}, fmt.Errorf("cannot autopaginate: %w", err)
	}
	p.WithOrphans(s.Orphans)

	pg, err := p.Page(number)
	if err != nil {
		if errors.Is(err, ErrInvalidPage) && !s.FailOnInvalidPage {
			return AutoPage[T]{InvalidPage: true}, nil
		}

		return AutoPage[T]{}, err
	}

	return AutoPage[T]{Page: pg}, nil
}
