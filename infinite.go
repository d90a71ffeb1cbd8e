package pagenav

import (
	"errors"
	"fmt"
)

// DefaultLinkTemplate is used when an InfinitePaginator is built without an
// explicit link template.
const DefaultLinkTemplate = "/page/%d/"

// InfinitePaginator is the unbounded numbering strategy for streaming or
// expensive sources: the total item count is never computed. Page validity
// is determined by fetching the page and checking that it holds any items,
// so paging proceeds forward until an empty page is found.
type InfinitePaginator[T any] struct {
	source              Source[T]
	perPage             int
	offset              int
	allowEmptyFirstPage bool
	linkTemplate        LinkTemplate
}

// NewInfinitePaginator builds an unbounded paginator over source. An empty
// linkTemplate falls back to DefaultLinkTemplate.
//
// Returns ErrConfiguration if perPage is not positive or the link template
// does not contain exactly one integer placeholder.
func NewInfinitePaginator[T any](source Source[T], perPage int, linkTemplate string) (*InfinitePaginator[T], error) {
	if perPage < 1 {
		return nil, fmt.Errorf("%w: per-page must be a positive integer, got %d", ErrConfiguration, perPage)
	}

	if linkTemplate == "" {
		linkTemplate = DefaultLinkTemplate
	}
	template, err := ParseLinkTemplate(linkTemplate)
	if err != nil {
		return nil, err
	}

	return &InfinitePaginator[T]{
		source:       source,
		perPage:      perPage,
		linkTemplate: template,
	}, nil
}

// WithOffset sets a starting offset added to all computed absolute record
// indices. Use it when this page set is a sub-range of a larger, separately
// numbered sequence. Negative values are treated as zero.
func (p *InfinitePaginator[T]) WithOffset(offset int) *InfinitePaginator[T] {
	p.offset = max(offset, 0)

	return p
}

// WithAllowEmptyFirstPage allows page 1 to be served even when the source
// holds no items at all.
func (p *InfinitePaginator[T]) WithAllowEmptyFirstPage() *InfinitePaginator[T] {
	p.allowEmptyFirstPage = true

	return p
}

// PerPage returns the page size.
func (p *InfinitePaginator[T]) PerPage() int {
	return p.perPage
}

// Offset returns the starting offset.
func (p *InfinitePaginator[T]) Offset() int {
	return p.offset
}

// LinkTemplate returns the validated link template.
func (p *InfinitePaginator[T]) LinkTemplate() LinkTemplate {
	return p.linkTemplate
}

// Count always panics: the total item count is unknowable without scanning
// the whole source, which this strategy exists to avoid. Calling it is a
// programmer error.
func (p *InfinitePaginator[T]) Count() int {
	panic(fmt.Errorf("%w: InfinitePaginator does not know its item count", errors.ErrUnsupported))
}

// NumPages always panics, see Count.
func (p *InfinitePaginator[T]) NumPages() int {
	panic(fmt.Errorf("%w: InfinitePaginator does not know its page count", errors.ErrUnsupported))
}

// PageRange always panics, see Count.
func (p *InfinitePaginator[T]) PageRange() []int {
	panic(fmt.Errorf("%w: InfinitePaginator does not know its page range", errors.ErrUnsupported))
}

// ValidateNumber checks that number could address a page (it is at least 1)
// and returns it unchanged. Whether the page actually holds items is only
// known after fetching it, see Page.
func (p *InfinitePaginator[T]) ValidateNumber(number int) (int, error) {
	if number < 1 {
		return 0, fmt.Errorf("%w: page number %d is less than 1", ErrEmptyPage, number)
	}

	return number, nil
}

// Page materializes the page with the given 1-based number. Returns
// ErrEmptyPage when the fetched slice is empty, unless it is page 1 and
// empty first pages are allowed.
func (p *InfinitePaginator[T]) Page(number int) (*InfinitePage[T], error) {
	number, err := p.ValidateNumber(number)
	if err != nil {
		return nil, err
	}

	bottom := (number - 1) * p.perPage
	items, err := p.source.Slice(bottom, bottom+p.perPage)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch page %d: %w", number, err)
	}
	if len(items) == 0 && !(number == 1 && p.allowEmptyFirstPage) {
		return nil, fmt.Errorf("%w: page number %d is past the end", ErrEmptyPage, number)
	}

	return &InfinitePage[T]{
		Number:    number,
		Items:     items,
		paginator: p,
	}, nil
}

// pageExists probes whether the page with the given number holds any items.
// Pages before the current one are always assumed to exist by callers; this
// is only used to look forward.
func (p *InfinitePaginator[T]) pageExists(number int) bool {
	if number < 1 {
		return false
	}

	bottom := (number - 1) * p.perPage
	items, err := p.source.Slice(bottom, bottom+1)

	return err == nil && len(items) > 0
}

// InfinitePage is one page's worth of items from an InfinitePaginator.
type InfinitePage[T any] struct {
	// Number is the 1-based page number.
	Number int
	// Items holds the items belonging to this page.
	Items []T

	paginator *InfinitePaginator[T]
}

// Paginator returns the paginator this page was materialized from.
func (pg *InfinitePage[T]) Paginator() *InfinitePaginator[T] {
	return pg.paginator
}

// Len returns the number of items on this page.
func (pg *InfinitePage[T]) Len() int {
	return len(pg.Items)
}

func (pg *InfinitePage[T]) HasPrevious() bool {
	return pg.Number > 1
}

// HasNext probes the source for at least one item past this page.
func (pg *InfinitePage[T]) HasNext() bool {
	return pg.paginator.pageExists(pg.Number + 1)
}

// StartIndex returns the 1-based absolute index of the first item on this
// page, shifted by the paginator offset.
func (pg *InfinitePage[T]) StartIndex() int {
	return pg.paginator.offset + (pg.Number-1)*pg.paginator.perPage + 1
}

// EndIndex returns the 1-based absolute index of the last item on this page,
// shifted by the paginator offset. Unlike the bounded strategy it is derived
// from the items actually fetched, not from a total count.
func (pg *InfinitePage[T]) EndIndex() int {
	return pg.paginator.offset + (pg.Number-1)*pg.paginator.perPage + len(pg.Items)
}

// NextLink builds the URL of the following page from the link template.
// Returns false at the end of the dataset.
func (pg *InfinitePage[T]) NextLink() (string, bool) {
	if !pg.HasNext() {
		return "", false
	}

	return pg.paginator.linkTemplate.Build(pg.Number + 1), true
}

// PreviousLink builds the URL of the preceding page from the link template.
// Returns false on the first page.
func (pg *InfinitePage[T]) PreviousLink() (string, bool) {
	if !pg.HasPrevious() {
		return "", false
	}

	return pg.paginator.linkTemplate.Build(pg.Number - 1), true
}
