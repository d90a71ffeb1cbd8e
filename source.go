package pagenav

// Source provides positional access to one page's worth of items. Bounds
// behave like slicing in most query layers: the requested range is clamped to
// the available data, so asking past the end yields a shorter (possibly
// empty) result rather than an error.
type Source[T any] interface {
	// Slice returns the items in the half-open range [bottom, top).
	// Both indices are zero-based.
	Slice(bottom, top int) ([]T, error)
}

// SliceSource adapts an in-memory slice to Source.
type SliceSource[T any] []T

// Slice - implements Source.
func (s SliceSource[T]) Slice(bottom, top int) ([]T, error) {
	if bottom < 0 {
		bottom = 0
	}
	if top > len(s) {
		top = len(s)
	}
	if bottom >= top {
		return nil, nil
	}

	return s[bottom:top], nil
}

var _ Source[int] = (SliceSource[int])(nil)
