package pagenav

import (
	"fmt"

	"gorm.io/gorm"
)

// GormSource adapts a GORM query to Source so database result sets can be
// paginated. Each Slice call re-runs the query with OFFSET/LIMIT applied;
// the query itself (model, joins, filters, ordering) stays fully owned by
// the caller and must produce a deterministic order for page boundaries to
// be stable between calls.
type GormSource[T any] struct {
	db *gorm.DB
}

// NewGormSource wraps a prepared query. The query must already carry a model
// or table, e.g. db.Model(&User{}).Where(...).Order("id").
func NewGormSource[T any](db *gorm.DB) *GormSource[T] {
	return &GormSource[T]{db: db}
}

// Slice - implements Source. Fetches the rows in [bottom, top).
func (s *GormSource[T]) Slice(bottom, top int) ([]T, error) {
	bottom = max(bottom, 0)
	if top <= bottom {
		return nil, nil
	}

	var items []T
	err := s.db.Session(&gorm.Session{}).Offset(bottom).Limit(top - bottom).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("cannot fetch rows [%d, %d): %w", bottom, top, err)
	}

	return items, nil
}

// Count runs a COUNT over the query. Feed the result to NewPaginator for
// bounded pagination; unbounded pagination never needs it.
func (s *GormSource[T]) Count() (int, error) {
	var total int64
	err := s.db.Session(&gorm.Session{}).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("cannot count rows: %w", err)
	}

	return int(total), nil
}

// NewGormPaginator counts the query and builds a bounded paginator over it.
func NewGormPaginator[T any](db *gorm.DB, perPage int) (*Paginator[T], error) {
	source := NewGormSource[T](db)

	count, err := source.Count()
	if err != nil {
		return nil, err
	}

	return NewPaginator[T](source, count, perPage)
}

var _ Source[int] = (*GormSource[int])(nil)
