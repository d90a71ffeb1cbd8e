// Package pagenav computes compact, display-ready pagination state: which
// page numbers to show, where to elide runs of pages with gap markers, and
// which absolute record range the current page covers.
//
// # Overview
//
// pagenav implements two numbering strategies:
//   - Paginator: the bounded strategy for sources with a known total item
//     count. Exposes the total page count and supports merging a short
//     trailing page of orphans into the previous one.
//   - InfinitePaginator: the unbounded strategy for streaming or expensive
//     sources where counting everything up front is not an option. Page
//     validity is probed by fetching, and paging only ever expands forward.
//
// Key concepts
//   - Source: positional access to the underlying items. SliceSource adapts
//     in-memory slices, GormSource adapts database result sets.
//   - WindowPages: the window/margin display algorithm producing the ordered
//     page sequence with Gap markers.
//   - Display: the render-ready view (page sequence, record range, navigation
//     facts) handed to a templating layer.
//   - PageResolver: extracts the requested page number from inbound request
//     parameters.
//
// See README for examples and usage details.
package pagenav
