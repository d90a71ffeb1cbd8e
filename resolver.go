package pagenav

import (
	"net/http"
	"net/url"
)

// Parameter names used by PageResolver when none are configured.
const (
	DefaultPageParam    = "page"
	DefaultPerPageParam = "per_page"
)

// PageResolver extracts the requested page number from inbound request
// parameters. The parameter name is the base name plus a per-region suffix,
// so several independently paginated regions can coexist on one rendered
// page ("page", "page_comments", "page_history", ...).
//
// Hold one resolver in the request-handling layer and hand it to rendering
// explicitly; request objects themselves stay untouched.
type PageResolver struct {
	// PageParam is the base page parameter name. Empty means DefaultPageParam.
	PageParam string
	// PerPageParam is the page-size parameter name. Empty means
	// DefaultPerPageParam.
	PerPageParam string
}

// Resolve returns the page number for the given region suffix, trying query
// parameters first, then form parameters. Absent or non-integer values
// resolve to 1.
//
// Resolve reads req.PostForm as-is; call req.ParseForm beforehand when form
// parameters should participate.
func (r PageResolver) Resolve(req *http.Request, suffix string) int {
	return r.ResolveValues(req.URL.Query(), req.PostForm, suffix)
}

// ResolveValues is Resolve over pre-parsed parameter sets.
func (r PageResolver) ResolveValues(query, form url.Values, suffix string) int {
	name := r.pageParam() + suffix
	if number, ok := lookupPageNumber(query, name); ok {
		return number
	}
	if number, ok := lookupPageNumber(form, name); ok {
		return number
	}

	return 1
}

// ResolvePerPage returns the requested page size clamped into sane bounds,
// or fallback when the parameter is absent or not an integer.
func (r PageResolver) ResolvePerPage(req *http.Request, fallback int) int {
	raw := req.URL.Query().Get(r.perPageParam())
	if raw == "" {
		raw = req.PostForm.Get(r.perPageParam())
	}
	if raw == "" {
		return fallback
	}

	perPage, err := ParsePageNumber(raw)
	if err != nil {
		return fallback
	}

	return NormalizePerPage(perPage)
}

func (r PageResolver) pageParam() string {
	if r.PageParam == "" {
		return DefaultPageParam
	}

	return r.PageParam
}

func (r PageResolver) perPageParam() string {
	if r.PerPageParam == "" {
		return DefaultPerPageParam
	}

	return r.PerPageParam
}

func lookupPageNumber(values url.Values, name string) (int, bool) {
	if values == nil {
		return 0, false
	}

	raw := values.Get(name)
	if raw == "" {
		return 0, false
	}

	number, err := ParsePageNumber(raw)
	if err != nil {
		// The parameter was supplied but unusable; fall back to page 1
		// rather than trying lower-priority parameter sets.
		return 1, true
	}

	return number, true
}
