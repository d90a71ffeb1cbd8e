package pagenav

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrConfiguration indicates invalid construction parameters: a
	// non-positive page size, a malformed link template, a negative window
	// or margin. It is raised at construction time and never recovered
	// internally.
	ErrConfiguration = errors.New("invalid pagination configuration")

	// ErrInvalidPage is the parent of every "this page cannot be shown"
	// failure. Callers that only care whether a requested page is usable
	// match against it with errors.Is.
	ErrInvalidPage = errors.New("invalid page")

	// ErrNotAnInteger indicates the page number argument could not be parsed
	// as an integer.
	ErrNotAnInteger = fmt.Errorf("%w: page number is not an integer", ErrInvalidPage)

	// ErrEmptyPage indicates a validated page number outside the valid range,
	// or a probed page that contains no results.
	ErrEmptyPage = fmt.Errorf("%w: page contains no results", ErrInvalidPage)
)

// ParsePageNumber converts a raw page number argument into an integer.
// Returns ErrNotAnInteger if the string does not parse.
func ParsePageNumber(raw string) (int, error) {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, raw)
	}

	return number, nil
}
