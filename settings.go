package pagenav

// Default display sizes, used when a rendering layer does not pick its own.
const (
	DefaultWindow = 4
	DefaultMargin = 2
)

// Settings carries the process-wide pagination defaults. A Settings value is
// read-only during a render pass; construct it at startup and pass it by
// reference into the components that need it rather than mutating globals.
type Settings struct {
	// Window is the count of pages shown on each side of the current page.
	Window int
	// Margin is the count of pages always shown at both ends of the sequence.
	Margin int
	// PerPage is the default page size.
	PerPage int
	// Orphans is the default orphan threshold.
	Orphans int
	// FailOnInvalidPage makes AutoPaginate return the invalid-page error
	// instead of setting the InvalidPage flag, so the request layer can map
	// it to a not-found response.
	FailOnInvalidPage bool
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		Window:  DefaultWindow,
		Margin:  DefaultMargin,
		PerPage: DefaultPerPage,
	}
}

// Override replaces the settings in place and returns a function restoring
// the previous values. Callers performing a scoped override (tests, mostly)
// defer the restore so it runs on every exit path:
//
//	restore := settings.Override(Settings{PerPage: 5})
//	defer restore()
func (s *Settings) Override(next Settings) (restore func()) {
	previous := *s
	*s = next

	return func() {
		*s = previous
	}
}
