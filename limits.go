package pagenav

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// IsNormalizedPerPageMax clamps a requested page size into [1, maxPerPage]
// and reports whether the input was already usable as-is. Non-positive
// values fall back to DefaultPerPage.
func IsNormalizedPerPageMax(perPage int, maxPerPage int) (int, bool) {
	if perPage <= 0 {
		return DefaultPerPage, false
	} else if perPage > maxPerPage {
		return maxPerPage, false
	}

	return perPage, true
}

func NormalizePerPageMax(perPage int, maxPerPage int) int {
	ret, _ := IsNormalizedPerPageMax(perPage, maxPerPage)
	return ret
}

func NormalizePerPage(perPage int) int {
	return NormalizePerPageMax(perPage, MaxPerPage)
}
