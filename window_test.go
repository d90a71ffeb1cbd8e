package pagenav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_WindowPages_DefaultWindow(t *testing.T) {
	// 31 items, 2 per page -> 16 pages, window=2, margin=2.
	const total = 16

	tests := []struct {
		name    string
		current int
		want    []int
	}{
		{"on start page 1", 1, []int{1, 2, 3, 4, 5, Gap, 15, 16}},
		{"on start page 2", 2, []int{1, 2, 3, 4, 5, Gap, 15, 16}},
		{"on start page 3", 3, []int{1, 2, 3, 4, 5, Gap, 15, 16}},
		{"on start page 4", 4, []int{1, 2, 3, 4, 5, 6, Gap, 15, 16}},
		{"on start page 5", 5, []int{1, 2, 3, 4, 5, 6, 7, Gap, 15, 16}},
		{"in middle", 7, []int{1, 2, Gap, 5, 6, 7, 8, 9, Gap, 15, 16}},
		{"on end page 13", 13, []int{1, 2, Gap, 11, 12, 13, 14, 15, 16}},
		{"on end", 16, []int{1, 2, Gap, 12, 13, 14, 15, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowPages(tt.current, total, 2, 2)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_WindowPages_NoMargin(t *testing.T) {
	const total = 16

	tests := []struct {
		name    string
		current int
		want    []int
	}{
		{"on start", 3, []int{1, 2, 3, 4, 5, Gap}},
		{"in middle", 5, []int{Gap, 3, 4, 5, 6, 7, Gap}},
		{"on end", 16, []int{Gap, 12, 13, 14, 15, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowPages(tt.current, total, 2, 0)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_WindowPages_ZeroWindowZeroMargin(t *testing.T) {
	const total = 16

	tests := []struct {
		name    string
		current int
		want    []int
	}{
		{"on start page 1", 1, []int{1, Gap}},
		{"in middle page 2", 2, []int{Gap, 2, Gap}},
		{"in middle page 3", 3, []int{Gap, 3, Gap}},
		{"in middle page 10", 10, []int{Gap, 10, Gap}},
		{"in middle page 14", 14, []int{Gap, 14, Gap}},
		{"in middle page 15", 15, []int{Gap, 15, Gap}},
		{"on end page 16", 16, []int{Gap, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowPages(tt.current, total, 0, 0)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_WindowPages_NoEllipsis(t *testing.T) {
	// 100 items, 25 per page: the near range always covers everything, so no
	// marker should ever appear.
	const total = 4

	for current := 1; current <= total; current++ {
		got, err := WindowPages(current, total, 2, 0)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3, 4}, got, "current=%d", current)
	}
}

func Test_WindowPages_SpecialCases(t *testing.T) {
	tests := []struct {
		name           string
		current        int
		total          int
		window, margin int
		want           []int
	}{
		{
			name:    "middle with no window and margin 1",
			current: 5, total: 16, window: 0, margin: 1,
			want: []int{1, Gap, 5, Gap, 16},
		},
		{
			// 21 items, 2 per page, 1 orphan -> 10 pages.
			name:    "start with no window and margin 4",
			current: 1, total: 10, window: 0, margin: 4,
			want: []int{1, 2, 3, 4, Gap, 7, 8, 9, 10},
		},
		{
			// 17 items, 2 per page, defaults.
			name:    "window wider than the page set",
			current: 1, total: 9, window: DefaultWindow, margin: DefaultMargin,
			want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name:    "single page",
			current: 1, total: 1, window: DefaultWindow, margin: DefaultMargin,
			want: []int{1},
		},
		{
			name:    "single page with zero window and margin",
			current: 1, total: 1, window: 0, margin: 0,
			want: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowPages(tt.current, tt.total, tt.window, tt.margin)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_WindowPages_Validation(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		window, margin int
	}{
		{"negative window", 1, 10, -1, 2},
		{"negative margin", 1, 10, 2, -1},
		{"zero total", 1, 0, 2, 2},
		{"current past the end", 11, 10, 2, 2},
		{"current below 1", 0, 10, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowPages(tt.current, tt.total, tt.window, tt.margin)
			require.ErrorIs(t, err, ErrConfiguration)
			require.Nil(t, got)
		})
	}
}

// The display sequence must contain the current page exactly once and be
// strictly increasing apart from Gap markers, for every page of every small
// page set.
func Test_WindowPages_Properties(t *testing.T) {
	combos := []struct{ window, margin int }{
		{0, 0}, {0, 1}, {1, 0}, {2, 2}, {4, 2}, {1, 3},
	}

	for total := 1; total <= 24; total++ {
		for current := 1; current <= total; current++ {
			for _, c := range combos {
				got, err := WindowPages(current, total, c.window, c.margin)
				require.NoError(t, err)

				seen := 0
				previous := 0
				for i, n := range got {
					if n == Gap {
						if i > 0 {
							require.NotEqual(t, Gap, got[i-1],
								"two adjacent markers at total=%d current=%d %+v", total, current, got)
						}
						continue
					}
					require.Greater(t, n, previous,
						"non-increasing pages at total=%d current=%d %+v", total, current, got)
					previous = n
					if n == current {
						seen++
					}
				}
				require.Equal(t, 1, seen,
					"current page seen %d times at total=%d current=%d %+v", seen, total, current, got)
			}
		}
	}
}

func Test_WindowPages_Idempotent(t *testing.T) {
	first, err := WindowPages(7, 16, 2, 2)
	require.NoError(t, err)
	second, err := WindowPages(7, 16, 2, 2)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func Test_WindowPagesFunc(t *testing.T) {
	// Simulates an unbounded source that turns out to have 10 valid pages.
	const lastPage = 10
	exists := func(n int) bool { return n >= 1 && n <= lastPage }

	tests := []struct {
		name           string
		current        int
		window, margin int
		want           []int
	}{
		{"first page expands forward", 1, 2, 0, []int{1, 2, 3, 4, 5, Gap}},
		{"middle keeps head margin", 5, 2, 2, []int{1, 2, 3, 4, 5, 6, 7, Gap}},
		{"middle with a hole before the near range", 7, 1, 2, []int{1, 2, Gap, 6, 7, 8, Gap}},
		{"near range trimmed at the end", 9, 2, 2, []int{1, 2, Gap, 7, 8, 9, 10}},
		{"last page has no trailing marker", 10, 1, 1, []int{1, Gap, 9, 10}},
		{"zero window zero margin in middle", 4, 0, 0, []int{Gap, 4, Gap}},
		{"zero window zero margin on start", 1, 0, 0, []int{1, Gap}},
		{"zero window zero margin on end", 10, 0, 0, []int{Gap, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowPagesFunc(tt.current, exists, tt.window, tt.margin)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_WindowPagesFunc_Validation(t *testing.T) {
	exists := func(int) bool { return true }

	_, err := WindowPagesFunc(1, exists, -1, 0)
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = WindowPagesFunc(1, exists, 0, -1)
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = WindowPagesFunc(0, exists, 2, 2)
	require.ErrorIs(t, err, ErrConfiguration)
}

func Test_RecordRange(t *testing.T) {
	tests := []struct {
		name                            string
		number, perPage, orphans, count int
		want                            Records
	}{
		{"first page", 1, 2, 0, 15, Records{First: 1, Last: 2}},
		{"last page", 8, 2, 0, 15, Records{First: 15, Last: 15}},
		{"middle page", 4, 2, 0, 15, Records{First: 7, Last: 8}},
		{"orphans absorbed", 1, 10, 3, 12, Records{First: 1, Last: 12}},
		{"single short page", 1, 10, 0, 4, Records{First: 1, Last: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RecordRange(tt.number, tt.perPage, tt.orphans, tt.count))
		})
	}
}
