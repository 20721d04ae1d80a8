package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	p := Ptr("site-1")
	require.NotNil(t, p)
	assert.Equal(t, "site-1", *p)
}

func TestGroupBy(t *testing.T) {
	type item struct {
		Site string
		N    int
	}
	items := []item{{"A", 1}, {"B", 2}, {"A", 3}}

	groups := GroupBy(items, func(i item) string { return i.Site })

	require.Len(t, groups, 2)
	assert.Len(t, groups["A"], 2)
	assert.Len(t, groups["B"], 1)
}

func TestFilter(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	even := Filter(nums, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	assert.Empty(t, Filter(nums, func(n int) bool { return n > 10 }))
}

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "RFC3339", input: "2025-11-05T09:30:00+05:30"},
		{name: "RFC3339 with nanos", input: "2025-11-05T09:30:00.123Z"},
		{name: "Space separated", input: "2025-11-05 09:30:00"},
		{name: "Date only", input: "2025-11-05"},
		{name: "Empty", input: "", wantErr: true},
		{name: "Garbage", input: "yesterday-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISOTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2025, got.Year())
		})
	}
}

func TestToday(t *testing.T) {
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, Today())
}
