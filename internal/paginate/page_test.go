package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{12, 10, 2},
		{25, 5, 5},
		{3, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.n, tt.size), "n=%d size=%d", tt.n, tt.size)
	}
}

func TestPaginate_TwelveItems(t *testing.T) {
	items := seq(12)

	first := Paginate(items, 1, 10)
	assert.Equal(t, 2, first.TotalPages)
	assert.Len(t, first.Items, 10)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	second := Paginate(items, 2, 10)
	assert.Equal(t, []int{10, 11}, second.Items)
	assert.True(t, second.HasPrev())
	assert.False(t, second.HasNext())
}

func TestPaginate_EmptySequenceHasOneEmptyPage(t *testing.T) {
	p := Paginate([]int{}, 1, 10)
	assert.Equal(t, 1, p.Index)
	assert.Equal(t, 1, p.TotalPages)
	require.NotNil(t, p.Items)
	assert.Empty(t, p.Items)

	p = Paginate[int](nil, 4, 10)
	assert.Equal(t, 1, p.Index)
}

func TestPaginate_ClampsIndex(t *testing.T) {
	items := seq(25)

	low := Paginate(items, -3, 10)
	assert.Equal(t, 1, low.Index)
	assert.Equal(t, 0, low.Items[0])

	high := Paginate(items, 99, 10)
	assert.Equal(t, 3, high.Index)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, high.Items)
}

func TestPaginate_PagesCoverSequence(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 37, 100} {
		for _, size := range []int{1, 3, 10, 50} {
			items := seq(n)
			total := TotalPages(n, size)

			var seen []int
			for i := 1; i <= total; i++ {
				seen = append(seen, Paginate(items, i, size).Items...)
			}
			assert.Len(t, seen, n, "n=%d size=%d", n, size)
			if n > 0 {
				assert.Equal(t, items, seen)
			}
		}
	}
}

func TestPaginate_DoesNotAliasInput(t *testing.T) {
	items := seq(5)
	p := Paginate(items, 1, 10)
	p.Items[0] = 99
	assert.Equal(t, 0, items[0])
}

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 10, Max: 100}
	assert.Equal(t, 10, ClampPageSize(0, cfg))
	assert.Equal(t, 10, ClampPageSize(-4, cfg))
	assert.Equal(t, 25, ClampPageSize(25, cfg))
	assert.Equal(t, 100, ClampPageSize(500, cfg))
	assert.Equal(t, 1, ClampPageSize(0, PageSizeConfig{}))
}
