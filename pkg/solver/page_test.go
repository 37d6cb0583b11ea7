package solver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbered(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("w%02d", i)
	}
	return items
}

func TestPaginate(t *testing.T) {
	items := numbered(25)

	first := Paginate(items, 0, 10)
	assert.Equal(t, items[0:10], first.Items)
	assert.False(t, first.HasPrev, "previous must be disabled on page 0")
	assert.True(t, first.HasNext)
	assert.Equal(t, 3, first.Pages)
	assert.Equal(t, 25, first.Total)

	middle := Paginate(items, 1, 10)
	assert.Equal(t, items[10:20], middle.Items)
	assert.True(t, middle.HasPrev)
	assert.True(t, middle.HasNext)

	last := Paginate(items, 2, 10)
	assert.Equal(t, items[20:25], last.Items)
	assert.Equal(t, 20, last.Start)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext, "next must be disabled on the last page")
}

func TestPaginateClamps(t *testing.T) {
	items := numbered(25)

	assert.Equal(t, 2, Paginate(items, 99, 10).Index)
	assert.Equal(t, 0, Paginate(items, -4, 10).Index)
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate(nil, 3, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Index)
	assert.Equal(t, 1, page.Pages)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestPaginateDefaultSize(t *testing.T) {
	page := Paginate(numbered(12), 0, 0)

	assert.Equal(t, DefaultPageSize, page.Size)
	assert.Len(t, page.Items, DefaultPageSize)
	assert.Equal(t, 2, page.Pages)
}

func TestPageCount(t *testing.T) {
	testCases := []struct {
		total, size, expected int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 0, 3},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, PageCount(tc.total, tc.size), "total=%d size=%d", tc.total, tc.size)
	}
}
