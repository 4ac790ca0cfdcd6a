package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 5},
		{5, -4, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.n, tt.size), "TotalPages(%d, %d)", tt.n, tt.size)
	}
}

func TestPaginate(t *testing.T) {
	rows := NewTree(leaves(25)).Flatten(Expansion{})

	page := Paginate(rows, 3, 10)
	assert.Equal(t, []string{"item-20", "item-21", "item-22", "item-23", "item-24"}, rowIDs(page))
	assert.Equal(t, 20, page[0].Index, "rows keep their absolute index")

	assert.Nil(t, Paginate(rows, 0, 10))
	assert.Nil(t, Paginate(rows, 4, 10))
	assert.Nil(t, Paginate(nil, 1, 10))
	assert.Len(t, Paginate(rows, 2, -1), 1)
	assert.Equal(t, 10, PageStart(2, 10))
	assert.Equal(t, 0, PageStart(0, 10))
}

func TestPaginate_PagesConcatenateToRows(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "rows")
		size := rapid.IntRange(1, 50).Draw(t, "size")
		rows := NewTree(leaves(n)).Flatten(Expansion{})

		var joined []FlatRow
		for page := 1; page <= TotalPages(len(rows), size); page++ {
			joined = append(joined, Paginate(rows, page, size)...)
		}
		if len(joined) != len(rows) {
			t.Fatalf("pages hold %d rows, want %d", len(joined), len(rows))
		}
		for i := range rows {
			if joined[i] != rows[i] {
				t.Fatalf("row %d = %v, want %v", i, joined[i], rows[i])
			}
		}
	})
}
