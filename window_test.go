package pagenav

import (
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(values ...int) []Entry {
	return lo.Map(values, func(v int, _ int) Entry { return Entry(v) })
}

const ell = int(Ellipsis)

func Test_PageCount(t *testing.T) {
	tests := []struct {
		name           string
		collectionSize int
		pageSize       int
		want           int
	}{
		{"empty collection", 0, 10, 0},
		{"exact fit", 100, 10, 10},
		{"partial last page", 101, 10, 11},
		{"single item", 1, 10, 1},
		{"zero page size", 100, 0, 0},
		{"negative page size", 100, -1, 0},
		{"unset collection size", -1, 10, 0},
		{"max int collection", math.MaxInt, 10, math.MaxInt/10 + 1},
		{"max int collection, single item pages", math.MaxInt, 1, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.collectionSize, tt.pageSize))
		})
	}
}

func Test_PageCount_MatchesCeil(t *testing.T) {
	for size := 0; size <= 60; size++ {
		for pageSize := 1; pageSize <= 12; pageSize++ {
			want := size / pageSize
			if size%pageSize != 0 {
				want++
			}
			require.Equal(t, want, PageCount(size, pageSize), "size=%d pageSize=%d", size, pageSize)
		}
	}
}

func Test_ComputeWindow(t *testing.T) {
	tests := []struct {
		name        string
		req         WindowRequest
		wantPage    int
		wantChanged bool
		wantEntries []Entry
	}{
		{
			name:        "unbounded window shows every page",
			req:         WindowRequest{Page: 3, CollectionSize: 50, PageSize: 10},
			wantPage:    3,
			wantEntries: entries(1, 2, 3, 4, 5),
		},
		{
			name:        "max size above page count ignores ellipses",
			req:         WindowRequest{Page: 2, CollectionSize: 50, PageSize: 10, MaxSize: 10, Ellipses: true},
			wantPage:    2,
			wantEntries: entries(1, 2, 3, 4, 5),
		},
		{
			name:        "max size equal to page count",
			req:         WindowRequest{Page: 5, CollectionSize: 50, PageSize: 10, MaxSize: 5, Rotate: true, Ellipses: true},
			wantPage:    5,
			wantEntries: entries(1, 2, 3, 4, 5),
		},
		{
			name:        "rotation keeps page in the middle",
			req:         WindowRequest{Page: 10, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true},
			wantPage:    10,
			wantEntries: entries(8, 9, 10, 11, 12),
		},
		{
			name:        "rotation pinned left on first page",
			req:         WindowRequest{Page: 1, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true},
			wantPage:    1,
			wantEntries: entries(1, 2, 3, 4, 5),
		},
		{
			name:        "rotation pinned left near the beginning",
			req:         WindowRequest{Page: 2, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true},
			wantPage:    2,
			wantEntries: entries(1, 2, 3, 4, 5),
		},
		{
			name:        "rotation pinned right on last page",
			req:         WindowRequest{Page: 20, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true},
			wantPage:    20,
			wantEntries: entries(16, 17, 18, 19, 20),
		},
		{
			name:        "rotation pinned right near the end",
			req:         WindowRequest{Page: 19, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true},
			wantPage:    19,
			wantEntries: entries(16, 17, 18, 19, 20),
		},
		{
			name:        "rotation with even max size favours the left side",
			req:         WindowRequest{Page: 10, CollectionSize: 200, PageSize: 10, MaxSize: 4, Rotate: true},
			wantPage:    10,
			wantEntries: entries(8, 9, 10, 11),
		},
		{
			name:        "rotation with max size of one",
			req:         WindowRequest{Page: 7, CollectionSize: 200, PageSize: 10, MaxSize: 1, Rotate: true},
			wantPage:    7,
			wantEntries: entries(7),
		},
		{
			name:        "block slicing shows the block of the page",
			req:         WindowRequest{Page: 7, CollectionSize: 200, PageSize: 10, MaxSize: 5},
			wantPage:    7,
			wantEntries: entries(6, 7, 8, 9, 10),
		},
		{
			name:        "block slicing on block boundary",
			req:         WindowRequest{Page: 10, CollectionSize: 200, PageSize: 10, MaxSize: 5},
			wantPage:    10,
			wantEntries: entries(6, 7, 8, 9, 10),
		},
		{
			name:        "block slicing cuts the last block",
			req:         WindowRequest{Page: 22, CollectionSize: 220, PageSize: 10, MaxSize: 5},
			wantPage:    22,
			wantEntries: entries(21, 22),
		},
		{
			name:        "rotation with boundaries and ellipses",
			req:         WindowRequest{Page: 10, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true, Ellipses: true},
			wantPage:    10,
			wantEntries: entries(1, ell, 8, 9, 10, 11, 12, ell, 20),
		},
		{
			name:        "rotation at the start only adds trailing boundary",
			req:         WindowRequest{Page: 3, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true, Ellipses: true},
			wantPage:    3,
			wantEntries: entries(1, 2, 3, 4, 5, ell, 20),
		},
		{
			name:        "first page adjacent to window gets no ellipsis",
			req:         WindowRequest{Page: 4, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true, Ellipses: true},
			wantPage:    4,
			wantEntries: entries(1, 2, 3, 4, 5, 6, ell, 20),
		},
		{
			name:        "last page adjacent to window gets no ellipsis",
			req:         WindowRequest{Page: 17, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true, Ellipses: true},
			wantPage:    17,
			wantEntries: entries(1, ell, 15, 16, 17, 18, 19, 20),
		},
		{
			name:        "block slicing with boundaries and ellipses",
			req:         WindowRequest{Page: 7, CollectionSize: 200, PageSize: 10, MaxSize: 5, Ellipses: true},
			wantPage:    7,
			wantEntries: entries(1, ell, 6, 7, 8, 9, 10, ell, 20),
		},
		{
			name:        "page beyond page count is clamped",
			req:         WindowRequest{Page: 999, CollectionSize: 100, PageSize: 10},
			wantPage:    10,
			wantChanged: true,
			wantEntries: entries(1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
		},
		{
			name:        "page below one is clamped",
			req:         WindowRequest{Page: -3, CollectionSize: 30, PageSize: 10},
			wantPage:    1,
			wantChanged: true,
			wantEntries: entries(1, 2, 3),
		},
		{
			name:        "empty collection",
			req:         WindowRequest{Page: 5, CollectionSize: 0, PageSize: 10, MaxSize: 5},
			wantPage:    0,
			wantChanged: true,
			wantEntries: nil,
		},
		{
			name:        "invalid page size",
			req:         WindowRequest{Page: 1, CollectionSize: 100, PageSize: 0},
			wantPage:    0,
			wantChanged: true,
			wantEntries: nil,
		},
		{
			name:        "negative max size is unbounded",
			req:         WindowRequest{Page: 1, CollectionSize: 30, PageSize: 10, MaxSize: -2, Ellipses: true},
			wantPage:    1,
			wantEntries: entries(1, 2, 3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWindow(tt.req)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantChanged, got.Changed)
			assert.Equal(t, tt.wantEntries, got.Entries)
		})
	}
}

func Test_ComputeWindow_HugeCollection(t *testing.T) {
	last := math.MaxInt/10 + 1

	w := ComputeWindow(WindowRequest{Page: 1, CollectionSize: math.MaxInt, PageSize: 10, MaxSize: 5, Ellipses: true})
	require.Equal(t, last, w.PageCount)
	require.Equal(t, 1, w.Page)
	require.False(t, w.Changed)
	require.Equal(t, append(entries(1, 2, 3, 4, 5), Ellipsis, Entry(last)), w.Entries)

	// The last block is cut at pageCount without overflowing.
	w = ComputeWindow(WindowRequest{Page: math.MaxInt, CollectionSize: math.MaxInt, PageSize: 1, MaxSize: 5})
	require.Equal(t, math.MaxInt, w.Page)
	require.False(t, w.Changed)
	require.Equal(t, Entry(math.MaxInt), w.Entries[len(w.Entries)-1])
	require.Positive(t, int(w.Entries[0]))
	require.LessOrEqual(t, len(w.Entries), 5)

	w = ComputeWindow(WindowRequest{Page: math.MaxInt, CollectionSize: math.MaxInt, PageSize: 1, MaxSize: 5, Rotate: true})
	require.Equal(t, entries(math.MaxInt-4, math.MaxInt-3, math.MaxInt-2, math.MaxInt-1, math.MaxInt), w.Entries)
}

func Test_ComputeWindow_Idempotent(t *testing.T) {
	req := WindowRequest{Page: 10, CollectionSize: 200, PageSize: 10, MaxSize: 5, Rotate: true, Ellipses: true}

	first := ComputeWindow(req)
	second := ComputeWindow(req)
	require.Equal(t, first, second)

	// Results do not share storage.
	first.Entries[0] = 42
	require.Equal(t, Entry(1), ComputeWindow(req).Entries[0])
}

func Test_ComputeWindow_Invariants(t *testing.T) {
	for _, rotate := range []bool{false, true} {
		for _, ellipses := range []bool{false, true} {
			for maxSize := 0; maxSize <= 8; maxSize++ {
				for page := 1; page <= 23; page++ {
					req := WindowRequest{
						Page:           page,
						CollectionSize: 23,
						PageSize:       1,
						MaxSize:        maxSize,
						Rotate:         rotate,
						Ellipses:       ellipses,
					}
					w := ComputeWindow(req)

					require.Contains(t, w.Pages(), page, "%+v", req)
					require.True(t, lo.IsSorted(w.Pages()), "%+v", req)
					require.LessOrEqual(t, lo.Count(w.Entries, Ellipsis), 2, "%+v", req)

					if !ellipses || maxSize == 0 {
						require.NotContains(t, w.Entries, Ellipsis, "%+v", req)
					}
					if maxSize > 0 && !ellipses {
						require.LessOrEqual(t, len(w.Entries), maxSize, "%+v", req)
					}
					if len(w.Entries) > 0 {
						require.False(t, w.Entries[0].IsEllipsis(), "%+v", req)
						require.False(t, w.Entries[len(w.Entries)-1].IsEllipsis(), "%+v", req)
					}
				}
			}
		}
	}
}

func Test_Window_Navigation(t *testing.T) {
	tests := []struct {
		name        string
		req         WindowRequest
		hasPrevious bool
		hasNext     bool
	}{
		{"first page", WindowRequest{Page: 1, CollectionSize: 30, PageSize: 10}, false, true},
		{"middle page", WindowRequest{Page: 2, CollectionSize: 30, PageSize: 10}, true, true},
		{"last page", WindowRequest{Page: 3, CollectionSize: 30, PageSize: 10}, true, false},
		{"no pages", WindowRequest{Page: 1, CollectionSize: 0, PageSize: 10}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ComputeWindow(tt.req)
			assert.Equal(t, tt.hasPrevious, w.HasPrevious())
			assert.Equal(t, tt.hasNext, w.HasNext())
		})
	}
}

func Test_Entry(t *testing.T) {
	page, ok := Entry(4).Page()
	assert.True(t, ok)
	assert.Equal(t, 4, page)
	assert.Equal(t, "4", Entry(4).String())

	_, ok = Ellipsis.Page()
	assert.False(t, ok)
	assert.True(t, Ellipsis.IsEllipsis())
	assert.Equal(t, "...", Ellipsis.String())
}
