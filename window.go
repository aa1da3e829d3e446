package pagenav

import (
	"strconv"

	"github.com/samber/lo"
)

// Entry is a single element of a page window: either a page number (>= 1) or
// the Ellipsis sentinel.
type Entry int

// Ellipsis marks elided page numbers between the window and a boundary page.
// It is never a real page number and must be rendered non-interactive.
const Ellipsis Entry = -1

// IsEllipsis reports whether the entry is a truncation marker.
func (e Entry) IsEllipsis() bool {
	return e == Ellipsis
}

// Page returns the page number held by the entry. ok is false for Ellipsis.
func (e Entry) Page() (page int, ok bool) {
	if e.IsEllipsis() {
		return 0, false
	}

	return int(e), true
}

// String - implements fmt.Stringer.
func (e Entry) String() string {
	if e.IsEllipsis() {
		return "..."
	}

	return strconv.Itoa(int(e))
}

// WindowRequest holds the display parameters of a single window computation.
type WindowRequest struct {
	// Page - requested page, 1-based.
	Page int
	// CollectionSize - number of items in the collection. Negative means unset.
	CollectionSize int
	// PageSize - number of items per page.
	PageSize int
	// MaxSize - maximum number of page links in the window. 0 means unbounded.
	MaxSize int
	// Rotate keeps the current page in the middle of the window instead of
	// slicing pages into fixed blocks.
	Rotate bool
	// Ellipses adds the first/last page numbers and ellipses around a
	// truncated window.
	Ellipses bool
}

// Window is the result of ComputeWindow. It is never modified after being
// returned.
type Window struct {
	// PageCount - total number of pages.
	PageCount int
	// Page - selected page clamped into [1, PageCount], 0 when PageCount = 0.
	Page int
	// Changed is true if Page differs from the requested page.
	Changed bool
	// Entries - page numbers and ellipses to display, in order.
	Entries []Entry
}

// HasPrevious returns true if there is a page before the selected one.
func (w Window) HasPrevious() bool {
	return w.Page > 1
}

// HasNext returns true if there is a page after the selected one.
func (w Window) HasNext() bool {
	return w.Page < w.PageCount
}

// Pages returns page numbers of the window without ellipses.
func (w Window) Pages() []int {
	return lo.FilterMap(w.Entries, func(e Entry, _ int) (int, bool) {
		return e.Page()
	})
}

// PageCount returns ceil(collectionSize / pageSize), or 0 when either value
// is not usable.
func PageCount(collectionSize, pageSize int) int {
	if pageSize <= 0 || collectionSize <= 0 {
		return 0
	}

	return collectionSize/pageSize + lo.Ternary(collectionSize%pageSize != 0, 1, 0)
}

// ComputeWindow computes the page window for the request.
//
// When MaxSize > 0 and there are more pages than MaxSize, the window is
// either rotated around the selected page (Rotate = true):
//
//	page = 6: [5,*6*,7] for MaxSize = 3, [4,5,*6*,7] for MaxSize = 4
//
// or sliced into fixed blocks of MaxSize pages (Rotate = false):
//
//	page = 7, MaxSize = 5: [6,*7*,8,9,10]
//
// With Ellipses the first and last pages are added around a truncated window:
//
//	[1, ..., 8, 9, *10*, 11, 12, ..., 20]
func ComputeWindow(req WindowRequest) Window {
	pageCount := PageCount(req.CollectionSize, req.PageSize)
	page := clampPage(req.Page, pageCount)

	ret := Window{
		PageCount: pageCount,
		Page:      page,
		Changed:   page != req.Page,
	}
	if pageCount == 0 {
		return ret
	}

	maxSize := max(req.MaxSize, 0)
	if maxSize == 0 || pageCount <= maxSize {
		ret.Entries = pageRange(1, pageCount)
		return ret
	}

	var start, end int
	if req.Rotate {
		start, end = rotateWindow(page, pageCount, maxSize)
	} else {
		start, end = blockWindow(page, pageCount, maxSize)
	}

	if !req.Ellipses {
		ret.Entries = pageRange(start+1, end)
		return ret
	}

	// Worst case: first page, ellipsis, window, ellipsis, last page.
	entries := make([]Entry, 0, end-start+4)
	if start > 0 {
		entries = append(entries, 1)
		if start > 1 {
			entries = append(entries, Ellipsis)
		}
	}
	entries = append(entries, pageRange(start+1, end)...)
	if end < pageCount {
		if end < pageCount-1 {
			entries = append(entries, Ellipsis)
		}
		entries = append(entries, Entry(pageCount))
	}
	ret.Entries = entries

	return ret
}

// clampPage puts page into [1, pageCount]. With no pages the result is 0.
func clampPage(page, pageCount int) int {
	if pageCount == 0 {
		return 0
	}

	return lo.Clamp(page, 1, pageCount)
}

// rotateWindow returns the zero-based [start, end) bounds of a window that
// keeps page in the middle. For even maxSize the left side gets one extra
// slot.
func rotateWindow(page, pageCount, maxSize int) (int, int) {
	leftOffset := maxSize / 2
	rightOffset := lo.Ternary(maxSize%2 == 0, leftOffset-1, leftOffset)

	switch {
	case page <= leftOffset:
		// Very beginning, no room to rotate left.
		return 0, maxSize
	case pageCount-page < leftOffset:
		// Very end, no room to rotate right.
		return pageCount - maxSize, pageCount
	default:
		return page - leftOffset - 1, page + rightOffset
	}
}

// blockWindow returns the zero-based [start, end) bounds of the maxSize block
// containing page. The last block is cut at pageCount.
func blockWindow(page, pageCount, maxSize int) (int, int) {
	start := (page - 1) / maxSize * maxSize

	return start, start + min(maxSize, pageCount-start)
}

// pageRange returns entries from..to inclusive.
func pageRange(from, to int) []Entry {
	if to < from {
		return nil
	}

	return lo.RangeFrom(Entry(from), to-from+1)
}
