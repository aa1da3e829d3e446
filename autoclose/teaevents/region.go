package teaevents

import (
	"slices"
	"strings"
	"sync"

	"github.com/Alp4ka/pagenav/autoclose"
)

// Region is a rectangular area of the terminal screen. Regions form a tree
// through Parent and implement autoclose.Element.
type Region struct {
	Name          string
	X, Y          int
	Width, Height int
	Parent        *Region
	// Classes are matched by ".class" selectors.
	Classes []string
}

// Hit reports whether the cell at (x, y) lies inside the region.
func (r *Region) Hit(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Contains - implements autoclose.Element.
func (r *Region) Contains(other autoclose.Element) bool {
	o, ok := other.(*Region)
	if !ok {
		return false
	}

	for ; o != nil; o = o.Parent {
		if o == r {
			return true
		}
	}

	return false
}

// Closest - implements autoclose.Element. Only ".class" selectors are
// supported.
func (r *Region) Closest(selector string) bool {
	class, ok := strings.CutPrefix(selector, ".")
	if !ok || class == "" {
		return false
	}

	for c := r; c != nil; c = c.Parent {
		if slices.Contains(c.Classes, class) {
			return true
		}
	}

	return false
}

var _ autoclose.Element = (*Region)(nil)

// Layout is the set of regions currently drawn on screen. Regions added
// later are drawn on top. Layout is safe for concurrent use.
type Layout struct {
	mu      sync.RWMutex
	regions []*Region
}

// Add places regions on top of the layout.
func (l *Layout) Add(regions ...*Region) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.regions = append(l.regions, regions...)
}

// Remove takes a region off the screen. Descendants are not removed.
func (l *Layout) Remove(region *Region) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.regions = slices.DeleteFunc(l.regions, func(r *Region) bool { return r == region })
}

// HitTest returns the topmost region at (x, y), or nil.
func (l *Layout) HitTest(x, y int) autoclose.Element {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := len(l.regions) - 1; i >= 0; i-- {
		if l.regions[i].Hit(x, y) {
			return l.regions[i]
		}
	}

	return nil
}
