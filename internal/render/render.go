// Package render draws a navigation bar in the terminal.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/Alp4ka/pagenav"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#0B5CAD", Dark: "#6CB6FF"}
	muted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6E6E6E"}
)

// Label returns the text of a link.
func Label(l pagenav.Link) string {
	switch l.Kind {
	case pagenav.LinkFirst:
		return "«"
	case pagenav.LinkPrevious:
		return "‹"
	case pagenav.LinkNext:
		return "›"
	case pagenav.LinkLast:
		return "»"
	case pagenav.LinkEllipsis:
		return "…"
	default:
		return strconv.Itoa(l.Page)
	}
}

// Bar renders links with lipgloss styles.
type Bar struct {
	link     lipgloss.Style
	active   lipgloss.Style
	disabled lipgloss.Style
}

// NewBar returns a Bar for the given size. A nil renderer means
// lipgloss.DefaultRenderer.
func NewBar(r *lipgloss.Renderer, size pagenav.Size) *Bar {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	pad := 1
	switch size {
	case pagenav.SizeSmall:
		pad = 0
	case pagenav.SizeLarge:
		pad = 2
	}

	base := r.NewStyle().Padding(0, pad)

	return &Bar{
		link:     base.Foreground(accent),
		active:   base.Bold(true).Reverse(true).Foreground(accent),
		disabled: base.Faint(true).Foreground(muted),
	}
}

func (b *Bar) style(l pagenav.Link) lipgloss.Style {
	switch {
	case l.Active:
		return b.active
	case l.Disabled:
		return b.disabled
	default:
		return b.link
	}
}

// Render returns the navigation bar on a single line.
func (b *Bar) Render(links []pagenav.Link) string {
	cells := lo.Map(links, func(l pagenav.Link, _ int) string {
		return b.style(l).Render(Label(l))
	})

	return strings.Join(cells, " ")
}
