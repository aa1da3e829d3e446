package pagenav

import "github.com/samber/lo"

// LinkKind identifies the role of a link in the navigation bar.
type LinkKind string

const (
	LinkFirst    LinkKind = "first"
	LinkPrevious LinkKind = "previous"
	LinkNumber   LinkKind = "number"
	LinkEllipsis LinkKind = "ellipsis"
	LinkNext     LinkKind = "next"
	LinkLast     LinkKind = "last"
)

// Link is a single item of the navigation bar. Page is the page the link
// selects; it is 0 for ellipses.
type Link struct {
	Kind     LinkKind `json:"kind"`
	Page     int      `json:"page,omitempty"`
	Active   bool     `json:"active,omitempty"`
	Disabled bool     `json:"disabled,omitempty"`
}

// Links returns the navigation bar in display order:
//
//	[First] [Previous] numbers and ellipses [Next] [Last]
//
// First/Last appear only with Config.BoundaryLinks, Previous/Next only with
// Config.DirectionLinks.
func (p *Paginator) Links() []Link {
	ret := make([]Link, 0, len(p.window.Entries)+4)

	if p.config.BoundaryLinks {
		ret = append(ret, Link{Kind: LinkFirst, Page: 1, Disabled: p.PreviousDisabled()})
	}
	if p.config.DirectionLinks {
		ret = append(ret, Link{Kind: LinkPrevious, Page: max(p.Page()-1, 1), Disabled: p.PreviousDisabled()})
	}

	ret = append(ret, lo.Map(p.window.Entries, func(e Entry, _ int) Link {
		page, ok := e.Page()
		if !ok {
			return Link{Kind: LinkEllipsis, Disabled: true}
		}

		return Link{
			Kind:     LinkNumber,
			Page:     page,
			Active:   page == p.Page(),
			Disabled: p.config.Disabled,
		}
	})...)

	if p.config.DirectionLinks {
		ret = append(ret, Link{Kind: LinkNext, Page: lo.Ternary(p.HasNext(), p.Page()+1, max(p.PageCount(), 1)), Disabled: p.NextDisabled()})
	}
	if p.config.BoundaryLinks {
		ret = append(ret, Link{Kind: LinkLast, Page: max(p.PageCount(), 1), Disabled: p.NextDisabled()})
	}

	return ret
}
