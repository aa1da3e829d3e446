package pagenav

import (
	"log/slog"
)

// Paginator keeps the selected page of a paginated collection in sync with
// its display settings and collection size. Every change recomputes the
// Window from scratch.
//
// A Paginator is not safe for concurrent use.
type Paginator struct {
	config Config

	collectionSize    int
	collectionSizeSet bool

	// page is the last selection. It survives while there are no pages, so
	// a page selected before the collection size is known is kept.
	page   int
	window Window

	onPageChange func(page int)
	logger       *slog.Logger
}

// NewPaginator returns a Paginator on page 1 with an unset collection size.
func NewPaginator(config Config) *Paginator {
	p := &Paginator{
		config: config,
		page:   1,
		logger: slog.New(slog.DiscardHandler),
	}
	p.update(p.page)

	return p
}

// WithOnPageChange sets the callback invoked with the new page whenever the
// selected page changes. It is not invoked while the collection size is unset
// or the collection is empty.
func (p *Paginator) WithOnPageChange(fn func(page int)) *Paginator {
	if p == nil {
		p = NewPaginator(DefaultConfig())
	}

	p.onPageChange = fn

	return p
}

// WithLogger sets the logger used for debug output.
func (p *Paginator) WithLogger(logger *slog.Logger) *Paginator {
	if p == nil {
		p = NewPaginator(DefaultConfig())
	}

	if logger != nil {
		p.logger = logger
	}

	return p
}

// SetCollectionSize sets the number of items and recomputes the window. A
// negative size marks the collection size as unset.
func (p *Paginator) SetCollectionSize(collectionSize int) {
	p.collectionSize = max(collectionSize, 0)
	p.collectionSizeSet = collectionSize >= 0
	p.update(p.page)
}

// SetConfig replaces display settings and recomputes the window.
func (p *Paginator) SetConfig(config Config) {
	p.config = config
	p.update(p.page)
}

// SelectPage selects the page, clamped into [1, PageCount].
func (p *Paginator) SelectPage(page int) {
	p.update(page)
}

// Follow selects the page a link points to. Disabled links are ignored.
func (p *Paginator) Follow(link Link) {
	if link.Disabled || link.Kind == LinkEllipsis {
		return
	}

	p.SelectPage(link.Page)
}

// Config returns current display settings.
func (p *Paginator) Config() Config {
	return p.config
}

// CollectionSize returns the collection size and whether it is set.
func (p *Paginator) CollectionSize() (int, bool) {
	return p.collectionSize, p.collectionSizeSet
}

// Window returns the last computed window.
func (p *Paginator) Window() Window {
	return p.window
}

// Page returns the selected page, 0 when there are no pages.
func (p *Paginator) Page() int {
	return p.window.Page
}

// PageCount returns the number of pages, 0 while the collection is empty or its size unset.
func (p *Paginator) PageCount() int {
	return p.window.PageCount
}

// HasPrevious reports whether a page precedes the selected one.
func (p *Paginator) HasPrevious() bool {
	return p.window.HasPrevious()
}

// HasNext reports whether a page follows the selected one.
func (p *Paginator) HasNext() bool {
	return p.window.HasNext()
}

// PreviousDisabled reports whether First/Previous links are disabled: on the
// first page, with no pages, or when Config.Disabled is set.
func (p *Paginator) PreviousDisabled() bool {
	return !p.HasPrevious() || p.config.Disabled
}

// NextDisabled reports whether Next/Last links are disabled: on the last page,
// with no pages, or when Config.Disabled is set.
func (p *Paginator) NextDisabled() bool {
	return !p.HasNext() || p.config.Disabled
}

func (p *Paginator) update(page int) {
	collectionSize := p.collectionSize
	if !p.collectionSizeSet {
		collectionSize = -1
	}

	prev := p.page
	p.window = ComputeWindow(p.config.Request(page, collectionSize))

	if p.window.PageCount == 0 {
		p.page = NormalizePage(page)
		return
	}
	p.page = p.window.Page

	if p.page != prev {
		p.logger.Debug("page changed",
			slog.Int("from", prev),
			slog.Int("to", p.page),
			slog.Int("page_count", p.window.PageCount),
		)

		if p.onPageChange != nil {
			p.onPageChange(p.page)
		}
	}
}
