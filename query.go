package pagenav

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// RawPageRequest is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPageRequest `json:",inline"`
//	}
type RawPageRequest struct {
	// Page - requested page, 1-based. Values below 1 select the first page.
	Page int `json:"page"`
	// PageSize - number of records per page, normalized by NormalizePageSize.
	PageSize int `json:"pageSize"`
	// Sort - list of "alias asc|desc" strings resolved via ColumnMapping.
	Sort []string `json:"sort"`
}

// Decode converts RawPageRequest into *PageQuery. When Sort is empty,
// defaultSort is used.
func (r RawPageRequest) Decode(columnMapping ColumnMapping, defaultSort ...OrderBy) (*PageQuery, error) {
	sort, err := ParseSort(r.Sort, columnMapping)
	if err != nil {
		return nil, fmt.Errorf("cannot decode page request: %w", err)
	}

	if len(sort) == 0 {
		sort = Orderings(defaultSort)
	}

	return NewPageQuery(DefaultConfig()).
		WithPage(r.Page).
		WithPageSize(r.PageSize).
		WithSubstitutedSort(sort...), nil
}

// PageQuery applies numbered-page pagination (ORDER BY, LIMIT, OFFSET) to
// gorm queries.
type PageQuery struct {
	config Config
	page   int
	sort   Orderings
}

func NewPageQuery(config Config) *PageQuery {
	return &PageQuery{
		config: config,
		page:   1,
	}
}

// WithPage sets the requested page. Values below 1 select the first page.
func (q *PageQuery) WithPage(page int) *PageQuery {
	if q == nil {
		q = NewPageQuery(DefaultConfig())
	}

	q.page = NormalizePage(page)

	return q
}

// WithPageSize sets the page size, normalized by NormalizePageSize.
func (q *PageQuery) WithPageSize(pageSize int) *PageQuery {
	if q == nil {
		q = NewPageQuery(DefaultConfig())
	}

	q.config.PageSize = NormalizePageSize(pageSize)

	return q
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (q *PageQuery) WithSubstitutedSort(orderBy ...OrderBy) *PageQuery {
	if q == nil {
		q = NewPageQuery(DefaultConfig())
	}

	q.sort = nil

	return q.WithSort(orderBy...)
}

// WithSort appends orderings without overwriting existing ones. A column
// sorted twice keeps only its last ordering.
func (q *PageQuery) WithSort(orderBy ...OrderBy) *PageQuery {
	if q == nil {
		q = NewPageQuery(DefaultConfig())
	}

	q.sort = q.sort.With(orderBy...)

	return q
}

func (q *PageQuery) GetPage() int {
	if q == nil {
		return 1
	}

	return q.page
}

func (q *PageQuery) GetPageSize() int {
	if q == nil {
		return DefaultPageSize
	}

	return q.config.PageSize
}

func (q *PageQuery) GetSort() Orderings {
	if q == nil {
		return nil
	}

	return q.sort
}

// GetOffset returns the number of records skipped before the page.
func (q *PageQuery) GetOffset() int {
	return PageOffset(q.GetPage(), q.GetPageSize())
}

// Paginate applies ordering, LIMIT and OFFSET to the dataset. Returns an
// error if pagination cannot be applied.
func (q *PageQuery) Paginate(db *gorm.DB) (*gorm.DB, error) {
	err := q.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = q.sort.Apply(db)

	return db.Limit(q.GetPageSize()).Offset(q.GetOffset()), nil
}

func (q *PageQuery) validate() error {
	if q == nil {
		return fmt.Errorf("page query is nil")
	}

	if q.config.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", q.config.PageSize)
	}

	return q.sort.validate()
}

// Query returns a PageQuery for the selected page and page size.
func (p *Paginator) Query(orderBy ...OrderBy) *PageQuery {
	return NewPageQuery(p.config).
		WithPage(p.page).
		WithSubstitutedSort(orderBy...)
}

// PageResult is a page of records together with its window.
type PageResult[T any] struct {
	// Items - records of the selected page.
	Items []T
	// Total - number of records in the whole dataset.
	Total int64
	// Window - page window computed for Total.
	Window Window
}

// CountCollection returns the number of records matched by db.
func CountCollection(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	if err := db.Session(&gorm.Session{}).WithContext(ctx).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("cannot count collection: %w", err)
	}

	return total, nil
}

// FetchPage counts the dataset, clamps the requested page into the resulting
// page range and loads its records. A page beyond the end loads the last page
// and reports Window.Changed.
func FetchPage[T any](ctx context.Context, db *gorm.DB, q *PageQuery) (*PageResult[T], error) {
	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	base := db.Session(&gorm.Session{})
	total, err := CountCollection(ctx, base)
	if err != nil {
		return nil, err
	}

	ret := &PageResult[T]{
		Items:  []T{},
		Total:  total,
		Window: ComputeWindow(q.config.Request(q.page, int(total))),
	}
	if ret.Window.PageCount == 0 {
		return ret, nil
	}

	clamped := *q
	clamped.page = ret.Window.Page

	paged, err := clamped.Paginate(base.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	if err = paged.Find(&ret.Items).Error; err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	return ret, nil
}
