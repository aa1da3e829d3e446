package pagenav

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// IsNormalizedPageSizeMax returns pageSize brought into [1, maxPageSize] and
// whether it was already there. Non-positive sizes fall back to
// DefaultPageSize.
func IsNormalizedPageSizeMax(pageSize int, maxPageSize int) (int, bool) {
	if pageSize <= 0 {
		return DefaultPageSize, false
	} else if pageSize > maxPageSize {
		return maxPageSize, false
	}

	return pageSize, true
}

func NormalizePageSizeMax(pageSize int, maxPageSize int) int {
	ret, _ := IsNormalizedPageSizeMax(pageSize, maxPageSize)
	return ret
}

func NormalizePageSize(pageSize int) int {
	return NormalizePageSizeMax(pageSize, MaxPageSize)
}

// NormalizePage returns page or 1 when page is not a valid 1-based number.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// PageOffset returns the number of items preceding page.
func PageOffset(page, pageSize int) int {
	return (NormalizePage(page) - 1) * max(pageSize, 0)
}
