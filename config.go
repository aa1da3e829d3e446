package pagenav

import "fmt"

// Size is the display size of the navigation bar.
type Size string

const (
	SizeDefault Size = ""
	SizeSmall   Size = "sm"
	SizeLarge   Size = "lg"
)

func (s Size) Valid() bool {
	return s == SizeDefault || s == SizeSmall || s == SizeLarge
}

// Config holds display settings shared by every Paginator. The zero value is
// not useful, start from DefaultConfig.
type Config struct {
	// Disabled - all links are disabled.
	Disabled bool `json:"disabled" mapstructure:"disabled"`
	// BoundaryLinks - show "First" and "Last" links.
	BoundaryLinks bool `json:"boundaryLinks" mapstructure:"boundary_links"`
	// DirectionLinks - show "Previous" and "Next" links.
	DirectionLinks bool `json:"directionLinks" mapstructure:"direction_links"`
	// Ellipses - show ellipses and first/last page numbers around a
	// truncated window.
	Ellipses bool `json:"ellipses" mapstructure:"ellipses"`
	// MaxSize - maximum number of page links. 0 means all pages.
	MaxSize int `json:"maxSize" mapstructure:"max_size"`
	// PageSize - number of items per page.
	PageSize int `json:"pageSize" mapstructure:"page_size"`
	// Rotate - keep the current page in the middle of the window.
	Rotate bool `json:"rotate" mapstructure:"rotate"`
	// Size - display size hint for the presentation layer.
	Size Size `json:"size" mapstructure:"size"`
}

func DefaultConfig() Config {
	return Config{
		Disabled:       false,
		BoundaryLinks:  false,
		DirectionLinks: true,
		Ellipses:       true,
		MaxSize:        0,
		PageSize:       DefaultPageSize,
		Rotate:         false,
		Size:           SizeDefault,
	}
}

// Validate returns an error if the config cannot produce a meaningful window.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}

	if c.MaxSize < 0 {
		return fmt.Errorf("max size must not be negative, got %d", c.MaxSize)
	}

	if !c.Size.Valid() {
		return fmt.Errorf("invalid size '%s'", c.Size)
	}

	return nil
}

// Request builds a WindowRequest for the given page and collection size.
func (c Config) Request(page, collectionSize int) WindowRequest {
	return WindowRequest{
		Page:           page,
		CollectionSize: collectionSize,
		PageSize:       c.PageSize,
		MaxSize:        c.MaxSize,
		Rotate:         c.Rotate,
		Ellipses:       c.Ellipses,
	}
}
