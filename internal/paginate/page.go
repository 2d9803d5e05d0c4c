// Package paginate slices ordered sequences into fixed-size pages.
package paginate

// DefaultPageSize is the number of items shown per page.
const DefaultPageSize = 10

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// DefaultPageSizeConfig bounds page sizes accepted from configuration and flags.
var DefaultPageSizeConfig = PageSizeConfig{Default: DefaultPageSize, Max: 100}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// Page is one window over a filtered sequence.
type Page[T any] struct {
	Index      int `json:"page"`
	Size       int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
	Items      []T `json:"items"`
}

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool { return p.Index > 1 }

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Index < p.TotalPages }

// TotalPages returns the number of pages needed for n items. An empty
// sequence still has one (empty) page.
func TotalPages(n, size int) int {
	size = ClampPageSize(size, PageSizeConfig{Default: DefaultPageSize})
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampIndex moves index into [1, TotalPages(n, size)].
func ClampIndex(index, n, size int) int {
	return min(max(index, 1), TotalPages(n, size))
}

// Paginate returns page index of items. The index is clamped into the valid
// range first, so out-of-range requests land on the first or last page.
func Paginate[T any](items []T, index, size int) Page[T] {
	size = ClampPageSize(size, PageSizeConfig{Default: DefaultPageSize})
	index = ClampIndex(index, len(items), size)

	start := min((index-1)*size, len(items))
	end := min(start+size, len(items))

	page := make([]T, end-start)
	copy(page, items[start:end])

	return Page[T]{
		Index:      index,
		Size:       size,
		TotalPages: TotalPages(len(items), size),
		TotalItems: len(items),
		Items:      page,
	}
}
