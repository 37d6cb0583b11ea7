package solver

// DefaultPageSize is the number of words shown per page.
const DefaultPageSize = 10

// Page is one window over a filtered result.
type Page struct {
	Items []string
	// Index is the zero-based page number after clamping.
	Index int
	Pages int
	Size  int
	Total int
	// Start is the position of Items[0] in the full result.
	Start   int
	HasPrev bool
	HasNext bool
}

// Paginate cuts items into pages of size and returns page index, clamped
// into range. An empty input still yields one empty page.
func Paginate(items []string, index, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	pages := PageCount(len(items), size)
	index = ClampPage(index, pages)

	start := index * size
	end := min(start+size, len(items))
	if start > end {
		start = end
	}

	return Page{
		Items:   items[start:end],
		Index:   index,
		Pages:   pages,
		Size:    size,
		Total:   len(items),
		Start:   start,
		HasPrev: index > 0,
		HasNext: index < pages-1,
	}
}

// PageCount returns how many pages total items fill at size per page.
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage keeps index within [0, pages-1].
func ClampPage(index, pages int) int {
	if index >= pages {
		index = pages - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
