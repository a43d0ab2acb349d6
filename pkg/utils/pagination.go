package utils

// ClampPage clamps page to the valid range for a collection of total items
// sliced into pageSize-sized pages. Out-of-range requests land on the nearest
// valid page; an empty collection clamps to page 1.
func ClampPage(total, page, pageSize int) int {
	if page < 1 {
		return 1
	}
	last := (total + pageSize - 1) / pageSize
	if last < 1 {
		last = 1
	}
	if page > last {
		return last
	}
	return page
}

// Paginate slices items into the requested page, clamping out-of-range pages.
// It returns the page slice and the effective page number.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	page = ClampPage(len(items), page, pageSize)
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, page
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page
}
