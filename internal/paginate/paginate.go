// Package paginate provides pure, stateless windowing over ordered slices.
package paginate

// Page is one window over an ordered sequence. Pages are numbered from 1.
type Page[T any] struct {
	Items      []T
	TotalPages int
	CanPrev    bool
	CanNext    bool
}

// TotalPages returns ceil(count / pageSize), or 0 for an empty sequence.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the window for currentPage. The slice bounds are clamped,
// so an out-of-range page yields an empty window rather than a panic.
func Paginate[T any](items []T, pageSize, currentPage int) Page[T] {
	total := TotalPages(len(items), pageSize)
	p := Page[T]{TotalPages: total}
	if total == 0 {
		return p
	}
	if currentPage < 1 {
		currentPage = 1
	}

	lo := (currentPage - 1) * pageSize
	hi := lo + pageSize
	if lo > len(items) {
		lo = len(items)
	}
	if hi > len(items) {
		hi = len(items)
	}

	p.Items = items[lo:hi]
	p.CanPrev = currentPage > 1
	p.CanNext = currentPage < total
	return p
}

// Clamp pulls currentPage back into [1, totalPages]. When the item count
// shrinks under the current page (a delete emptied the last page), the caller
// uses this on the next aggregation cycle instead of showing an empty page.
func Clamp(currentPage, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if currentPage < 1 {
		return 1
	}
	if currentPage > totalPages {
		return totalPages
	}
	return currentPage
}
