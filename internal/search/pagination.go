package search

// PageItem is one entry of the pagination bar. Ellipsis items have Page 0.
type PageItem struct {
	Page     int
	Ellipsis bool
}

const maxUnfoldedPages = 7

// Pagination lays out the pagination bar for totalPages with currentPage
// highlighted. Up to seven pages are listed in full; beyond that the first
// and last pages stay visible and gaps collapse into ellipses.
func Pagination(currentPage, totalPages int) []PageItem {
	if totalPages <= 0 {
		return nil
	}

	if totalPages <= maxUnfoldedPages {
		return pages(seq(1, totalPages)...)
	}

	switch {
	case currentPage <= 3:
		return pages(1, 2, 3, 0, totalPages-1, totalPages)
	case currentPage >= totalPages-2:
		return pages(1, 2, 0, totalPages-2, totalPages-1, totalPages)
	default:
		return pages(1, 0, currentPage-1, currentPage, currentPage+1, 0, totalPages)
	}
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// pages turns page numbers into items, 0 marking an ellipsis.
func pages(nums ...int) []PageItem {
	items := make([]PageItem, len(nums))
	for i, n := range nums {
		if n == 0 {
			items[i] = PageItem{Ellipsis: true}
			continue
		}
		items[i] = PageItem{Page: n}
	}
	return items
}
