package engine

func clampPageSize(pageSize int) int {
	return max(pageSize, 1)
}

// TotalPages returns ceil(n / pageSize). An empty sequence has zero pages.
func TotalPages(n, pageSize int) int {
	pageSize = clampPageSize(pageSize)
	if n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// PageStart returns the index of the first row of page (1-based).
func PageStart(page, pageSize int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * clampPageSize(pageSize)
}

// Paginate returns the rows of the given 1-based page. A page outside
// 1..TotalPages yields an empty slice; the caller decides what to do about it.
// The result aliases rows and must not be appended to.
func Paginate(rows []FlatRow, page, pageSize int) []FlatRow {
	pageSize = clampPageSize(pageSize)
	if page < 1 || page-1 >= TotalPages(len(rows), pageSize) {
		return nil
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(rows))
	return rows[start:end:end]
}
