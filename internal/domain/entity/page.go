package entity

// PageRequest is a 1-based page number plus page size.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of elements preceding the requested page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Size
}

// Page is one page of results plus pagination metadata. The shape is
// identical whether the content was paged by the storage layer or
// sliced from an in-memory sorted list.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage assembles a page from already-sliced content and the total
// element count of the filtered set.
func NewPage[T any](content []T, total int64, req PageRequest) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
