package domain

// PageResult is one page of a list query together with the derived paging
// metadata.
type PageResult[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	HasNext       bool  `json:"has_next"`
	HasPrevious   bool  `json:"has_previous"`
}

// NewPageResult derives totalPages = ceil(total/size) and the has-next /
// has-previous flags. With zero total elements both flags are false.
func NewPageResult[T any](content []T, page, size int, totalElements int64) PageResult[T] {
	totalPages := int((totalElements + int64(size) - 1) / int64(size))
	return PageResult[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		HasNext:       page < totalPages-1,
		HasPrevious:   page > 0,
	}
}
