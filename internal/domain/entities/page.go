package entities

const DefaultPageSize = 10

// PageRequest selects a zero-based page of results.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps negative pages to zero and falls back to the default size.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}

func (p PageRequest) Offset() int {
	n := p.Normalize()
	return n.Page * n.Size
}

type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage builds the page envelope for an already sliced result set.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	req = req.Normalize()
	if content == nil {
		content = []T{}
	}
	pages := int(total / int64(req.Size))
	if total%int64(req.Size) != 0 {
		pages++
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Paginate slices an in-memory result set.
func Paginate[T any](all []T, req PageRequest) Page[T] {
	req = req.Normalize()
	total := len(all)
	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.Size
	if end > total {
		end = total
	}
	content := make([]T, end-start)
	copy(content, all[start:end])
	return NewPage(content, req, int64(total))
}

// MapPage converts the content of a page while keeping its envelope.
func MapPage[T, U any](p Page[T], content []U) Page[U] {
	if content == nil {
		content = []U{}
	}
	return Page[U]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
