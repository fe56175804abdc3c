package domain

const (
	// DefaultPageSize is used when the request omits the size or provides a
	// non-positive one.
	DefaultPageSize = 10
	// MaxPageSize caps the page size to protect the store.
	MaxPageSize = 100
)

// SortOrder enumerates the orderings supported by the article list query.
type SortOrder int

const (
	// SortByCreatedAtDesc orders newest first. This is the default.
	SortByCreatedAtDesc SortOrder = iota
	// SortByViewCountDesc orders most viewed first, selected by the HOT tag.
	SortByViewCountDesc
)

// ArticleFilter carries the optional predicates and paging directives for the
// article list query. A nil field means "no restriction on this field", never
// "match null". Tag selects the sort order only; it is not a predicate.
type ArticleFilter struct {
	Page        *int
	Size        *int
	Status      *string
	CategoryID  *int64
	ArticleType *string
	Tag         *string
}

// NormalizedPage returns the effective page index: defaults to 0 and is
// clamped to be non-negative.
func (f ArticleFilter) NormalizedPage() int {
	if f.Page == nil || *f.Page < 0 {
		return 0
	}
	return *f.Page
}

// NormalizedSize returns the effective page size: defaults to 10, falls back
// to 10 for non-positive values, and is capped at 100.
func (f ArticleFilter) NormalizedSize() int {
	if f.Size == nil || *f.Size <= 0 {
		return DefaultPageSize
	}
	if *f.Size > MaxPageSize {
		return MaxPageSize
	}
	return *f.Size
}

// SortOrder maps the tag filter to the list ordering: HOT sorts by view count
// descending, everything else by creation time descending.
func (f ArticleFilter) SortOrder() SortOrder {
	if f.Tag != nil && *f.Tag == TagHot {
		return SortByViewCountDesc
	}
	return SortByCreatedAtDesc
}
