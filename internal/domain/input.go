package domain

// ArticleInput is the request-side field bag for article create and update.
// Pointer fields distinguish "absent" from the zero value where the two have
// different meanings: a nil Status selects the default, a nil CategoryID
// clears (or never sets) the category association.
type ArticleInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	CoverImage  *string  `json:"cover_image"`
	Images      []string `json:"images"`
	CategoryID  *int64   `json:"category_id"`
	Status      *string  `json:"status"`
	ArticleType string   `json:"article_type"`
	Tag         string   `json:"tag"`
}

// CategoryInput is the request-side field bag for category create and update.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
