package domain

import "time"

// Article represents an article entity in the system.
// CategoryName is a read-only projection resolved from the category
// relation when the article is loaded; it is never written back.
type Article struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CoverImage   *string   `json:"cover_image,omitempty"`
	Images       []string  `json:"images"`
	CategoryID   *int64    `json:"category_id,omitempty"`
	CategoryName *string   `json:"category_name,omitempty"`
	ViewCount    int       `json:"view_count"`
	Status       string    `json:"status"`
	ArticleType  string    `json:"article_type,omitempty"`
	Tag          string    `json:"tag,omitempty"`
	CreatedAt    time.Time `json:"create_time"`
	UpdatedAt    time.Time `json:"update_time"`
}

const (
	StatusPublished = "PUBLISHED"
	StatusDraft     = "DRAFT"
	StatusArchived  = "ARCHIVED"
)

const (
	TagHot    = "HOT"
	TagLatest = "LATEST"
)

// DefaultStatus is applied when a create or update request omits the status.
const DefaultStatus = StatusPublished

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []string{StatusPublished, StatusDraft, StatusArchived}

// ValidTags contains all valid article tags.
var ValidTags = []string{TagHot, TagLatest}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidTag checks if a tag is valid.
func IsValidTag(tag string) bool {
	for _, t := range ValidTags {
		if t == tag {
			return true
		}
	}
	return false
}
