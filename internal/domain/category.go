package domain

import "time"

// Category represents an article category. Articles hold a weak reference
// to a category: deleting a category leaves referencing articles in place.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"create_time"`
	UpdatedAt   time.Time `json:"update_time"`
}
