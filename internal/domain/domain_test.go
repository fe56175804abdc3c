package domain

import (
	"testing"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{"PUBLISHED", true},
		{"DRAFT", true},
		{"ARCHIVED", true},
		{"published", false},
		{"DELETED", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidTag(t *testing.T) {
	tests := []struct {
		tag   string
		valid bool
	}{
		{"HOT", true},
		{"LATEST", true},
		{"hot", false},
		{"TRENDING", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := IsValidTag(tt.tag); got != tt.valid {
				t.Errorf("IsValidTag(%q) = %v, want %v", tt.tag, got, tt.valid)
			}
		})
	}
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestArticleFilter_NormalizedPage(t *testing.T) {
	tests := []struct {
		name string
		page *int
		want int
	}{
		{"nil defaults to zero", nil, 0},
		{"negative clamps to zero", intPtr(-3), 0},
		{"zero stays zero", intPtr(0), 0},
		{"positive passes through", intPtr(7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ArticleFilter{Page: tt.page}
			if got := f.NormalizedPage(); got != tt.want {
				t.Errorf("NormalizedPage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestArticleFilter_NormalizedSize(t *testing.T) {
	tests := []struct {
		name string
		size *int
		want int
	}{
		{"nil defaults to 10", nil, 10},
		{"zero falls back to 10", intPtr(0), 10},
		{"negative falls back to 10", intPtr(-1), 10},
		{"in range passes through", intPtr(25), 25},
		{"capped at 100", intPtr(500), 100},
		{"boundary 100 passes through", intPtr(100), 100},
		{"boundary 1 passes through", intPtr(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ArticleFilter{Size: tt.size}
			if got := f.NormalizedSize(); got != tt.want {
				t.Errorf("NormalizedSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestArticleFilter_SortOrder(t *testing.T) {
	tests := []struct {
		name string
		tag  *string
		want SortOrder
	}{
		{"nil tag sorts by creation time", nil, SortByCreatedAtDesc},
		{"HOT tag sorts by view count", strPtr("HOT"), SortByViewCountDesc},
		{"LATEST tag sorts by creation time", strPtr("LATEST"), SortByCreatedAtDesc},
		{"unknown tag sorts by creation time", strPtr("hot"), SortByCreatedAtDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ArticleFilter{Tag: tt.tag}
			if got := f.SortOrder(); got != tt.want {
				t.Errorf("SortOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		size          int
		totalElements int64
		wantPages     int
		wantNext      bool
		wantPrev      bool
	}{
		{"empty result", 0, 10, 0, 0, false, false},
		{"single partial page", 0, 10, 3, 1, false, false},
		{"exact page boundary", 0, 10, 10, 1, false, false},
		{"first of several", 0, 10, 25, 3, true, false},
		{"middle page", 1, 10, 25, 3, true, true},
		{"last page", 2, 10, 25, 3, false, true},
		{"size one", 4, 1, 5, 5, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPageResult([]int{}, tt.page, tt.size, tt.totalElements)
			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", result.HasNext, tt.wantNext)
			}
			if result.HasPrevious != tt.wantPrev {
				t.Errorf("HasPrevious = %v, want %v", result.HasPrevious, tt.wantPrev)
			}
		})
	}
}

func TestErrorKinds(t *testing.T) {
	nf := NewNotFoundError("article", 42)
	if !IsNotFound(nf) {
		t.Error("IsNotFound(NotFoundError) = false, want true")
	}
	if IsValidation(nf) {
		t.Error("IsValidation(NotFoundError) = true, want false")
	}
	if nf.Error() != "article 42 not found" {
		t.Errorf("unexpected message: %q", nf.Error())
	}

	ve := NewValidationError("title", "must not be blank")
	if !IsValidation(ve) {
		t.Error("IsValidation(ValidationError) = false, want true")
	}
	if IsNotFound(ve) {
		t.Error("IsNotFound(ValidationError) = true, want false")
	}
}
