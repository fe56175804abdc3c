package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"article-api/internal/domain"
)

var (
	validStatuses = []interface{}{domain.StatusPublished, domain.StatusDraft, domain.StatusArchived}
	validTags     = []interface{}{domain.TagHot, domain.TagLatest}
)

// Validator provides validation methods for service inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleCreate validates the input of an article create. The title
// must be present and non-blank; status and tag, when provided, must be
// members of their enumerations.
func (v *Validator) ValidateArticleCreate(in *domain.ArticleInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.By(notBlank("title_blank")),
		),
		validation.Field(&in.Status,
			validation.In(validStatuses...).Error("invalid_status"),
		),
		validation.Field(&in.Tag,
			validation.In(validTags...).Error("invalid_tag"),
		),
	)
	return convert(err)
}

// ValidateArticleUpdate validates the input of an article update. Updates are
// full-replace, so the title is copied as-is; only the enumerated fields are
// checked.
func (v *Validator) ValidateArticleUpdate(in *domain.ArticleInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Status,
			validation.In(validStatuses...).Error("invalid_status"),
		),
		validation.Field(&in.Tag,
			validation.In(validTags...).Error("invalid_tag"),
		),
	)
	return convert(err)
}

// ValidateCategory validates the input of a category create or update. The
// name must be present and non-blank. Name uniqueness is a service concern.
func (v *Validator) ValidateCategory(in *domain.CategoryInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.Required.Error("name_required"),
			validation.By(notBlank("name_blank")),
		),
	)
	return convert(err)
}

// notBlank rejects strings that are empty after trimming whitespace.
// validation.Required alone accepts all-whitespace values.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, "must not be blank")
		}
		return nil
	}
}

// convert translates ozzo validation errors into domain validation errors so
// the HTTP boundary can map them to a bad-request response.
func convert(err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			return domain.NewValidationError(field, fieldErr.Error())
		}
	}
	return domain.NewValidationError("input", err.Error())
}
