package validator

import (
	"regexp"

	"trekheaven/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slugRegex matches valid slugs: lowercase alphanumeric with hyphens, no leading/trailing/consecutive hyphens
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSlug validates that a string is a valid slug
func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// validateDifficulty validates that a string is one of the trek difficulty levels
func validateDifficulty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, d := range models.Difficulties {
		if value == d {
			return true
		}
	}
	return false
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", validateSlug)
		_ = v.RegisterValidation("trekdifficulty", validateDifficulty)
	}
}
