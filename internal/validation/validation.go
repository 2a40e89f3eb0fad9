// Package validation registers the complaint enum rules used in request
// binding tags.
package validation

import (
	"errors"
	"strings"

	"github.com/civiclink/backend/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom rules on gin's default validator. It must
// run before any request struct using these tags is bound.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"complaint_status":     validateStatus,
		"complaint_priority":   validatePriority,
		"complaint_category":   validateCategory,
		"complaint_department": validateDepartment,
		"notblank":             validateNotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func validateStatus(fl validator.FieldLevel) bool {
	return models.ComplaintStatus(fl.Field().String()).Valid()
}

func validatePriority(fl validator.FieldLevel) bool {
	return models.ComplaintPriority(fl.Field().String()).Valid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.ComplaintCategory(fl.Field().String()).Valid()
}

// validateDepartment also accepts the Unassigned sentinel.
func validateDepartment(fl validator.FieldLevel) bool {
	d := models.Department(fl.Field().String())
	return d == models.DepartmentUnassigned || d.Valid()
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
