package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hotel-saas/models"
)

func JSONError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

func JSONValidationError(c *gin.Context, code int, fields []models.FieldError) {
	c.AbortWithStatusJSON(code, gin.H{"message": "Validation error", "errors": fields})
}

// BindingErrors turns a ShouldBindJSON failure into field errors. Binding
// tag failures are reported per field; anything else (bad JSON, wrong
// types) becomes a single body error.
func BindingErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, models.FieldError{Field: jsonFieldName(fe), Message: tagMessage(fe)})
		}
		return out
	}
	return []models.FieldError{{Field: "body", Message: err.Error()}}
}

func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "failed " + fe.Tag() + " validation"
}
