package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes one field that failed its binding tag.
type ValidationError struct {
	Field   string `json:"field" example:"ContactNumber"`
	Tag     string `json:"tag" example:"required"`
	Message string `json:"message" example:"ContactNumber is required"`
}

type ValidationErrorResponse struct {
	Error   string            `json:"error" example:"validation failed"`
	Details []ValidationError `json:"details,omitempty"`
}

// ValidationErrors flattens validator failures. Any other error yields nil.
func ValidationErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// BindError builds the 400 body for a request that failed to bind.
func BindError(err error) ValidationErrorResponse {
	if details := ValidationErrors(err); len(details) > 0 {
		return ValidationErrorResponse{Error: "validation failed", Details: details}
	}
	return ValidationErrorResponse{Error: "invalid request body"}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "lte":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
