// utils/errors.go
package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"prestige-salon-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError names one offending request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned when a request body does not satisfy a record schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError translates a bind error into a ValidationError.
func NewValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &verrs):
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Reason: reasonFor(fe)})
		}
		return &ValidationError{Fields: fields}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{Fields: []FieldError{{Field: field, Reason: "expected " + typeErr.Type.String()}}}
	case errors.As(err, &syntaxErr):
		return &ValidationError{Fields: []FieldError{{Field: "body", Reason: "invalid JSON: " + syntaxErr.Error()}}}
	case errors.Is(err, io.EOF):
		return &ValidationError{Fields: []FieldError{{Field: "body", Reason: "request body required"}}}
	default:
		return &ValidationError{Fields: []FieldError{{Field: "body", Reason: err.Error()}}}
	}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		return "must be greater than or equal to " + fe.Param()
	default:
		return fe.Error()
	}
}

// RespondWithError aborts the request with status and a detail message.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": message})
}

// RespondWithFailure maps err to a response: validation errors are client errors carrying the
// offending fields, store and any other errors are server errors carrying the error text.
func RespondWithFailure(c *gin.Context, err error) {
	_ = c.Error(err)

	var ve *ValidationError
	var se *store.StoreError
	switch {
	case errors.As(err, &ve):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": ve.Fields})
	case errors.As(err, &se):
		RespondWithError(c, http.StatusInternalServerError, se.Error())
	default:
		RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
