package quote

import "fmt"

// FieldError reports the first missing or invalid required field of a request.
type FieldError struct {
	Product Product
	Field   string
	Reason  string
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s is required", e.Product, e.Field)
	}
	return fmt.Sprintf("%s: %s %s", e.Product, e.Field, e.Reason)
}

func missing(product Product, field string) *FieldError {
	return &FieldError{Product: product, Field: field}
}

func invalid(product Product, field, reason string) *FieldError {
	return &FieldError{Product: product, Field: field, Reason: reason}
}
