package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyDelivered  = errors.New("order already delivered")
	ErrMalformedDocument = errors.New("malformed order document")

	ErrEmptyCustomerName  = errors.New("please enter customer name")
	ErrEmptyDate          = errors.New("please select order date")
	ErrNoItems            = errors.New("please add at least one item")
	ErrProductNotSelected = errors.New("please select a product for all items")
	ErrUnknownProduct     = errors.New("unknown product")
	ErrMissingQuantity    = errors.New("please enter quantity for all items")
	ErrInvalidQuantity    = errors.New("please enter valid quantity")
	ErrInvalidNumbers     = errors.New("invalid numbers")
)

// ValidationError reports rejected order input. Field is empty for form-level failures;
// Item is the zero-based line index for item failures and -1 otherwise.
type ValidationError struct {
	Field string
	Item  int
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Item >= 0:
		return fmt.Sprintf("item %d: %s", e.Item+1, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is caused by rejected input.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
