package model

import (
	"errors"
	"fmt"
)

var ErrItemNotFound = errors.New("item not found")

// ValidationError reports a rejected request field. Handlers map it to a 422.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
