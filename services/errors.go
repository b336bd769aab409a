package services

import (
	"errors"
	"fmt"
)

// Validation failure reasons
const (
	ReasonMissingField     = "missing_field"
	ReasonFieldTooLong     = "field_too_long"
	ReasonNegativeQuantity = "negative_quantity"
)

// ValidationError blocks a submit before any store call is issued. The form
// keeps its draft and shows the message; nothing is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// HeaderWriteError reports a failed phase-1 header write. No items were
// touched; the operation aborted cleanly.
type HeaderWriteError struct {
	Op  string
	Err error
}

func (e *HeaderWriteError) Error() string {
	return fmt.Sprintf("%s: header write failed: %v", e.Op, e.Err)
}

func (e *HeaderWriteError) Unwrap() error { return e.Err }

// ItemWriteError reports a failed phase-2 item write after the header phase
// already succeeded. The header row stands as written; there is no automatic
// rollback, so the caller must treat the invoice as needing reconciliation.
type ItemWriteError struct {
	Op  string
	Err error
}

func (e *ItemWriteError) Error() string {
	return fmt.Sprintf("%s: item write failed: %v", e.Op, e.Err)
}

func (e *ItemWriteError) Unwrap() error { return e.Err }

// ErrModeBusy is returned when a create/edit/delete is requested while
// another operation is already in flight for the same user.
var ErrModeBusy = errors.New("another invoice operation is already in flight")

// ErrNoDraft is returned when a draft edit or submit arrives with no
// create/edit cycle open.
var ErrNoDraft = errors.New("no draft is open")
