package repository

import (
	"github.com/goliatone/go-errors"
)

// TextCodeRecordNotFound is the text code carried by not-found results.
const TextCodeRecordNotFound = "RECORD_NOT_FOUND"

// NewRecordNotFound builds the not-found sentinel. It is a first-class
// empty-result value for callers, not a persistence failure: handlers map it
// to a 404 and never log it as an error.
func NewRecordNotFound() *errors.Error {
	return errors.New("record not found", errors.CategoryNotFound).
		WithTextCode(TextCodeRecordNotFound).
		WithCode(errors.CodeNotFound)
}

// IsRecordNotFound reports whether err is the not-found sentinel.
func IsRecordNotFound(err error) bool {
	return errors.IsNotFound(err)
}
