package common

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrUnknownResource = errors.New("unknown resource")
)

const (
	pqInvalidTextRepresentation = "22P02"
	pqNumericValueOutOfRange    = "22003"
	pqForeignKeyViolation       = "23503"
)

// IsInvalidTextRepresentation reports whether postgres rejected a literal that could not
// be cast to the column type, e.g. an out of range integer id.
func IsInvalidTextRepresentation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqInvalidTextRepresentation
	}

	return false
}

// IsNumericOutOfRange reports whether a value did not fit its integer column, e.g. an id
// past the serial range or a vote total that would overflow.
func IsNumericOutOfRange(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqNumericValueOutOfRange
	}

	return false
}

// ForeignKeyError is a helper function to check if the error is a foreign key constraint error.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqForeignKeyViolation && pqErr.Constraint == name {
			return true
		}
	}

	return false
}
