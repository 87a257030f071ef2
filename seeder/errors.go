package seeder

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a fixture reference to a reference-table row that
// does not exist (unknown size code, fabric name, customer, ...).
var ErrNotFound = errors.New("record not found")

// ErrMalformedInput marks an unparseable decimal, date or integer
// field in the fixture, or a fixture record failing validation.
var ErrMalformedInput = errors.New("malformed input")

func notFoundf(entity, key string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, entity, key)
}

func malformedf(field, value string, err error) error {
	return fmt.Errorf("%w: %s %q: %v", ErrMalformedInput, field, value, err)
}
