// Package errs is a thin facade over cockroachdb/errors so the rest of the
// codebase does not import it directly.
package errs

import (
	"github.com/cockroachdb/errors"
)

func New(msg string) error {
	return errors.New(msg)
}

func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Mark attaches reference as an error mark so errors.Is(err, reference)
// holds while the original cause chain is preserved.
func Mark(err error, reference error) error {
	return errors.Mark(err, reference)
}
