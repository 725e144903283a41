// Package errs holds the typed errors of the converter and helpers to add context to them.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Extender is implemented by errors that can prefix their message while keeping their type.
type Extender interface {
	Extend(message string) error
}

// Extend adds the message as context to err. Errors implementing Extender keep their type,
// all others are wrapped with a stack trace.
func Extend(err error, message string) error {
	if ex, ok := err.(Extender); ok {
		return ex.Extend(message)
	}
	return errors.Wrap(err, message)
}

func fmtExtend(self error, message string) string {
	return fmt.Sprintf("%s: %s", message, self)
}
