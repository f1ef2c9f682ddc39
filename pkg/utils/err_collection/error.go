// Package errcollection gathers errors of cleanup steps which all have to run.
package errcollection

import (
	"strings"

	"github.com/pkg/errors"
)

const delimiter = "; "

// ErrorCollection combines messages of every added non-nil error.
type ErrorCollection struct {
	errorList []error
}

// Add appends err to collection. Nil errors are ignored.
func (e *ErrorCollection) Add(err error) {
	if err != nil {
		e.errorList = append(e.errorList, err)
	}
}

// Len returns number of collected errors.
func (e *ErrorCollection) Len() int {
	return len(e.errorList)
}

// GetErrIfAny returns nil for empty collection, the error itself for a single one
// and an error with messages joined by "; " otherwise.
func (e *ErrorCollection) GetErrIfAny() error {
	switch len(e.errorList) {
	case 0:
		return nil
	case 1:
		return e.errorList[0]
	}

	messages := make([]string, 0, len(e.errorList))
	for _, err := range e.errorList {
		messages = append(messages, err.Error())
	}
	return errors.New(strings.Join(messages, delimiter))
}
