package xcatalog

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrUnknownPattern = errors.New("unknown pattern")
var ErrInvalidPatternDefinition = errors.New("invalid pattern definition")

// UnknownPatternError is returned when a name, code or reference does not
// resolve to any entry of the catalog.
type UnknownPatternError struct {
	Ref string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownPattern, e.Ref)
}

func (e *UnknownPatternError) Unwrap() error {
	return ErrUnknownPattern
}

// InvalidPatternDefinitionError reports an entry of the shipped table that
// breaks one of the catalog invariants.
type InvalidPatternDefinitionError struct {
	Code   int
	Name   string
	Reason string
}

func (e *InvalidPatternDefinitionError) Error() string {
	return fmt.Sprintf("%s %s(%d): %s", ErrInvalidPatternDefinition, e.Name, e.Code, e.Reason)
}

func (e *InvalidPatternDefinitionError) Unwrap() error {
	return ErrInvalidPatternDefinition
}
