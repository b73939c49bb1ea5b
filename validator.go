package xcatalog

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// Compile return the regexp2 form of p built by the startup self check.
// Matching is limited to MatchTimeout and fails with a timeout error past it.
// The returned value is shared by every caller and must not be modified.
func Compile(p Pattern) (*regexp2.Regexp, error) {
	if !p.Valid() {
		return nil, &UnknownPatternError{Ref: p.String()}
	}
	return compiled[p], nil
}

// MustCompile is like Compile but panics on an unknown pattern
func MustCompile(p Pattern) *regexp2.Regexp {
	re, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return re
}

// ValidatorError is returned by a Validator when the input does not contain a
// match of the pattern.
type ValidatorError struct {
	Pattern Pattern
	Input   string
}

func (e ValidatorError) Error() string {
	return fmt.Sprintf("%q does not match %s", e.Input, e.Pattern)
}

type Validator func(string) error

func dummyValidator(string) error {
	return nil
}

// And concat two Validator into a new Validator
// Validator v will be executed first, if it return a not-nil error, return
// immediately, otherwise execute other.
func (v Validator) And(other Validator) Validator {
	if other == nil && v == nil {
		return dummyValidator
	} else if v == nil {
		return other
	} else if other == nil {
		return v
	}
	return func(s string) error {
		if err := v(s); err != nil {
			return err
		}
		return other(s)
	}
}

// MatchValidator return a Validator that check whether a string contains a
// match of every given pattern. Tags are unanchored, so a partial match is
// enough.
func MatchValidator(ps ...Pattern) Validator {
	var vld Validator
	for _, p := range ps {
		vld = vld.And(matchValidator(MustCompile(p), p))
	}
	return vld.And(nil)
}

func matchValidator(re *regexp2.Regexp, p Pattern) Validator {
	return func(s string) error {
		ok, err := re.MatchString(s)
		if err != nil {
			return errors.WithMessagef(err, "match %s", p)
		}
		if !ok {
			return ValidatorError{Pattern: p, Input: s}
		}
		return nil
	}
}
