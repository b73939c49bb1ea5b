package internal

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidRef = errors.New("invalid pattern reference")

var typeOfInt64 = reflect.TypeOf(int64(0))

var (
	namePat = regexp.MustCompile(NameRegex)
	codePat = regexp.MustCompile(CodeRegex)
)

// IsName reports whether s is a well formed pattern name
func IsName(s string) bool {
	return namePat.MatchString(s)
}

// ToInt convert all integer type to int,
// string can also be parsed into int
func ToInt(arg interface{}) (int, error) {
	var i int64
	switch v := arg.(type) {
	case int:
		i = int64(v)
	case int8:
		i = int64(v)
	case int16:
		i = int64(v)
	case int32:
		i = int64(v)
	case int64:
		i = v
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, ErrInvalidRef
		}
		i = int64(v)
	case uint8:
		i = int64(v)
	case uint16:
		i = int64(v)
	case uint32:
		i = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, ErrInvalidRef
		}
		i = int64(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, errors.WithMessage(ErrInvalidRef, err.Error())
		}
		i = n
	default:
		if arg == nil {
			return 0, ErrInvalidRef
		}
		val := reflect.ValueOf(arg)
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i = val.Convert(typeOfInt64).Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if val.Uint() > math.MaxInt64 {
				return 0, ErrInvalidRef
			}
			i = int64(val.Uint())
		default:
			return 0, ErrInvalidRef
		}
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		// codes are limited to the int32 range
		return 0, ErrInvalidRef
	}
	return int(i), nil
}

// Ref is a parsed textual reference to a catalog entry
type Ref struct {
	Name   string
	Code   int
	IsCode bool
}

// ParseRef classify s as either a pattern name or a decimal code.
// Surrounding spaces are ignored.
// example:
//     "EMAIL_ADDRESS" => Ref{Name: "EMAIL_ADDRESS"}
//     " 12 "          => Ref{Code: 12, IsCode: true}
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	switch {
	case codePat.MatchString(s):
		code, err := ToInt(s)
		if err != nil {
			return Ref{}, err
		}
		return Ref{Code: code, IsCode: true}, nil
	case namePat.MatchString(s):
		return Ref{Name: s}, nil
	default:
		return Ref{}, errors.WithMessagef(ErrInvalidRef, "%q", s)
	}
}
