package xcatalog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ccbhj/xcatalog/internal"
	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// Entry is one immutable catalog entry. Accessors hand out copies.
type Entry struct {
	Code int
	Name string
	Tag  string
}

// Pattern return the enum value of e
func (e Entry) Pattern() Pattern {
	return Pattern(e.Code)
}

var (
	byName   map[string]Pattern
	compiled [numPatterns]*regexp2.Regexp
)

// the catalog is read only once init returns
func init() {
	names, res, err := checkTable(table[:])
	if err != nil {
		panic(err)
	}
	byName = names
	copy(compiled[:], res)
}

// MatchTimeout bounds a single match of a compiled tag. The file name tags
// backtrack exponentially on long inputs that do not match.
const MatchTimeout = 250 * time.Millisecond

// checkTable verify that entries hold dense zero based codes, unique well
// formed names and tags compiling under regexp2. Tags are compiled in
// ECMAScript mode so \d and \w only cover ASCII. It return the name index and
// the compiled tags in code order.
func checkTable(entries []Entry) (map[string]Pattern, []*regexp2.Regexp, error) {
	names := make(map[string]Pattern, len(entries))
	res := make([]*regexp2.Regexp, len(entries))
	for i, e := range entries {
		if e.Code != i {
			return nil, nil, &InvalidPatternDefinitionError{
				Code:   e.Code,
				Name:   e.Name,
				Reason: "code out of order, want " + strconv.Itoa(i),
			}
		}
		if !internal.IsName(e.Name) {
			return nil, nil, &InvalidPatternDefinitionError{Code: e.Code, Name: e.Name, Reason: "malformed name"}
		}
		if _, dup := names[e.Name]; dup {
			return nil, nil, &InvalidPatternDefinitionError{Code: e.Code, Name: e.Name, Reason: "duplicate name"}
		}
		if e.Tag == "" {
			return nil, nil, &InvalidPatternDefinitionError{Code: e.Code, Name: e.Name, Reason: "empty tag"}
		}
		re, err := regexp2.Compile(e.Tag, regexp2.ECMAScript)
		if err != nil {
			return nil, nil, &InvalidPatternDefinitionError{Code: e.Code, Name: e.Name, Reason: err.Error()}
		}
		re.MatchTimeout = MatchTimeout
		names[e.Name] = Pattern(i)
		res[i] = re
	}
	return names, res, nil
}

// Check run the construction time self check again over the catalog
func Check() error {
	_, _, err := checkTable(table[:])
	return err
}

// Len return the number of entries
func Len() int {
	return len(table)
}

// All return every entry in ascending code order. The slice is a fresh copy.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])
	return out
}

// ByCode return the entry whose code is code
func ByCode(code int) (Entry, error) {
	p := Pattern(code)
	if !p.Valid() {
		return Entry{}, &UnknownPatternError{Ref: strconv.Itoa(code)}
	}
	return table[p], nil
}

// ByCodeOf is ByCode for codes persisted with another integer type, a decimal
// string is accepted as well.
func ByCodeOf(code interface{}) (Entry, error) {
	c, err := internal.ToInt(code)
	if err != nil {
		return Entry{}, errors.WithMessage(&UnknownPatternError{Ref: fmt.Sprint(code)}, err.Error())
	}
	return ByCode(c)
}

// ByName return the entry named name, e.g. "POST_CODE_JP". Names are case
// sensitive.
func ByName(name string) (Entry, error) {
	p, in := byName[name]
	if !in {
		return Entry{}, &UnknownPatternError{Ref: name}
	}
	return table[p], nil
}

// Lookup resolve a textual reference which is either a name or a decimal code
func Lookup(ref string) (Entry, error) {
	r, err := internal.ParseRef(ref)
	if err != nil {
		return Entry{}, errors.WithStack(&UnknownPatternError{Ref: ref})
	}
	if r.IsCode {
		return ByCode(r.Code)
	}
	return ByName(r.Name)
}

// TagOf return the tag of the entry referenced by ref, see Lookup
func TagOf(ref string) (string, error) {
	e, err := Lookup(ref)
	if err != nil {
		return "", err
	}
	return e.Tag, nil
}
