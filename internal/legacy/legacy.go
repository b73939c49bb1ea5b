// Package legacy holds the first published revision of the pattern table.
// Its tags are anchored with ^...$ and two entries carry other names. It is
// reference data for migrating stored codes and is never used for lookups.
package legacy

import "strings"

type Entry struct {
	Code int
	Name string
	Tag  string
}

var table = []Entry{
	{0, "EMAIL_ADDRESS", `^\w+([-+.]\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*$`},
	{1, "DOMAIN_NAME", `^[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]\.[a-zA-Z]{2,}$`},
	{2, "WEB_URL", `^(http|https)://([\w-]+\.)+[\w-]+(/[\w-./?%&=]*)?$`},
	{3, "USER_NAME", `^[a-zA-Z0-9_\-.]`},
	{4, "FIXED_LINE_PHONE_JP", `^0\d\d{4}\d{4}$`},
	{5, "FIXED_LINE_PHONE_WITH_HYPHEN_JP", `^0\d-\d{4}-\d{4}$`},
	{6, "CELL_PHONE_JP", `^(070|080|090)\d{4}\d{4}$`},
	{7, "CELL_PHONE_WITH_HYPHEN_JP", `^(070|080|090)-\d{4}-\d{4}$`},
	{8, "PASSWORD", `^(?=.*\d)(?=.*[a-z])(?=.*[A-Z]).`},
	{9, "DATE", `^\d{4}\d{1,2}\d{1,2}$`},
	{10, "DATE_WITH_HYPHEN", `^\d{4}-\d{1,2}-\d{1,2}$`},
	{11, "DATE_WITH_SLASH", `^\d{4}\\d{1,2}\\d{1,2}$`},
	{12, "POST_CODE_JP", `^\d{3}-\d{4}$`},
	{13, "XML", `^([a-zA-Z]+-?)+[a-zA-Z0-9]+\.[x|X][m|M][l|L]$`},
	{14, "IP_ADDRESS", `(([1-9]?[0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])\.){3}([1-9]?[0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])`},
	{15, "IP_ADDRESS_WITH_PORT", `(([1-9]?[0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])\.){3}([1-9]?[0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5]):([1-9][0-9]{3}|[1-9][0-9]{2}|[1-9][0-9]{1})`},
	{16, "NUMERIC", `^[0-9]*$`},
	{17, "ALPHANUMERIC_CHARACTER", `^[A-Za-z0-9]+$`},
	{18, "ALPHABET", `^[A-Za-z]+$`},
	{19, "ALPHABET_UPPER_CASE", `^[A-Z]+$`},
	{20, "ALPHABET_LOWER_CASE", `^[a-z]+$`},
}

// All return the legacy entries in code order
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Kind of a difference between a legacy entry and its current counterpart
type Kind int

const (
	Renamed Kind = iota
	Unanchored
	TagChanged
	Removed
)

func (k Kind) String() string {
	switch k {
	case Renamed:
		return "renamed"
	case Unanchored:
		return "unanchored"
	case TagChanged:
		return "tag changed"
	case Removed:
		return "removed"
	}
	return "unknown"
}

type Difference struct {
	Code int
	Kind Kind
	Old  string
	New  string
}

// Lookup resolve a code against the current catalog
type Lookup func(code int) (name, tag string, ok bool)

// Diff compare every legacy entry with the entry of the same code returned by
// current. A code may yield several differences, e.g. a rename and an
// anchoring change.
func Diff(current Lookup) []Difference {
	var diffs []Difference
	for _, old := range table {
		name, tag, ok := current(old.Code)
		if !ok {
			diffs = append(diffs, Difference{Code: old.Code, Kind: Removed, Old: old.Name})
			continue
		}
		if name != old.Name {
			diffs = append(diffs, Difference{Code: old.Code, Kind: Renamed, Old: old.Name, New: name})
		}
		stripped := Unanchor(old.Tag)
		if stripped != old.Tag {
			diffs = append(diffs, Difference{Code: old.Code, Kind: Unanchored, Old: old.Tag, New: stripped})
		}
		if stripped != tag {
			diffs = append(diffs, Difference{Code: old.Code, Kind: TagChanged, Old: stripped, New: tag})
		}
	}
	return diffs
}

// Unanchor drop a leading ^ and a trailing unescaped $ from tag
func Unanchor(tag string) string {
	tag = strings.TrimPrefix(tag, "^")
	if strings.HasSuffix(tag, "$") && !strings.HasSuffix(tag, `\$`) {
		tag = tag[:len(tag)-1]
	}
	return tag
}
