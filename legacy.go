package xcatalog

import "github.com/ccbhj/xcatalog/internal/legacy"

// Change describes how the entry stored under Code differs from the first,
// anchored revision of the table. Kind is one of "renamed", "unanchored",
// "tag changed" or "removed".
type Change struct {
	Code int
	Kind string
	Old  string
	New  string
}

// LegacyChanges list every difference between the anchored revision of the
// table and the current one, in code order. Codes persisted against the old
// table still resolve, but an unanchored tag matches a substring where the old
// one required the whole input.
func LegacyChanges() []Change {
	diffs := legacy.Diff(func(code int) (string, string, bool) {
		e, err := ByCode(code)
		if err != nil {
			return "", "", false
		}
		return e.Name, e.Tag, true
	})
	changes := make([]Change, len(diffs))
	for i, d := range diffs {
		changes[i] = Change{Code: d.Code, Kind: d.Kind.String(), Old: d.Old, New: d.New}
	}
	return changes
}
