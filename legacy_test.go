package xcatalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyChanges(t *testing.T) {
	changes := LegacyChanges()

	kinds := make(map[string][]int)
	for _, c := range changes {
		kinds[c.Kind] = append(kinds[c.Kind], c.Code)
	}
	assert.Equal(t, []int{3, 13}, kinds["renamed"])
	assert.Equal(t, []int{11, 16}, kinds["tag changed"])
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 16, 17, 18, 19, 20}, kinds["unanchored"])
	assert.Empty(t, kinds["removed"])
	assert.Len(t, changes, 23)

	assert.Contains(t, changes, Change{Code: 3, Kind: "renamed", Old: "USER_NAME", New: "USER_ID"})
	assert.Contains(t, changes, Change{Code: 13, Kind: "renamed", Old: "XML", New: "XML_FILE"})
	assert.Contains(t, changes, Change{Code: 16, Kind: "tag changed", Old: `[0-9]*`, New: `[0-9]+`})
}
