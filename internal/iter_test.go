package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := slices.All([]string{"a", "b"})
	second := slices.All([]string{"c"})

	var keys []int
	var vals []string
	for key, val := range IterSeq2Concat(first, second) {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, vals)

	// Early break stops the chain.
	count := 0
	for range IterSeq2Concat(first, second) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)

	assert.Empty(maps.Collect(IterSeq2Concat[string, string]()))
}
