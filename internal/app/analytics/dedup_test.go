package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupCounter(t *testing.T) {
	c := NewDedupCounter()

	assert.True(t, c.Add("PT", "a1"))
	assert.False(t, c.Add("PT", "a1"))
	assert.True(t, c.Add("PT", "a2"))
	assert.True(t, c.Add("ES", "a1"))

	assert.Equal(t, 2, c.Count("PT"))
	assert.Equal(t, 1, c.Count("ES"))
	assert.Equal(t, 0, c.Count("FR"))
	assert.Equal(t, []string{"PT", "ES"}, c.Keys())
	assert.Equal(t, 2, c.Len())
}
