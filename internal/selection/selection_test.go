package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Len())

	assert.True(t, s.Add(4))
	assert.True(t, s.Add(1))
	assert.False(t, s.Add(4))

	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 4}, s.Sorted())
	assert.Equal(t, []int{0, 2, 3, 5}, s.Complement(6))
}
