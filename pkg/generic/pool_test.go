package generic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_GeneratesWhenEmpty(t *testing.T) {
	calls := 0
	p := NewPool(func() *bytes.Buffer {
		calls++
		return new(bytes.Buffer)
	})

	b := p.Get()
	assert.NotNil(t, b)
	assert.Equal(t, 1, calls)
}

func TestHotPool_Prefills(t *testing.T) {
	calls := 0
	p := NewHotPool(func() []int {
		calls++
		return make([]int, 0, 8)
	}, 3)

	assert.Equal(t, 3, calls)
	assert.Equal(t, 8, cap(p.Get()))
}
