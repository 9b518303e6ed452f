package justify

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSpace(t *testing.T) {
	t.Parallel()
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xa0, 0x1c, 0x1d, 0x1e, 0x1f, 0x2028, 0x3000} {
		assert.True(t, isSpace(r), "%U", r)
	}
	for _, r := range []rune{'a', '-', 0x1b, 0x200b} {
		assert.False(t, isSpace(r), "%U", r)
	}
}

func TestCheckWidth(t *testing.T) {
	t.Parallel()
	require.NoError(t, checkWidth(1))
	require.ErrorIs(t, checkWidth(0), ErrInvalidWidth)
	require.ErrorIs(t, checkWidth(-7), ErrInvalidWidth)
}

func TestNewOptionsDefault(t *testing.T) {
	t.Parallel()
	o := newOptions(nil)
	assert.Equal(t, 2, o.measure("你好"))

	o = newOptions([]Option{WithMeasure(DisplayWidth)})
	assert.Equal(t, 4, o.measure("你好"))
}

func TestChanToIterStops(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range chanToIter(ch) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{3}, slices.Collect(chanToIter(ch)))
}
