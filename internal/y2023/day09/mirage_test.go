package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input/inputtest"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		xs         []int
		next, prev int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{0, 0, 0}, 0, 0},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		next, prev := Extrapolate(tt.xs)
		assert.Equal(t, tt.next, next, "%v", tt.xs)
		assert.Equal(t, tt.prev, prev, "%v", tt.xs)
	}
}

func TestDifferences(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, Differences([]int{1, 3, 6, 10}))
	assert.Nil(t, Differences([]int{1}))
}

func TestPart1Demo(t *testing.T) {
	got, err := Part1(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 114, got)
}

func TestPart2Demo(t *testing.T) {
	got, err := Part2(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMalformed(t *testing.T) {
	_, err := Part1("1 2 x\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
}

func TestInput(t *testing.T) {
	s := inputtest.Real(t, "testdata")
	p1, err := Part1(s)
	require.NoError(t, err)
	p2, err := Part2(s)
	require.NoError(t, err)
	t.Logf("part 1: %d, part 2: %d", p1, p2)
}
