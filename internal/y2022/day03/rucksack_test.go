package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/internal/input/inputtest"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestPriority(t *testing.T) {
	assert.Equal(t, 16, Priority('p'))
	assert.Equal(t, 38, Priority('L'))
	assert.Equal(t, 42, Priority('P'))
	assert.Equal(t, 0, Priority('1'))
}

func TestCommonHalves(t *testing.T) {
	want := []byte{'p', 'L', 'P', 'v', 't', 's'}
	for i, line := range input.Lines(inputtest.Demo(t, "testdata")) {
		half := len(line) / 2
		got, err := Common(line[:half], line[half:])
		require.NoError(t, err)
		assert.Equal(t, Priority(want[i]), got, line)
	}
}

func TestPart1Demo(t *testing.T) {
	got, err := Part1(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 157, got)
}

func TestPart2Demo(t *testing.T) {
	got, err := Part2(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 70, got)
}

func TestMalformed(t *testing.T) {
	_, err := Part1("abc\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
	_, err = Part1("abcd\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput, "no common item")
	_, err = Part2("ab\ncd\n")
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
