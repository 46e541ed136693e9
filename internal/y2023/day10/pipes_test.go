package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/internal/input/inputtest"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestTrace(t *testing.T) {
	l, err := Trace(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, grid.Point{R: 1, C: 1}, l.Start)
	assert.Equal(t, byte('F'), l.Pipe)
	assert.Equal(t, 8, l.Len)
	assert.Len(t, l.Tiles, 8)
	assert.Equal(t, 1, l.Enclosed())

	l, err = Trace(inputtest.File(t, "testdata", "demo-input-complex.txt"))
	require.NoError(t, err)
	assert.Equal(t, byte('F'), l.Pipe)
	assert.Equal(t, 16, l.Len)
}

func TestPart1Demo(t *testing.T) {
	tests := []struct {
		file string
		want int
	}{
		{"demo-input.txt", 4},
		{"demo-input-complex.txt", 8},
	}
	for _, tt := range tests {
		got, err := Part1(inputtest.File(t, "testdata", tt.file))
		require.NoError(t, err, tt.file)
		assert.Equal(t, tt.want, got, tt.file)
	}
}

func TestPart2Demo(t *testing.T) {
	tests := []struct {
		file string
		want int
	}{
		{"demo-input-part-2.txt", 4},
		{"demo-input-part-2-large.txt", 8},
		{"demo-input-part-2-junk.txt", 10},
	}
	for _, tt := range tests {
		got, err := Part2(inputtest.File(t, "testdata", tt.file))
		require.NoError(t, err, tt.file)
		assert.Equal(t, tt.want, got, tt.file)
	}
	got, err := Part2(inputtest.DemoPart(t, "testdata", 2))
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{
		"...\n.-.\n...\n",
		"...\n.S.\n...\n",
		".S-\n.|.\n",
		"S-7\n|.\n",
	} {
		_, err := Part1(in)
		assert.ErrorIs(t, err, types.ErrMalformedInput, "input %q", in)
	}
}

func TestInput(t *testing.T) {
	s := inputtest.Real(t, "testdata")
	p1, err := Part1(s)
	require.NoError(t, err)
	p2, err := Part2(s)
	require.NoError(t, err)
	t.Logf("part 1: %d, part 2: %d", p1, p2)
}
