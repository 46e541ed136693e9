package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input/inputtest"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestParse(t *testing.T) {
	sc, err := Parse(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	require.Len(t, sc.Numbers, 10)
	assert.Equal(t, Number{Value: 467, Row: 0, Col: 0, End: 3}, sc.Numbers[0])
	assert.Equal(t, Number{Value: 114, Row: 0, Col: 5, End: 8}, sc.Numbers[1])

	var parts []int
	for _, n := range sc.PartNumbers() {
		parts = append(parts, n.Value)
	}
	assert.NotContains(t, parts, 114)
	assert.NotContains(t, parts, 58)
	assert.Len(t, parts, 8)

	assert.Equal(t, []int{16345, 451490}, sc.GearRatios())
}

func TestPart1Demo(t *testing.T) {
	got, err := Part1(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 4361, got)
}

func TestPart2Demo(t *testing.T) {
	got, err := Part2(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 467835, got)
}

func TestNumberAtRowEnd(t *testing.T) {
	got, err := Part1("..12\n...#\n")
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestMalformed(t *testing.T) {
	_, err := Part1("...\n..\n")
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
