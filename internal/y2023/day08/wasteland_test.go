package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input/inputtest"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestParse(t *testing.T) {
	n, err := Parse(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, "RL", n.Steps)
	assert.Len(t, n.Nodes, 7)
	assert.Equal(t, [2]string{"BBB", "CCC"}, n.Nodes["AAA"])
}

func TestPart1Demo(t *testing.T) {
	got, err := Part1(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = Part1(inputtest.File(t, "testdata", "demo-input-repeat.txt"))
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestPart2Demo(t *testing.T) {
	got, err := Part2(inputtest.DemoPart(t, "testdata", 2))
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{
		"LR\n",
		"LX\n\nAAA = (BBB, CCC)\n",
		"LR\n\nAAA (BBB, CCC)\n",
		"LR\n\nAAA = BBB, CCC\n",
		"L\n\nAAA = (BBB, BBB)\n",
		"L\n\nAAA = (AAA, AAA)\n",
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
