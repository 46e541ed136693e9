package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input/inputtest"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestParse(t *testing.T) {
	stacks, moves, err := Parse(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}, stacks)
	assert.Equal(t, []Move{{1, 2, 1}, {3, 1, 3}, {2, 2, 1}, {1, 1, 2}}, moves)
}

func TestPart1Demo(t *testing.T) {
	got, err := Part1(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got)
}

func TestPart2Demo(t *testing.T) {
	got, err := Part2(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, "MCD", got)
}

func TestEmptyStackTop(t *testing.T) {
	st := Stacks{[]byte("A"), nil}
	require.NoError(t, st.Apply(Move{N: 1, From: 1, To: 2}, false))
	assert.Equal(t, " A", st.Tops())
}

func TestMalformed(t *testing.T) {
	tests := map[string]string{
		"no moves":      "[A]\n 1 \n",
		"bad move":      "[A]\n 1 \n\nmove one from 1 to 1\n",
		"missing stack": "[A]\n 1 \n\nmove 1 from 1 to 4\n",
		"too many":      "[A]\n 1 \n\nmove 2 from 1 to 1\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Part1(in)
			assert.ErrorIs(t, err, types.ErrMalformedInput)
		})
	}
}

func TestInput(t *testing.T) {
	s := inputtest.Real(t, "testdata")
	p1, err := Part1(s)
	require.NoError(t, err)
	p2, err := Part2(s)
	require.NoError(t, err)
	t.Logf("part 1: %s, part 2: %s", p1, p2)
}
