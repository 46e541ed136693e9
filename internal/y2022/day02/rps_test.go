package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input/inputtest"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestScore(t *testing.T) {
	tests := []struct {
		me, opp Shape
		want    int
	}{
		{Paper, Rock, 8},
		{Rock, Paper, 1},
		{Scissors, Scissors, 6},
		{Rock, Scissors, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.me.Score(tt.opp), "%v vs %v", tt.me, tt.opp)
	}
}

func TestRespond(t *testing.T) {
	assert.Equal(t, Rock, Respond(Rock, 'Y'))
	assert.Equal(t, Rock, Respond(Paper, 'X'))
	assert.Equal(t, Rock, Respond(Scissors, 'Z'))
}

func TestPart1Demo(t *testing.T) {
	got, err := Part1(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestPart2Demo(t *testing.T) {
	got, err := Part2(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"A\n", "D Y\n", "A Q\n", "AA Y\n"} {
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
