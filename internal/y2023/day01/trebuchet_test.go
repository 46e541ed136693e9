package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input/inputtest"
	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestCalibration(t *testing.T) {
	tests := []struct {
		line    string
		spelled bool
		want    int
	}{
		{"treb7uchet", false, 77},
		{"a1b2c3d4e5f", false, 15},
		{"two1nine", false, 11},
		{"two1nine", true, 29},
		{"eightwo", true, 82},
		{"zoneight234", true, 14},
		{"xtwone3four", true, 24},
	}
	for _, tt := range tests {
		got, ok := Calibration(tt.line, tt.spelled)
		require.True(t, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestPart1Demo(t *testing.T) {
	got, err := Part1(inputtest.Demo(t, "testdata"))
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestPart2Demo(t *testing.T) {
	got, err := Part2(inputtest.DemoPart(t, "testdata", 2))
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestMalformed(t *testing.T) {
	_, err := Part1("abc\n")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
	_, err = Part2("xyz\n")
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
