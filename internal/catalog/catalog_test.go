package catalog

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input"
)

func TestNew(t *testing.T) {
	r := New()
	assert.Equal(t, []int{2022, 2023}, r.Years())
	assert.Len(t, r.List(2022), 8)
	assert.Len(t, r.List(2023), 11)
	assert.Len(t, r.List(0), 19)

	for _, p := range r.List(0) {
		assert.NotEmpty(t, p.Title, p.String())
		assert.Equal(t, []int{1, 2}, p.Parts(), p.String())
	}
}

// Every registered day answers its demo fixture the same way through the
// registry as through its own package.
func TestDemoAnswers(t *testing.T) {
	want := map[[3]int]string{
		{2022, 1, 1}: "24000", {2022, 1, 2}: "45000",
		{2022, 2, 1}: "15", {2022, 2, 2}: "12",
		{2022, 3, 1}: "157", {2022, 3, 2}: "70",
		{2022, 4, 1}: "2", {2022, 4, 2}: "4",
		{2022, 5, 1}: "CMZ", {2022, 5, 2}: "MCD",
		{2022, 6, 1}: "7", {2022, 6, 2}: "19",
		{2022, 7, 1}: "95437", {2022, 7, 2}: "24933642",
		{2022, 8, 1}: "21", {2022, 8, 2}: "8",
		{2023, 1, 1}: "142", {2023, 1, 2}: "281",
		{2023, 2, 1}: "8", {2023, 2, 2}: "2286",
		{2023, 3, 1}: "4361", {2023, 3, 2}: "467835",
		{2023, 4, 1}: "13", {2023, 4, 2}: "30",
		{2023, 5, 1}: "35", {2023, 5, 2}: "46",
		{2023, 6, 1}: "288", {2023, 6, 2}: "71503",
		{2023, 7, 1}: "6440", {2023, 7, 2}: "5905",
		{2023, 8, 1}: "2", {2023, 8, 2}: "6",
		{2023, 9, 1}: "114", {2023, 9, 2}: "2",
		{2023, 10, 1}: "4", {2023, 10, 2}: "4",
		{2023, 11, 1}: "374", {2023, 11, 2}: "82000210",
	}
	r := New()
	for k, answer := range want {
		p, err := r.Get(k[0], k[1])
		require.NoError(t, err)
		solve, err := p.Part(k[2])
		require.NoError(t, err)

		dir := filepath.Join("..", fmt.Sprintf("y%d", k[0]), fmt.Sprintf("day%02d", k[1]), "testdata")
		s, err := input.Source{Dir: dir, Demo: true, Part: k[2]}.Read()
		require.NoError(t, err, "%v", k)

		got, err := solve(s)
		require.NoError(t, err, "%v", k)
		assert.Equal(t, answer, got, "%d day %d part %d", k[0], k[1], k[2])
	}
}
