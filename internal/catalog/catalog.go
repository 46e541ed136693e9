// Package catalog lists every solved day.
package catalog

import (
	"github.com/mesh-intelligence/advent/internal/puzzle"
	y22d01 "github.com/mesh-intelligence/advent/internal/y2022/day01"
	y22d02 "github.com/mesh-intelligence/advent/internal/y2022/day02"
	y22d03 "github.com/mesh-intelligence/advent/internal/y2022/day03"
	y22d04 "github.com/mesh-intelligence/advent/internal/y2022/day04"
	y22d05 "github.com/mesh-intelligence/advent/internal/y2022/day05"
	y22d06 "github.com/mesh-intelligence/advent/internal/y2022/day06"
	y22d07 "github.com/mesh-intelligence/advent/internal/y2022/day07"
	y22d08 "github.com/mesh-intelligence/advent/internal/y2022/day08"
	y23d01 "github.com/mesh-intelligence/advent/internal/y2023/day01"
	y23d02 "github.com/mesh-intelligence/advent/internal/y2023/day02"
	y23d03 "github.com/mesh-intelligence/advent/internal/y2023/day03"
	y23d04 "github.com/mesh-intelligence/advent/internal/y2023/day04"
	y23d05 "github.com/mesh-intelligence/advent/internal/y2023/day05"
	y23d06 "github.com/mesh-intelligence/advent/internal/y2023/day06"
	y23d07 "github.com/mesh-intelligence/advent/internal/y2023/day07"
	y23d08 "github.com/mesh-intelligence/advent/internal/y2023/day08"
	y23d09 "github.com/mesh-intelligence/advent/internal/y2023/day09"
	y23d10 "github.com/mesh-intelligence/advent/internal/y2023/day10"
	y23d11 "github.com/mesh-intelligence/advent/internal/y2023/day11"
)

var days = []puzzle.Puzzle{
	{Year: 2022, Day: 1, Title: "Calorie Counting", Part1: puzzle.Int(y22d01.Part1), Part2: puzzle.Int(y22d01.Part2)},
	{Year: 2022, Day: 2, Title: "Rock Paper Scissors", Part1: puzzle.Int(y22d02.Part1), Part2: puzzle.Int(y22d02.Part2)},
	{Year: 2022, Day: 3, Title: "Rucksack Reorganization", Part1: puzzle.Int(y22d03.Part1), Part2: puzzle.Int(y22d03.Part2)},
	{Year: 2022, Day: 4, Title: "Camp Cleanup", Part1: puzzle.Int(y22d04.Part1), Part2: puzzle.Int(y22d04.Part2)},
	{Year: 2022, Day: 5, Title: "Supply Stacks", Part1: puzzle.Text(y22d05.Part1), Part2: puzzle.Text(y22d05.Part2)},
	{Year: 2022, Day: 6, Title: "Tuning Trouble", Part1: puzzle.Int(y22d06.Part1), Part2: puzzle.Int(y22d06.Part2)},
	{Year: 2022, Day: 7, Title: "No Space Left On Device", Part1: puzzle.Int(y22d07.Part1), Part2: puzzle.Int(y22d07.Part2)},
	{Year: 2022, Day: 8, Title: "Treetop Tree House", Part1: puzzle.Int(y22d08.Part1), Part2: puzzle.Int(y22d08.Part2)},

	{Year: 2023, Day: 1, Title: "Trebuchet?!", Part1: puzzle.Int(y23d01.Part1), Part2: puzzle.Int(y23d01.Part2)},
	{Year: 2023, Day: 2, Title: "Cube Conundrum", Part1: puzzle.Int(y23d02.Part1), Part2: puzzle.Int(y23d02.Part2)},
	{Year: 2023, Day: 3, Title: "Gear Ratios", Part1: puzzle.Int(y23d03.Part1), Part2: puzzle.Int(y23d03.Part2)},
	{Year: 2023, Day: 4, Title: "Scratchcards", Part1: puzzle.Int(y23d04.Part1), Part2: puzzle.Int(y23d04.Part2)},
	{Year: 2023, Day: 5, Title: "If You Give A Seed A Fertilizer", Part1: puzzle.Int(y23d05.Part1), Part2: puzzle.Int(y23d05.Part2)},
	{Year: 2023, Day: 6, Title: "Wait For It", Part1: puzzle.Int(y23d06.Part1), Part2: puzzle.Int(y23d06.Part2)},
	{Year: 2023, Day: 7, Title: "Camel Cards", Part1: puzzle.Int(y23d07.Part1), Part2: puzzle.Int(y23d07.Part2)},
	{Year: 2023, Day: 8, Title: "Haunted Wasteland", Part1: puzzle.Int(y23d08.Part1), Part2: puzzle.Int(y23d08.Part2)},
	{Year: 2023, Day: 9, Title: "Mirage Maintenance", Part1: puzzle.Int(y23d09.Part1), Part2: puzzle.Int(y23d09.Part2)},
	{Year: 2023, Day: 10, Title: "Pipe Maze", Part1: puzzle.Int(y23d10.Part1), Part2: puzzle.Int(y23d10.Part2)},
	{Year: 2023, Day: 11, Title: "Cosmic Expansion", Part1: puzzle.Int(y23d11.Part1), Part2: puzzle.Int(y23d11.Part2)},
}

// New returns a registry holding every day of every season.
func New() *puzzle.Registry {
	r := puzzle.NewRegistry()
	r.MustRegister(days...)
	return r
}
