// Package day07 solves 2022 day 7, "No Space Left On Device".
//
// The input is a terminal transcript of cd and ls commands. Replaying it
// rebuilds the directory tree, whose folder sizes answer both parts.
package day07

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Disk limits for part 2.
const (
	DiskSize   = 70000000
	NeedUnused = 30000000
	SmallLimit = 100000
)

// Folder is a directory in the replayed tree.
type Folder struct {
	Name     string
	Parent   *Folder
	Children map[string]*Folder
	Files    map[string]int

	size int // cached by Size
}

func newFolder(name string, parent *Folder) *Folder {
	return &Folder{
		Name:     name,
		Parent:   parent,
		Children: make(map[string]*Folder),
		Files:    make(map[string]int),
		size:     -1,
	}
}

// Size returns the total size of the files below f.
func (f *Folder) Size() int {
	if f.size >= 0 {
		return f.size
	}
	total := 0
	for _, n := range f.Files {
		total += n
	}
	for _, c := range f.Children {
		total += c.Size()
	}
	f.size = total
	return total
}

// Walk visits f and every folder below it.
func (f *Folder) Walk(visit func(*Folder)) {
	visit(f)
	names := make([]string, 0, len(f.Children))
	for name := range f.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f.Children[name].Walk(visit)
	}
}

func (f *Folder) child(name string) *Folder {
	c, ok := f.Children[name]
	if !ok {
		c = newFolder(name, f)
		f.Children[name] = c
	}
	return c
}

// Replay builds the tree described by a terminal transcript.
func Replay(s string) (*Folder, error) {
	root := newFolder("/", nil)
	cwd := root
	for _, line := range input.Lines(s) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch {
		case fields[0] == "$" && len(fields) >= 2 && fields[1] == "ls":
		case fields[0] == "$" && len(fields) == 3 && fields[1] == "cd":
			switch fields[2] {
			case "/":
				cwd = root
			case "..":
				if cwd.Parent == nil {
					return nil, input.Malformed("cd .. above root")
				}
				cwd = cwd.Parent
			default:
				cwd = cwd.child(fields[2])
			}
		case fields[0] == "$":
			return nil, input.Malformed("unknown command %q", line)
		case fields[0] == "dir" && len(fields) == 2:
			cwd.child(fields[1])
		case len(fields) == 2:
			n, err := input.Atoi(fields[0])
			if err != nil {
				return nil, err
			}
			cwd.Files[fields[1]] = n
		default:
			return nil, input.Malformed("listing %q", line)
		}
	}
	return root, nil
}

// Part1 sums the sizes of every folder of at most SmallLimit.
func Part1(s string) (int, error) {
	root, err := Replay(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	root.Walk(func(f *Folder) {
		if n := f.Size(); n <= SmallLimit {
			sum += n
		}
	})
	return sum, nil
}

// Part2 finds the smallest folder whose deletion leaves NeedUnused free.
func Part2(s string) (int, error) {
	root, err := Replay(s)
	if err != nil {
		return 0, err
	}
	need := NeedUnused - (DiskSize - root.Size())
	if need <= 0 {
		return 0, nil
	}
	best := -1
	root.Walk(func(f *Folder) {
		if n := f.Size(); n >= need && (best < 0 || n < best) {
			best = n
		}
	})
	return best, nil
}
