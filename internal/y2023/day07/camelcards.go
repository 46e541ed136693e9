// Package day07 solves 2023 day 7, "Camel Cards".
package day07

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Kind is the type of a hand, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Card orders, weakest first.
const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int
}

// Kind classifies h. With jokers set, every J joins the largest group.
func (h Hand) Kind(jokers bool) Kind {
	counts := make(map[rune]int, 5)
	j := 0
	for _, c := range h.Cards {
		if jokers && c == 'J' {
			j++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	for len(groups) < 2 {
		groups = append(groups, 0)
	}
	groups[0] += j

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Less orders hands by kind, then card by card.
func Less(a, b Hand, jokers bool) bool {
	if ka, kb := a.Kind(jokers), b.Kind(jokers); ka != kb {
		return ka < kb
	}
	ranks := order
	if jokers {
		ranks = jokerOrder
	}
	for i := 0; i < len(a.Cards); i++ {
		ra := strings.IndexByte(ranks, a.Cards[i])
		rb := strings.IndexByte(ranks, b.Cards[i])
		if ra != rb {
			return ra < rb
		}
	}
	return false
}

// Parse reads "32T3K 765" lines.
func Parse(s string) ([]Hand, error) {
	var hands []Hand
	for _, line := range input.Lines(s) {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 5 {
			return nil, input.Malformed("hand %q", line)
		}
		for i := 0; i < 5; i++ {
			if strings.IndexByte(order, fields[0][i]) < 0 {
				return nil, input.Malformed("card %q in %q", fields[0][i], line)
			}
		}
		bid, err := input.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		hands = append(hands, Hand{Cards: fields[0], Bid: bid})
	}
	return hands, nil
}

// Winnings ranks the hands and sums rank times bid.
func Winnings(hands []Hand, jokers bool) int {
	sorted := append([]Hand(nil), hands...)
	sort.SliceStable(sorted, func(i, j int) bool { return Less(sorted[i], sorted[j], jokers) })
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.Bid
	}
	return total
}

// Part1 plays with J as a jack.
func Part1(s string) (int, error) {
	hands, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, false), nil
}

// Part2 plays with J as a joker.
func Part2(s string) (int, error) {
	hands, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, true), nil
}
