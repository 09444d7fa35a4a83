package cards

import (
	"errors"
	"fmt"
	"strings"

	poker "github.com/paulhankin/poker"
)

var ErrUnsupportedHandSize = errors.New("poker hands are described from 5 to 7 cards")

// DescribePoker names the best Hold'em hand in hole+board: five cards on the
// flop, six on the turn, seven at the river.
func DescribePoker(cs []Card) (string, error) {
	if len(cs) < 5 || len(cs) > 7 {
		return "", fmt.Errorf("%w: got %d", ErrUnsupportedHandSize, len(cs))
	}
	pcs := make([]poker.Card, len(cs))
	for i, c := range cs {
		pc, err := toPH(c)
		if err != nil {
			return "", err
		}
		pcs[i] = pc
	}
	if len(pcs) == 6 {
		best := bestFive(pcs)
		return poker.Describe(best[:])
	}
	return poker.Describe(pcs)
}

// bestFive picks the strongest five-card subset. Higher Eval5 scores are
// stronger hands, as in poker.Eval7.
func bestFive(pcs []poker.Card) [5]poker.Card {
	n := len(pcs)
	var best, five [5]poker.Card
	bestScore := int16(-1)
	choose := [5]int{}
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			for i := 0; i < 5; i++ {
				five[i] = pcs[choose[i]]
			}
			if score := poker.Eval5(&five); score > bestScore {
				bestScore = score
				best = five
			}
			return
		}
		for i := start; i <= n-(5-k); i++ {
			choose[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
	return best
}

func toPH(c Card) (poker.Card, error) {
	var zero poker.Card
	var s poker.Suit
	switch strings.ToUpper(c.Suit) {
	case "C":
		s = poker.Club
	case "D":
		s = poker.Diamond
	case "H":
		s = poker.Heart
	case "S":
		s = poker.Spade
	default:
		return zero, fmt.Errorf("unknown suit %q", c.Suit)
	}

	// Library ranks run 1..13 with the ace low.
	var r poker.Rank
	switch c.Rank {
	case Ace:
		r = poker.Rank(1)
	case Jack:
		r = poker.Rank(11)
	case Queen:
		r = poker.Rank(12)
	case King:
		r = poker.Rank(13)
	case Ten:
		r = poker.Rank(10)
	default:
		p := c.Rank.points()
		if p < 2 {
			return zero, fmt.Errorf("%w: %q", ErrBadRank, c.Rank)
		}
		r = poker.Rank(p)
	}
	return poker.MakeCard(s, r)
}
