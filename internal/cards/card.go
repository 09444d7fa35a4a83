package cards

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrBadRank = errors.New("unknown card rank")

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Card is dealt by the server and never mutated by the client.
// Suit is decorative here; the server sends "H", "D", "C" or "S".
type Card struct {
	Rank Rank   `json:"rank"`
	Suit string `json:"suit"`
}

type Hand []Card

// ParseRank normalises a rank as the server sends it. "T" is the dealer's
// spelling of ten.
func ParseRank(s string) (Rank, error) {
	switch r := strings.ToUpper(strings.TrimSpace(s)); r {
	case "2", "3", "4", "5", "6", "7", "8", "9", "10":
		return Rank(r), nil
	case "T":
		return Ten, nil
	case "J", "Q", "K", "A":
		return Rank(r), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadRank, s)
	}
}

func (c Card) String() string {
	return string(c.Rank) + c.Suit
}

// points is the Blackjack value of a single card, aces counted as 1.
func (r Rank) points() int {
	switch r {
	case Ace:
		return 1
	case Jack, Queen, King, Ten:
		return 10
	default:
		// Validated by ParseRank, so a single digit 2..9.
		if len(r) == 1 && r[0] >= '2' && r[0] <= '9' {
			return int(r[0] - '0')
		}
		return 0
	}
}

func (c *Card) UnmarshalJSON(b []byte) error {
	var raw struct {
		Rank string `json:"rank"`
		Suit string `json:"suit"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r, err := ParseRank(raw.Rank)
	if err != nil {
		return err
	}
	c.Rank = r
	c.Suit = raw.Suit
	return nil
}
