package cards

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(ranks ...Rank) Hand {
	h := make(Hand, len(ranks))
	for i, r := range ranks {
		h[i] = Card{Rank: r, Suit: "S"}
	}
	return h
}

func TestHandValue(t *testing.T) {
	cases := []struct {
		name    string
		hand    Hand
		want    int
		busted  bool
		natural bool
		soft    bool
	}{
		{name: "empty", hand: nil, want: 0},
		{name: "two aces promote only one", hand: hand(Ace, Ace), want: 12, soft: true},
		{name: "ace king is a natural", hand: hand(Ace, King), want: 21, natural: true, soft: true},
		{name: "three nines bust", hand: hand(Nine, Nine, Nine), want: 27, busted: true},
		{name: "ace stays low when promotion would bust", hand: hand(Seven, Seven, Ace), want: 15},
		{name: "three card 21 is not natural", hand: hand(Seven, Seven, Seven), want: 21},
		{name: "soft 21 with three cards", hand: hand(Ace, Five, Five), want: 21, soft: true},
		{name: "face cards count ten", hand: hand(Jack, Queen), want: 20},
		{name: "ten counts ten", hand: hand(Ten, Nine), want: 19},
		{name: "many aces", hand: hand(Ace, Ace, Ace, Ace), want: 14, soft: true},
		{name: "all ones overflow", hand: hand(King, Queen, Ace, Ace), want: 22, busted: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HandValue(tc.hand))
			assert.Equal(t, tc.busted, IsBusted(tc.hand))
			assert.Equal(t, tc.natural, IsNatural(tc.hand))
			assert.Equal(t, tc.soft, IsSoft(tc.hand))
		})
	}
}

func TestParseRank(t *testing.T) {
	cases := []struct {
		in      string
		want    Rank
		wantErr bool
	}{
		{in: "2", want: Two},
		{in: "10", want: Ten},
		{in: "T", want: Ten},
		{in: "q", want: Queen},
		{in: "A", want: Ace},
		{in: "1", wantErr: true},
		{in: "11", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRank(tc.in)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrBadRank), "want ErrBadRank, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCard_UnmarshalJSON(t *testing.T) {
	var h Hand
	require.NoError(t, json.Unmarshal([]byte(`[{"rank":"T","suit":"H"},{"rank":"A","suit":"D"}]`), &h))
	assert.Equal(t, Hand{{Rank: Ten, Suit: "H"}, {Rank: Ace, Suit: "D"}}, h)
	assert.True(t, IsNatural(h))

	err := json.Unmarshal([]byte(`[{"rank":"Z","suit":"H"}]`), &h)
	assert.ErrorIs(t, err, ErrBadRank)
}
