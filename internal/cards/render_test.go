package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHandText(t *testing.T) {
	h := Hand{{Rank: Ace, Suit: "H"}, {Rank: Ten, Suit: "S"}, {Rank: Four, Suit: "D"}}

	cases := []struct {
		name      string
		hand      Hand
		hideFirst bool
		want      string
	}{
		{name: "empty", hand: nil, want: NoCards},
		{name: "empty hidden", hand: Hand{}, hideFirst: true, want: NoCards},
		{name: "all shown", hand: h, want: "AH 10S 4D"},
		{name: "first hidden", hand: h, hideFirst: true, want: "? + 10S 4D"},
		{name: "single hidden", hand: h[:1], hideFirst: true, want: "?"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderHandText(tc.hand, tc.hideFirst))
		})
	}
}

func TestDescribePoker(t *testing.T) {
	royal := []Card{
		{Rank: Ace, Suit: "S"},
		{Rank: King, Suit: "S"},
		{Rank: Queen, Suit: "S"},
		{Rank: Jack, Suit: "S"},
		{Rank: Ten, Suit: "S"},
	}
	desc, err := DescribePoker(royal)
	require.NoError(t, err)
	assert.NotEmpty(t, desc)

	seven := append(append([]Card{}, royal...), Card{Rank: Two, Suit: "H"}, Card{Rank: Three, Suit: "C"})
	desc, err = DescribePoker(seven)
	require.NoError(t, err)
	assert.NotEmpty(t, desc)

	// Turn: two hole cards and four on the board.
	six := []Card{
		{Rank: Ace, Suit: "S"}, {Rank: Ace, Suit: "H"},
		{Rank: Nine, Suit: "C"}, {Rank: Seven, Suit: "D"}, {Rank: Two, Suit: "S"}, {Rank: King, Suit: "H"},
	}
	desc, err = DescribePoker(six)
	require.NoError(t, err)
	want, err := DescribePoker([]Card{six[0], six[1], six[5], six[2], six[3]})
	require.NoError(t, err)
	assert.Equal(t, want, desc)
	assert.Equal(t, "AA-K-9-7", desc)

	_, err = DescribePoker(royal[:2])
	assert.ErrorIs(t, err, ErrUnsupportedHandSize)

	bad := append([]Card{}, royal...)
	bad[0].Suit = "X"
	_, err = DescribePoker(bad)
	assert.Error(t, err)
}
