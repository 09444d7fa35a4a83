package cards

const blackjack = 21

// HandValue scores a Blackjack hand. Aces start at 1 and are promoted to 11
// one at a time while the total stays at or under 21. The result may exceed
// 21 when even all-ones overflows.
func HandValue(h Hand) int {
	total, _ := score(h)
	return total
}

func score(h Hand) (total int, promoted int) {
	if len(h) == 0 {
		return 0, 0
	}

	aces := 0
	for _, c := range h {
		if c.Rank == Ace {
			aces++
		}
		total += c.Rank.points()
	}

	for aces > 0 && total+10 <= blackjack {
		total += 10
		aces--
		promoted++
	}
	return total, promoted
}

func IsBusted(h Hand) bool {
	return HandValue(h) > blackjack
}

// IsNatural reports a two-card 21. A 21 reached with three or more cards
// is not a natural.
func IsNatural(h Hand) bool {
	return len(h) == 2 && HandValue(h) == blackjack
}

// IsSoft reports whether an ace is currently counted as 11.
func IsSoft(h Hand) bool {
	_, promoted := score(h)
	return promoted > 0
}
