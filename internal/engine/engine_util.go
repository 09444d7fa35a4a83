package engine

func NewEmptyState() State {
	return State{
		Players:   []Player{},
		Dealer:    nil,
		Community: nil,
	}
}

// DealerRevealed reports whether the dealer's hole card is face up.
func DealerRevealed(p Phase) bool {
	return p == PhaseDealerTurn || p == PhaseSettlement
}
