package engine

import (
	"fmt"
	"slices"
)

// Variant describes one game's control group. The per-variant differences
// live here as data; dispatch and binding code is shared.
type Variant struct {
	ID VariantID
	// Group is the container id the variant's buttons live under.
	Group string
	// Actions is the full vocabulary, in display order.
	Actions []Action
	// AmountActions carry a wager amount.
	AmountActions []Action
	Policy        func(State, string) []Action
	// HideDealerHole masks the dealer's first card while the round is live.
	HideDealerHole bool
	// ScoresBlackjack means hands carry Blackjack totals and flags.
	ScoresBlackjack bool
}

var Variants = map[VariantID]Variant{
	VariantBlackjack: {
		ID:    VariantBlackjack,
		Group: "black-jack-actions",
		Actions: []Action{
			ActionBet, ActionHit, ActionStand, ActionDouble,
			ActionInsurance, ActionDeclineInsurance,
		},
		AmountActions:   []Action{ActionBet, ActionInsurance},
		Policy:          EnabledActions,
		HideDealerHole:  true,
		ScoresBlackjack: true,
	},
	VariantHoldem: {
		ID:            VariantHoldem,
		Group:         "texas-holdem-actions",
		Actions:       []Action{ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise},
		AmountActions: []Action{ActionBet, ActionRaise},
		Policy:        EnabledHoldemActions,
	},
}

func LookupVariant(id VariantID) (Variant, error) {
	v, ok := Variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}
	return v, nil
}

func (v Variant) Has(a Action) bool {
	return slices.Contains(v.Actions, a)
}

func (v Variant) AmountBearing(a Action) bool {
	return slices.Contains(v.AmountActions, a)
}

// ParseAction resolves a data-action attribute against the vocabulary.
func (v Variant) ParseAction(name string) (Action, error) {
	a := Action(name)
	if !v.Has(a) {
		return "", fmt.Errorf("%w: %q for %s", ErrUnknownAction, name, v.ID)
	}
	return a, nil
}

func (v Variant) Enabled(s State, viewerID string) []Action {
	if v.Policy == nil {
		return nil
	}
	return v.Policy(s, viewerID)
}

// UpdateEvent is the server event carrying this variant's snapshots.
func (v Variant) UpdateEvent() string { return string(v.ID) + "_update" }

func (v Variant) ErrorEvent() string { return string(v.ID) + "_error" }

func (v Variant) GameOverEvent() string { return string(v.ID) + "_game_over" }
