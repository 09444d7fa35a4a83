package engine

import (
	"errors"
	"slices"

	"github.com/DoyleJ11/cardroom-client/internal/cards"
)

var ErrUnknownVariant = errors.New("unknown game variant")
var ErrUnknownAction = errors.New("unknown action")

type VariantID string

const (
	VariantBlackjack VariantID = "black_jack"
	VariantHoldem    VariantID = "texas_holdem"
)

type Action string

const (
	ActionBet              Action = "bet"
	ActionHit              Action = "hit"
	ActionStand            Action = "stand"
	ActionDouble           Action = "double"
	ActionInsurance        Action = "insurance"
	ActionDeclineInsurance Action = "decline_insurance"

	ActionFold  Action = "fold"
	ActionCheck Action = "check"
	ActionCall  Action = "call"
	ActionRaise Action = "raise"
)

type Phase string

const (
	PhaseBetting         Phase = "betting"
	PhasePlayerActions   Phase = "player_actions"
	PhaseInsuranceOption Phase = "insurance_option"
	PhaseDealerTurn      Phase = "dealer_turn"
	PhaseSettlement      Phase = "settlement"

	PhasePreFlop  Phase = "pre-flop"
	PhaseFlop     Phase = "flop"
	PhaseTurn     Phase = "turn"
	PhaseRiver    Phase = "river"
	PhaseShowdown Phase = "showdown"
)

type Player struct {
	ID         string
	Name       string
	Hand       cards.Hand
	HasDoubled bool
}

// State is one server-pushed snapshot. Every push replaces it wholesale;
// nothing here is mutated by the client.
type State struct {
	Phase         Phase
	CurrentTurnID string
	Players       []Player
	Dealer        cards.Hand
	Community     cards.Hand
	Message       string
}

// EnabledActions is the Blackjack control policy: which actions the viewer
// may take in s. The result is sorted so equal inputs give equal outputs.
func EnabledActions(s State, viewerID string) []Action {
	if viewerID == "" || s.CurrentTurnID != viewerID {
		return nil
	}

	var out []Action
	switch s.Phase {
	case PhaseBetting:
		out = []Action{ActionBet}
	case PhasePlayerActions:
		out = []Action{ActionHit, ActionStand}
		if p, ok := FindPlayer(s, viewerID); ok && len(p.Hand) == 2 && !p.HasDoubled {
			out = append(out, ActionDouble)
		}
	case PhaseInsuranceOption:
		out = []Action{ActionInsurance, ActionDeclineInsurance}
	default:
		return nil
	}

	slices.Sort(out)
	return out
}

// EnabledHoldemActions is the Hold'em control policy. The server rejects
// an illegal check or call, so every betting action is offered on the
// viewer's turn during a betting street.
func EnabledHoldemActions(s State, viewerID string) []Action {
	if viewerID == "" || s.CurrentTurnID != viewerID {
		return nil
	}

	switch s.Phase {
	case PhasePreFlop, PhaseFlop, PhaseTurn, PhaseRiver:
		out := []Action{ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise}
		slices.Sort(out)
		return out
	default:
		return nil
	}
}

func FindPlayer(s State, id string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
