package types

import (
	"github.com/DoyleJ11/cardroom-client/internal/cards"
	"github.com/DoyleJ11/cardroom-client/internal/engine"
)

// StateSnapshot is the body of a <game_type>_update event. The *_sid and
// has_doubled_down spellings are what older room servers send.
type StateSnapshot struct {
	GamePhase      string           `json:"game_phase"`
	CurrentTurnID  string           `json:"current_turn_id,omitempty"`
	CurrentTurnSID string           `json:"current_turn_sid,omitempty"`
	Players        []PlayerSnapshot `json:"players"`
	Dealer         *DealerSnapshot  `json:"dealer,omitempty"`
	CommunityCards cards.Hand       `json:"community_cards,omitempty"`
	Message        string           `json:"message,omitempty"`
}

type PlayerSnapshot struct {
	ID             string     `json:"id,omitempty"`
	SID            string     `json:"sid,omitempty"`
	Name           string     `json:"name,omitempty"`
	Hand           cards.Hand `json:"hand"`
	HasDoubled     bool       `json:"has_doubled,omitempty"`
	HasDoubledDown bool       `json:"has_doubled_down,omitempty"`
}

type DealerSnapshot struct {
	Hand cards.Hand `json:"hand"`
}

func (s StateSnapshot) ToState() engine.State {
	st := engine.State{
		Phase:         engine.Phase(s.GamePhase),
		CurrentTurnID: firstNonEmpty(s.CurrentTurnID, s.CurrentTurnSID),
		Players:       make([]engine.Player, 0, len(s.Players)),
		Community:     s.CommunityCards,
		Message:       s.Message,
	}
	for _, p := range s.Players {
		st.Players = append(st.Players, engine.Player{
			ID:         firstNonEmpty(p.ID, p.SID),
			Name:       p.Name,
			Hand:       p.Hand,
			HasDoubled: p.HasDoubled || p.HasDoubledDown,
		})
	}
	if s.Dealer != nil {
		st.Dealer = s.Dealer.Hand
	}
	return st
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
