package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/DoyleJ11/cardroom-client/internal/engine"
	"github.com/DoyleJ11/cardroom-client/internal/table"
)

// Render draws one view: a box with the room and phase, the hands, and
// the buttons currently shown.
func Render(w io.Writer, v table.View) error {
	scored := engine.Variants[v.Variant].ScoresBlackjack
	data := pterm.TableData{{"Player", "Hand", "Value"}}
	if v.Dealer != nil {
		data = append(data, []string{"Dealer", v.Dealer.Text, value(*v.Dealer, scored)})
	}
	for _, h := range v.Hands {
		name := h.Name
		if name == "" {
			name = h.PlayerID
		}
		if h.PlayerID == v.ViewerID {
			name = pterm.LightCyan(name + " (you)")
		}
		data = append(data, []string{name, h.Text, value(h, scored)})
	}
	hands, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	var b strings.Builder
	if v.Board != "" {
		b.WriteString("Board: " + v.Board + "\n")
	}
	b.WriteString(hands)
	b.WriteString("\n")
	b.WriteString(controls(v))
	if v.Message != "" {
		b.WriteString("\n" + pterm.LightYellow(v.Message))
	}

	room := v.RoomID
	if room == "" {
		room = "no room"
	}
	title := fmt.Sprintf("|%s %s %s|", v.Variant, room, v.Phase)
	box := pterm.DefaultBox.WithTitle(title).WithTitleTopCenter().WithHorizontalPadding(2)
	_, err = fmt.Fprintln(w, box.Sprint(b.String()))
	return err
}

// value fills the Value column. Poker hands only carry a description.
func value(h table.HandView, scored bool) string {
	if h.Hidden {
		return "?"
	}
	if !scored {
		return h.Description
	}
	s := strconv.Itoa(h.Value)
	switch {
	case h.Natural:
		s += " blackjack"
	case h.Busted:
		s += " bust"
	case h.Soft:
		s += " soft"
	}
	if h.Description != "" {
		s += " " + h.Description
	}
	return s
}

func controls(v table.View) string {
	if len(v.Controls) == 0 {
		if v.MyTurn {
			return "Waiting for the dealer"
		}
		return "Waiting for other players"
	}
	names := make([]string, len(v.Controls))
	for i, a := range v.Controls {
		names[i] = "[" + string(a) + "]"
	}
	return pterm.LightGreen("Your move: ") + strings.Join(names, " ")
}

// Run redraws on every view until views closes or ctx ends.
func Run(ctx context.Context, w io.Writer, views <-chan table.View) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-views:
			if !ok {
				return
			}
			if err := Render(w, v); err != nil {
				fmt.Fprintln(w, pterm.Error.Sprint(err))
			}
		}
	}
}

// ActionHelp lists the commands the prompt understands for a variant.
func ActionHelp(v engine.Variant) string {
	parts := make([]string, 0, len(v.Actions)+2)
	for _, a := range v.Actions {
		if v.AmountBearing(a) {
			parts = append(parts, string(a)+" <amount>")
		} else {
			parts = append(parts, string(a))
		}
	}
	parts = append(parts, "start", "leave")
	return strings.Join(parts, ", ")
}
