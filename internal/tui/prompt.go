package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/DoyleJ11/cardroom-client/internal/table"
	"github.com/DoyleJ11/cardroom-client/internal/view"
)

// Table is what the prompt drives.
type Table interface {
	Do(ctx context.Context, action, amount string) error
	Inbox() chan<- table.Msg
}

// Alerter prints blocking alerts as pterm errors.
type Alerter struct {
	W io.Writer
}

func (a Alerter) Alert(msg string) {
	fmt.Fprintln(a.W, pterm.Error.Sprint(msg))
}

// Prompt reads "<action> [amount]" lines from r, one click per line. The
// words "start" and "leave" ask the server to start the hand or leave the
// room. It returns when r is exhausted or ctx ends.
func Prompt(ctx context.Context, r io.Reader, w io.Writer, tb Table) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		var msg table.Msg
		switch fields[0] {
		case "start":
			msg = table.StartGame{}
		case "leave":
			msg = table.LeaveRoom{}
		}
		if msg != nil {
			select {
			case tb.Inbox() <- msg:
			case <-ctx.Done():
				return nil
			}
			continue
		}

		amount := ""
		if len(fields) > 1 {
			amount = fields[1]
		}
		err := tb.Do(ctx, fields[0], amount)
		switch {
		case err == nil, errors.Is(err, view.ErrInvalidAmount):
			// the alerter already spoke
		case errors.Is(err, table.ErrClosed):
			return nil
		default:
			fmt.Fprintln(w, pterm.Warning.Sprint(err))
		}
	}
	return sc.Err()
}
