package view

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/DoyleJ11/cardroom-client/internal/dispatch"
	"github.com/DoyleJ11/cardroom-client/internal/engine"
)

var ErrInvalidAmount = errors.New("invalid amount")

const InvalidAmountAlert = "please enter a valid amount"

// Alerter surfaces a blocking message to the user.
type Alerter interface {
	Alert(msg string)
}

type AlertFunc func(msg string)

func (f AlertFunc) Alert(msg string) { f(msg) }

// Binder is the click handler for a variant's buttons.
type Binder struct {
	variant    engine.Variant
	dispatcher *dispatch.Dispatcher
	alert      Alerter
	log        *zap.Logger
}

func NewBinder(v engine.Variant, d *dispatch.Dispatcher, a Alerter, log *zap.Logger) *Binder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Binder{variant: v, dispatcher: d, alert: a, log: log}
}

// Click handles a press of the button whose data-action is actionName.
// amountField is the raw text of the wager input; it is only read for
// amount-bearing actions, and a non-integer or non-positive value raises
// an alert and sends nothing.
func (b *Binder) Click(ctx context.Context, sess dispatch.Session, actionName, amountField string) error {
	action, err := b.variant.ParseAction(actionName)
	if err != nil {
		b.log.Warn("ignoring click", zap.Error(err))
		return err
	}

	var amount *int
	if b.variant.AmountBearing(action) {
		n, err := strconv.Atoi(strings.TrimSpace(amountField))
		if err != nil || n <= 0 {
			if b.alert != nil {
				b.alert.Alert(InvalidAmountAlert)
			}
			return ErrInvalidAmount
		}
		amount = &n
	}

	b.dispatcher.Action(ctx, sess, b.variant, action, amount)
	return nil
}
