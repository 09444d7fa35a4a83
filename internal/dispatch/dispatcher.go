package dispatch

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/DoyleJ11/cardroom-client/internal/engine"
	"github.com/DoyleJ11/cardroom-client/pkg/types"
)

var ErrNoRoom = errors.New("no room joined")

// Session is the explicit client context: which room we are in and who
// we are. It is owned by the table actor and passed by value.
type Session struct {
	RoomID   string
	ViewerID string
	Variant  engine.VariantID
}

func (s Session) InRoom() bool { return s.RoomID != "" }

// Transport sends one event to the room server.
type Transport interface {
	Emit(ctx context.Context, event string, data any) error
}

type Dispatcher struct {
	transport Transport
	log       *zap.Logger
}

func New(t Transport, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{transport: t, log: log}
}

// Dispatch emits one game_action for the session's room. Without a room
// nothing is sent and the failure is only logged; transport errors are
// logged too. There is no retry.
func (d *Dispatcher) Dispatch(ctx context.Context, sess Session, actionType string, payload types.Payload) {
	if !sess.InRoom() {
		d.log.Error("dropping game action", zap.String("action", actionType), zap.Error(ErrNoRoom))
		return
	}

	msg := types.GameAction{RoomID: sess.RoomID, ActionType: actionType, Payload: payload}
	fields := []zap.Field{zap.String("room", sess.RoomID), zap.String("action", actionType)}
	if payload.Amount != nil {
		fields = append(fields, zap.Int("amount", *payload.Amount))
	}
	d.log.Info("sending game action", fields...)

	if err := d.transport.Emit(ctx, types.EvtGameAction, msg); err != nil {
		d.log.Error("game action not sent", append(fields, zap.Error(err))...)
	}
}

// Action is the shared variant wrapper: amount is attached only when given
// and the action is amount-bearing for v. Callers validate amount ranges.
func (d *Dispatcher) Action(ctx context.Context, sess Session, v engine.Variant, action engine.Action, amount *int) {
	var payload types.Payload
	if amount != nil && v.AmountBearing(action) {
		a := *amount
		payload.Amount = &a
	}
	d.Dispatch(ctx, sess, string(action), payload)
}

func (d *Dispatcher) Poker(ctx context.Context, sess Session, action engine.Action, amount *int) {
	d.Action(ctx, sess, engine.Variants[engine.VariantHoldem], action, amount)
}

func (d *Dispatcher) Blackjack(ctx context.Context, sess Session, action engine.Action, amount *int) {
	d.Action(ctx, sess, engine.Variants[engine.VariantBlackjack], action, amount)
}

func (d *Dispatcher) StartGame(ctx context.Context, sess Session) {
	d.roomRequest(ctx, sess, types.EvtStartGame)
}

func (d *Dispatcher) LeaveRoom(ctx context.Context, sess Session) {
	d.roomRequest(ctx, sess, types.EvtLeaveRoom)
}

func (d *Dispatcher) roomRequest(ctx context.Context, sess Session, event string) {
	if !sess.InRoom() {
		d.log.Error("dropping room request", zap.String("event", event), zap.Error(ErrNoRoom))
		return
	}
	if err := d.transport.Emit(ctx, event, types.RoomRequest{RoomID: sess.RoomID}); err != nil {
		d.log.Error("room request not sent", zap.String("event", event), zap.Error(err))
	}
}
