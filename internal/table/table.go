package table

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/DoyleJ11/cardroom-client/internal/cards"
	"github.com/DoyleJ11/cardroom-client/internal/dispatch"
	"github.com/DoyleJ11/cardroom-client/internal/engine"
	"github.com/DoyleJ11/cardroom-client/internal/view"
)

var ErrNotEnabled = errors.New("action not currently available")
var ErrClosed = errors.New("table closed")

type Msg interface{ isTableMsg() }

// RoomJoined records the room the server put us in.
type RoomJoined struct{ RoomID string }

func (RoomJoined) isTableMsg() {}

// RoomLeft clears the current room.
type RoomLeft struct{}

func (RoomLeft) isTableMsg() {}

// Push delivers a server snapshot. It replaces the previous one.
type Push struct{ State engine.State }

func (Push) isTableMsg() {}

type ServerError struct{ Message string }

func (ServerError) isTableMsg() {}

// Click is a press of an action button. Reply, if set, receives the
// outcome; it must be buffered.
type Click struct {
	Action string
	Amount string
	Reply  chan error
}

func (Click) isTableMsg() {}

type StartGame struct{}

func (StartGame) isTableMsg() {}

type LeaveRoom struct{}

func (LeaveRoom) isTableMsg() {}

type Subscribe struct {
	ClientID string
	Outbox   chan View // where this renderer wants views
}

func (Subscribe) isTableMsg() {}

type Unsubscribe struct{ ClientID string }

func (Unsubscribe) isTableMsg() {}

type GetView struct {
	Reply chan View
}

func (GetView) isTableMsg() {}

type Shutdown struct{}

func (Shutdown) isTableMsg() {}

type HandView struct {
	PlayerID    string `json:"player_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Text        string `json:"text"`
	Value       int    `json:"value,omitempty"`
	Busted      bool   `json:"busted,omitempty"`
	Natural     bool   `json:"natural,omitempty"`
	Soft        bool   `json:"soft,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	Description string `json:"description,omitempty"`
}

// View is what hosts render: the visible controls plus rendered hands.
type View struct {
	Version  int              `json:"version"`
	RoomID   string           `json:"room_id"`
	ViewerID string           `json:"viewer_id"`
	Variant  engine.VariantID `json:"variant"`
	Phase    engine.Phase     `json:"phase"`
	MyTurn   bool             `json:"my_turn"`
	Controls []engine.Action  `json:"controls"`
	Hands    []HandView       `json:"hands"`
	Dealer   *HandView        `json:"dealer,omitempty"`
	Board    string           `json:"board,omitempty"`
	Message  string           `json:"message,omitempty"`
}

type Options struct {
	Session   dispatch.Session
	Transport dispatch.Transport
	Alerter   view.Alerter
	Logger    *zap.Logger
	// Omit lists buttons the host does not have.
	Omit []engine.Action
}

type Table struct {
	inbox      chan Msg
	sess       dispatch.Session
	variant    engine.Variant
	state      engine.State
	version    int
	message    string
	buttons    *view.ButtonGroup
	updater    *view.Updater
	binder     *view.Binder
	dispatcher *dispatch.Dispatcher
	clients    map[string]chan View
	log        *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

func New(parent context.Context, opts Options) (*Table, error) {
	v, err := engine.LookupVariant(opts.Session.Variant)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("variant", string(v.ID)), zap.String("viewer", opts.Session.ViewerID))

	ctx, cancel := context.WithCancel(parent)
	d := dispatch.New(opts.Transport, log)
	buttons := view.NewButtonGroup(v, opts.Omit...)

	t := &Table{
		inbox:      make(chan Msg, 64),
		sess:       opts.Session,
		variant:    v,
		state:      engine.NewEmptyState(),
		buttons:    buttons,
		updater:    view.NewUpdater(v, buttons, log),
		binder:     view.NewBinder(v, d, opts.Alerter, log),
		dispatcher: d,
		clients:    make(map[string]chan View),
		log:        log,
		ctx:        ctx,
		cancel:     cancel,
	}

	go t.loop()
	return t, nil
}

func (t *Table) loop() {
	for {
		select {
		case <-t.ctx.Done():
			t.shutdown()
			return

		case m := <-t.inbox:
			switch msg := m.(type) {
			case RoomJoined:
				if msg.RoomID != t.sess.RoomID {
					t.state = engine.NewEmptyState()
				}
				t.sess.RoomID = msg.RoomID
				t.log.Info("joined room", zap.String("room", msg.RoomID))
				t.refresh()

			case RoomLeft:
				t.log.Info("left room", zap.String("room", t.sess.RoomID))
				t.sess.RoomID = ""
				t.state = engine.NewEmptyState()
				t.refresh()

			case Push:
				t.state = msg.State
				if msg.State.Message != "" {
					t.message = msg.State.Message
				}
				t.refresh()

			case ServerError:
				t.log.Warn("server error", zap.String("message", msg.Message))
				t.message = msg.Message
				t.refresh()

			case Click:
				err := t.click(msg)
				if msg.Reply != nil {
					msg.Reply <- err
				}

			case StartGame:
				t.dispatcher.StartGame(t.ctx, t.sess)

			case LeaveRoom:
				t.dispatcher.LeaveRoom(t.ctx, t.sess)

			case Subscribe:
				// Register renderer + send the current view immediately
				t.clients[msg.ClientID] = msg.Outbox
				select {
				case msg.Outbox <- t.view():
				default:
				}

			case Unsubscribe:
				if ch, ok := t.clients[msg.ClientID]; ok {
					close(ch)
					delete(t.clients, msg.ClientID)
				}

			case GetView:
				msg.Reply <- t.view()

			case Shutdown:
				t.shutdown()
				return
			}
		}
	}
}

func (t *Table) click(msg Click) error {
	a, err := t.variant.ParseAction(msg.Action)
	if err != nil {
		return err
	}
	if !t.buttons.Shown(a) {
		return ErrNotEnabled
	}
	return t.binder.Click(t.ctx, t.sess, msg.Action, msg.Amount)
}

// refresh re-applies the control policy to the latest snapshot and
// broadcasts the result.
func (t *Table) refresh() {
	t.updater.Update(t.sess, t.state)
	t.version++
	t.broadcast(t.view())
}

func (t *Table) view() View {
	s := t.state
	v := View{
		Version:  t.version,
		RoomID:   t.sess.RoomID,
		ViewerID: t.sess.ViewerID,
		Variant:  t.variant.ID,
		Phase:    s.Phase,
		MyTurn:   t.sess.ViewerID != "" && s.CurrentTurnID == t.sess.ViewerID,
		Controls: t.buttons.Visible(),
		Hands:    make([]HandView, 0, len(s.Players)),
		Message:  t.message,
	}

	for _, p := range s.Players {
		hv := handView(p.Hand, false, t.variant.ScoresBlackjack)
		hv.PlayerID = p.ID
		hv.Name = p.Name
		if t.variant.ID == engine.VariantHoldem && p.ID == t.sess.ViewerID {
			if d, err := cards.DescribePoker(append(append(cards.Hand{}, p.Hand...), s.Community...)); err == nil {
				hv.Description = d
			}
		}
		v.Hands = append(v.Hands, hv)
	}

	if len(s.Dealer) > 0 {
		hide := t.variant.HideDealerHole && !engine.DealerRevealed(s.Phase) && len(s.Dealer) > 1
		d := handView(s.Dealer, hide, t.variant.ScoresBlackjack)
		v.Dealer = &d
	}
	if len(s.Community) > 0 {
		v.Board = cards.RenderHandText(s.Community, false)
	}
	return v
}

func handView(h cards.Hand, hideFirst, score bool) HandView {
	hv := HandView{Text: cards.RenderHandText(h, hideFirst), Hidden: hideFirst}
	if hideFirst || !score {
		return hv
	}
	hv.Value = cards.HandValue(h)
	hv.Busted = cards.IsBusted(h)
	hv.Natural = cards.IsNatural(h)
	hv.Soft = cards.IsSoft(h)
	return hv
}

func (t *Table) shutdown() {
	for id, ch := range t.clients {
		close(ch) // Tell renderer no more views
		delete(t.clients, id)
	}
	t.cancel()
}

func (t *Table) broadcast(v View) {
	for id, ch := range t.clients {
		select {
		case ch <- v:
			//ok
		default:
			// Renderer is slow/full - drop it.
			t.log.Warn("dropping slow view subscriber", zap.String("client", id))
			close(ch)
			delete(t.clients, id)
		}
	}
}

// Inbox exposes the table's inbox to the transport and the hosts.
func (t *Table) Inbox() chan<- Msg { return t.inbox }

// Do sends a click and waits for its outcome.
func (t *Table) Do(ctx context.Context, action, amount string) error {
	reply := make(chan error, 1)
	select {
	case t.inbox <- Click{Action: action, Amount: amount, Reply: reply}:
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ctx.Done():
		return ErrClosed
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ctx.Done():
		return ErrClosed
	}
}

// Snapshot returns the current view.
func (t *Table) Snapshot(ctx context.Context) (View, error) {
	reply := make(chan View, 1)
	select {
	case t.inbox <- GetView{Reply: reply}:
	case <-ctx.Done():
		return View{}, ctx.Err()
	case <-t.ctx.Done():
		return View{}, ErrClosed
	}
	select {
	case v := <-reply:
		return v, nil
	case <-ctx.Done():
		return View{}, ctx.Err()
	case <-t.ctx.Done():
		return View{}, ErrClosed
	}
}

func (t *Table) Done() <-chan struct{} { return t.ctx.Done() }
