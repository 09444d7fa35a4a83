package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/DoyleJ11/cardroom-client/internal/engine"
	"github.com/DoyleJ11/cardroom-client/internal/table"
	"github.com/DoyleJ11/cardroom-client/pkg/types"
)

const writeTimeout = 3 * time.Second

// Client is the websocket link to the room server. Emit may be called from
// any goroutine; Run owns the read side.
type Client struct {
	conn *websocket.Conn
	log  *zap.Logger
}

// Dial connects as viewerID. The server identifies players by the sid
// query parameter and shows them by name, when one is given.
func Dial(ctx context.Context, serverURL, viewerID, name string, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	q := u.Query()
	q.Set("sid", viewerID)
	if name != "" {
		q.Set("name", name)
	}
	u.RawQuery = q.Encode()

	conn, _, err := websocket.Dial(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.Redacted(), err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{conn: conn, log: log}, nil
}

func (c *Client) Emit(ctx context.Context, event string, data any) error {
	env, err := types.NewEnvelope(event, data)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.conn.Write(wctx, websocket.MessageText, payload)
}

// Run reads server events in arrival order and forwards them to the table
// until the connection closes or ctx ends. A clean close returns nil.
func (c *Client) Run(ctx context.Context, v engine.Variant, inbox chan<- table.Msg) error {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			// Treat clean close/going-away as normal:
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var env types.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.log.Warn("bad frame from server", zap.Error(err))
			continue
		}

		msg, ok := c.route(v, env)
		if !ok {
			continue
		}
		select {
		case inbox <- msg:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Client) route(v engine.Variant, env types.Envelope) (table.Msg, bool) {
	switch env.Event {
	case types.EvtJoinedRoom, types.EvtRejoinedRoom:
		var body types.RoomJoined
		if err := json.Unmarshal(env.Data, &body); err != nil || body.RoomID == "" {
			c.log.Warn("bad room event", zap.String("event", env.Event), zap.Error(err))
			return nil, false
		}
		if body.GameType != "" && body.GameType != string(v.ID) {
			c.log.Warn("joined room of another game type",
				zap.String("room", body.RoomID), zap.String("game_type", body.GameType))
		}
		return table.RoomJoined{RoomID: body.RoomID}, true

	case types.EvtLeftRoom:
		return table.RoomLeft{}, true

	case v.UpdateEvent():
		var snap types.StateSnapshot
		if err := json.Unmarshal(env.Data, &snap); err != nil {
			c.log.Warn("bad snapshot", zap.Error(err))
			return nil, false
		}
		return table.Push{State: snap.ToState()}, true

	case v.ErrorEvent(), types.EvtErrorMessage:
		var body types.ErrorMessage
		if err := json.Unmarshal(env.Data, &body); err != nil {
			c.log.Warn("bad error event", zap.String("event", env.Event), zap.Error(err))
			return nil, false
		}
		return table.ServerError{Message: body.Message}, true

	case v.GameOverEvent():
		c.log.Info("game over", zap.ByteString("results", env.Data))
		return nil, false

	default:
		c.log.Debug("ignoring event", zap.String("event", env.Event))
		return nil, false
	}
}

func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "bye")
}
