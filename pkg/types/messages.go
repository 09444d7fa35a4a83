package types

import "encoding/json"

// Client -> Server
//   game_action:         {room_id, action_type, payload: {amount?}}
//   start_game_request:  {room_id}
//   leave_room_request:  {room_id}
//
// Server -> Client
//   joined_room_success_socket_event / rejoined_room_success_socket_event:
//                        {room_id, game_type}
//   left_room_success:   {room_id}
//   <game_type>_update:  StateSnapshot
//   <game_type>_error, error_message: {message}
//   <game_type>_game_over: free-form results

const (
	EvtGameAction   = "game_action"
	EvtStartGame    = "start_game_request"
	EvtLeaveRoom    = "leave_room_request"
	EvtJoinedRoom   = "joined_room_success_socket_event"
	EvtRejoinedRoom = "rejoined_room_success_socket_event"
	EvtLeftRoom     = "left_room_success"
	EvtErrorMessage = "error_message"
)

// Envelope frames every websocket message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type Payload struct {
	Amount *int `json:"amount,omitempty"`
}

type GameAction struct {
	RoomID     string  `json:"room_id"`
	ActionType string  `json:"action_type"`
	Payload    Payload `json:"payload"`
}

type RoomRequest struct {
	RoomID string `json:"room_id"`
}

type RoomJoined struct {
	RoomID   string `json:"room_id"`
	GameType string `json:"game_type,omitempty"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

func NewEnvelope(event string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Event: event, Data: raw}, nil
}
