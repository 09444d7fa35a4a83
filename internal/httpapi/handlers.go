package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DoyleJ11/cardroom-client/internal/engine"
	"github.com/DoyleJ11/cardroom-client/internal/table"
	"github.com/DoyleJ11/cardroom-client/internal/view"
)

// AmountField is the wager input's id on the page; "amount" is accepted too.
const AmountField = "actionAmount"

// Table is the part of the table actor the HTTP surface drives.
type Table interface {
	Snapshot(ctx context.Context) (table.View, error)
	Do(ctx context.Context, action, amount string) error
	Inbox() chan<- table.Msg
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func GetView(tb Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := tb.Snapshot(r.Context())
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// PostAction is a button click: the {action} path value plays the part of
// data-action and the form carries the wager field.
func PostAction(tb Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action := chi.URLParam(r, "action")
		amount := r.FormValue(AmountField)
		if amount == "" {
			amount = r.FormValue("amount")
		}

		err := tb.Do(r.Context(), action, amount)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusAccepted)
		case errors.Is(err, view.ErrInvalidAmount):
			writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: view.InvalidAmountAlert})
		case errors.Is(err, engine.ErrUnknownAction):
			writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		case errors.Is(err, table.ErrNotEnabled):
			writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
		default:
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: err.Error()})
		}
	}
}

func send(tb Table, msg table.Msg) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case tb.Inbox() <- msg:
			w.WriteHeader(http.StatusAccepted)
		case <-r.Context().Done():
			http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		}
	}
}

// SetRoom records a room joined out of band, e.g. through the server's
// REST join endpoint.
func SetRoom(tb Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		send(tb, table.RoomJoined{RoomID: chi.URLParam(r, "roomID")})(w, r)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
