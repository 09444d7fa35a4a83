package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DoyleJ11/cardroom-client/internal/table"
)

func SetupRoutes(tb Table) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz)
	r.Get("/view", GetView(tb))
	r.Post("/actions/{action}", PostAction(tb))

	r.Route("/room", func(r chi.Router) {
		r.Put("/{roomID}", SetRoom(tb))
		r.Post("/start", send(tb, table.StartGame{}))
		r.Post("/leave", send(tb, table.LeaveRoom{}))
	})
	return r
}
