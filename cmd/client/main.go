package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/DoyleJ11/cardroom-client/internal/config"
	"github.com/DoyleJ11/cardroom-client/internal/dispatch"
	"github.com/DoyleJ11/cardroom-client/internal/engine"
	"github.com/DoyleJ11/cardroom-client/internal/httpapi"
	"github.com/DoyleJ11/cardroom-client/internal/logging"
	"github.com/DoyleJ11/cardroom-client/internal/table"
	"github.com/DoyleJ11/cardroom-client/internal/tui"
	"github.com/DoyleJ11/cardroom-client/internal/view"
	"github.com/DoyleJ11/cardroom-client/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Fatal.Println(err)
	}

	// Keep the terminal for the table when it is on.
	var outputs []string
	if cfg.TUI {
		outputs = []string{"client.log"}
	}
	log, err := logging.New(cfg.LogLevel, outputs...)
	if err != nil {
		pterm.Fatal.Println(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("client stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	variant, err := engine.LookupVariant(cfg.Variant)
	if err != nil {
		return err
	}

	conn, err := ws.Dial(ctx, cfg.ServerURL, cfg.PlayerID, cfg.PlayerName, log)
	if err != nil {
		return err
	}
	defer conn.Close()

	var alert view.Alerter = view.AlertFunc(func(msg string) {
		log.Warn("alert", zap.String("message", msg))
	})
	if cfg.TUI {
		alert = tui.Alerter{W: os.Stdout}
	}

	tb, err := table.New(ctx, table.Options{
		Session:   dispatch.Session{ViewerID: cfg.PlayerID, Variant: variant.ID},
		Transport: conn,
		Alerter:   alert,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	if cfg.RoomID != "" {
		tb.Inbox() <- table.RoomJoined{RoomID: cfg.RoomID}
	}

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: httpapi.SetupRoutes(tb)}
	go func() {
		log.Info("control surface listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("control surface failed", zap.Error(err))
		}
	}()
	defer srv.Shutdown(context.Background())

	if cfg.TUI {
		views := make(chan table.View, 8)
		tb.Inbox() <- table.Subscribe{ClientID: "tui", Outbox: views}
		go tui.Run(ctx, os.Stdout, views)

		pterm.Info.Printfln("You are %s. Commands: %s", cfg.PlayerID, tui.ActionHelp(variant))
		go func() {
			if err := tui.Prompt(ctx, os.Stdin, os.Stdout, tb); err != nil {
				log.Warn("prompt stopped", zap.Error(err))
			}
		}()
	}

	err = conn.Run(ctx, variant, tb.Inbox())
	select {
	case tb.Inbox() <- table.Shutdown{}:
	case <-tb.Done():
	}
	return err
}
