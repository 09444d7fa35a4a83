package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/DoyleJ11/cardroom-client/internal/engine"
)

var ErrMissingServerURL = errors.New("SERVER_URL is required")

type Config struct {
	ServerURL  string
	RoomID     string
	PlayerID   string
	PlayerName string
	Variant    engine.VariantID
	ListenAddr string
	LogLevel   string
	TUI        bool
}

// Load reads the environment, after merging any .env files. Variables
// already set in the environment win over .env.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	c := Config{
		ServerURL:  get("SERVER_URL", ""),
		RoomID:     get("ROOM_ID", ""),
		PlayerID:   get("PLAYER_ID", ""),
		PlayerName: get("PLAYER_NAME", ""),
		Variant:    engine.VariantID(get("VARIANT", string(engine.VariantBlackjack))),
		ListenAddr: get("LISTEN_ADDR", ":8080"),
		LogLevel:   get("LOG_LEVEL", "info"),
		TUI:        asBool(get("TUI", "true")),
	}

	if c.ServerURL == "" {
		return Config{}, ErrMissingServerURL
	}
	if _, err := engine.LookupVariant(c.Variant); err != nil {
		return Config{}, fmt.Errorf("VARIANT: %w", err)
	}
	if c.PlayerID == "" {
		c.PlayerID = uuid.NewString()
	}
	return c, nil
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
