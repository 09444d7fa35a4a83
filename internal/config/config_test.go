package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/cardroom-client/internal/engine"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	c, err := FromEnv(env(map[string]string{"SERVER_URL": "ws://localhost:5000/ws"}))
	require.NoError(t, err)

	assert.Equal(t, engine.VariantBlackjack, c.Variant)
	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.TUI)
	_, err = uuid.Parse(c.PlayerID)
	assert.NoError(t, err, "generated player id should be a uuid")
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := FromEnv(env(map[string]string{
		"SERVER_URL": "ws://room:5000/ws",
		"ROOM_ID":    "abcd1234",
		"PLAYER_ID":  "sid-7",
		"VARIANT":    "texas_holdem",
		"TUI":        "off",
	}))
	require.NoError(t, err)

	assert.Equal(t, "abcd1234", c.RoomID)
	assert.Equal(t, "sid-7", c.PlayerID)
	assert.Equal(t, engine.VariantHoldem, c.Variant)
	assert.False(t, c.TUI)
}

func TestFromEnv_Errors(t *testing.T) {
	_, err := FromEnv(env(nil))
	assert.ErrorIs(t, err, ErrMissingServerURL)

	_, err = FromEnv(env(map[string]string{"SERVER_URL": "ws://x", "VARIANT": "uno"}))
	assert.ErrorIs(t, err, engine.ErrUnknownVariant)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_URL=ws://from-dotenv/ws\nPLAYER_ID=dot\n"), 0o600))

	// t.Setenv restores the original value on cleanup; godotenv only fills
	// variables that are unset.
	t.Setenv("SERVER_URL", "placeholder")
	require.NoError(t, os.Unsetenv("SERVER_URL"))
	t.Setenv("PLAYER_ID", "from-env")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ws://from-dotenv/ws", c.ServerURL)
	assert.Equal(t, "from-env", c.PlayerID)
}
