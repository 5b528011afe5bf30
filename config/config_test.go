package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeConfigFile(t, `
service:
  name: test-bot
server:
  listen_addr: ":9999"
discord:
  public_key: deadbeef
  bot_token: token-1
  application_id: app-1
nats:
  url: nats://localhost:4222
weather:
  api_key: weather-key
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-bot", cfg.Service.Name)
	assert.Equal(t, ":9999", cfg.Server.ListenAddr)
	assert.Equal(t, "deadbeef", cfg.Discord.PublicKey)
	assert.Equal(t, "token-1", cfg.Discord.BotToken)
	assert.Equal(t, "app-1", cfg.Discord.ApplicationID)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "weather-key", cfg.Weather.APIKey)

	// Unset endpoints fall back to defaults.
	assert.Equal(t, defaultGeoURL, cfg.Weather.GeoURL)
	assert.Equal(t, defaultWeatherURL, cfg.Weather.APIURL)
	assert.Equal(t, defaultTriviaURL, cfg.Trivia.APIURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DISCORD_PUBLIC_KEY", "cafebabe")
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")
	t.Setenv("DISCORD_APPLICATION_ID", "env-app")
	t.Setenv("LISTEN_ADDR", ":7777")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "cafebabe", cfg.Discord.PublicKey)
	assert.Equal(t, "env-token", cfg.Discord.BotToken)
	assert.Equal(t, "env-app", cfg.Discord.ApplicationID)
	assert.Equal(t, ":7777", cfg.Server.ListenAddr)
	assert.Equal(t, "discord-interactions-bot", cfg.Service.Name)
}

func TestLoad_YAMLWinsOverEnvironment(t *testing.T) {
	t.Setenv("DISCORD_PUBLIC_KEY", "from-env")
	t.Setenv("DISCORD_BOT_TOKEN", "from-env")
	t.Setenv("DISCORD_APPLICATION_ID", "from-env")

	path := writeConfigFile(t, `
discord:
  public_key: from-file
  bot_token: from-file
  application_id: from-file
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Discord.PublicKey)
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("DISCORD_PUBLIC_KEY", "")
	t.Setenv("DISCORD_BOT_TOKEN", "")
	t.Setenv("DISCORD_APPLICATION_ID", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_PUBLIC_KEY")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "discord: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}
