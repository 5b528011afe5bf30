package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full configuration for the gateway and worker.
type Config struct {
	Service Service `yaml:"service"`
	Server  Server  `yaml:"server"`
	Discord Discord `yaml:"discord"`
	NATS    NATS    `yaml:"nats"`
	Weather Weather `yaml:"weather"`
	Trivia  Trivia  `yaml:"trivia"`
}

// Service holds general service configuration.
type Service struct {
	Name string `yaml:"name"`
}

// Server holds the inbound webhook server configuration.
type Server struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Discord holds the credentials read once at startup. PublicKey is the
// hex-encoded Ed25519 key Discord signs interaction webhooks with.
type Discord struct {
	PublicKey     string `yaml:"public_key"`
	BotToken      string `yaml:"bot_token"`
	ApplicationID string `yaml:"application_id"`
}

// NATS holds the message bus configuration. An empty URL selects the
// in-process bus, which only works when gateway and worker share a process.
type NATS struct {
	URL string `yaml:"url"`
}

// Weather holds the OpenWeather client configuration.
type Weather struct {
	APIKey string `yaml:"api_key"`
	GeoURL string `yaml:"geo_url"`
	APIURL string `yaml:"api_url"`
}

// Trivia holds the OpenTrivia DB client configuration.
type Trivia struct {
	APIURL string `yaml:"api_url"`
}

const (
	defaultListenAddr = ":8080"
	defaultGeoURL     = "http://api.openweathermap.org/geo/1.0/direct"
	defaultWeatherURL = "https://api.openweathermap.org/data/2.5/weather"
	defaultTriviaURL  = "https://opentdb.com/api.php"
)

// Load reads the configuration from a YAML file. Missing values fall back to
// environment variables, so the bot can run from a config file, from the
// environment alone, or a mix of both.
func Load(filename string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}
	if err := loadFromEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// loadFromEnv fills in any value not already set from the YAML file.
func loadFromEnv(cfg *Config) error {
	if cfg.Service.Name == "" {
		cfg.Service.Name = os.Getenv("SERVICE_NAME")
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = os.Getenv("LISTEN_ADDR")
	}
	if cfg.Discord.PublicKey == "" {
		cfg.Discord.PublicKey = os.Getenv("DISCORD_PUBLIC_KEY")
		if cfg.Discord.PublicKey == "" {
			return fmt.Errorf("DISCORD_PUBLIC_KEY environment variable not set")
		}
	}
	if cfg.Discord.BotToken == "" {
		cfg.Discord.BotToken = os.Getenv("DISCORD_BOT_TOKEN")
		if cfg.Discord.BotToken == "" {
			return fmt.Errorf("DISCORD_BOT_TOKEN environment variable not set")
		}
	}
	if cfg.Discord.ApplicationID == "" {
		cfg.Discord.ApplicationID = os.Getenv("DISCORD_APPLICATION_ID")
		if cfg.Discord.ApplicationID == "" {
			return fmt.Errorf("DISCORD_APPLICATION_ID environment variable not set")
		}
	}
	if cfg.NATS.URL == "" {
		cfg.NATS.URL = os.Getenv("NATS_URL")
	}
	if cfg.Weather.APIKey == "" {
		cfg.Weather.APIKey = os.Getenv("WEATHER_API_KEY")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = "discord-interactions-bot"
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = defaultListenAddr
	}
	if cfg.Weather.GeoURL == "" {
		cfg.Weather.GeoURL = defaultGeoURL
	}
	if cfg.Weather.APIURL == "" {
		cfg.Weather.APIURL = defaultWeatherURL
	}
	if cfg.Trivia.APIURL == "" {
		cfg.Trivia.APIURL = defaultTriviaURL
	}
}
