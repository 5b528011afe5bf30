package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/skyline-labs/discord-interactions-bot/cache"
	"github.com/skyline-labs/discord-interactions-bot/config"
	"github.com/skyline-labs/discord-interactions-bot/dispatch"
)

const weatherTimeout = 5 * time.Second

const (
	locationPrompt  = "Please provide a location!"
	weatherApology  = "❌ Sorry, I couldn't fetch the weather information at this time. Please try again later!"
	locationMissing = "❌ I couldn't find the location: %s\nPlease check the spelling and try again!"
)

// WeatherHandler answers /weather. OpenWeather needs coordinates, so the
// lookup is two calls: geocode the location name, then fetch current
// conditions. Reports are cached briefly since repeated lookups for the same
// city are common in a channel.
type WeatherHandler struct {
	client *http.Client
	store  cache.Interface
	cfg    config.Weather
	logger *slog.Logger
}

// NewWeatherHandler creates a WeatherHandler. store may be nil to disable
// caching.
func NewWeatherHandler(cfg config.Weather, store cache.Interface, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		client: &http.Client{Timeout: weatherTimeout},
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

type geoResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type weatherResult struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Handle produces the weather report followup. A missing location prompts
// the user without making any upstream call.
func (h *WeatherHandler) Handle(ctx context.Context, inv dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
	location, ok := inv.Option("location")
	location = strings.TrimSpace(location)
	if !ok || location == "" {
		return &discordgo.WebhookParams{Content: locationPrompt}, nil
	}

	if h.store != nil {
		if cached, err := h.store.Get(cacheKey(location)); err == nil {
			h.logger.Info("Weather cache hit", slog.String("location", location))
			return &discordgo.WebhookParams{Content: string(cached)}, nil
		}
	}

	report, err := h.lookup(ctx, location)
	if err != nil {
		h.logger.Error("Failed to fetch weather",
			slog.Any("error", err),
			slog.String("location", location),
		)
		return &discordgo.WebhookParams{Content: weatherApology}, nil
	}

	if h.store != nil && report.found {
		if err := h.store.Set(cacheKey(location), []byte(report.text)); err != nil {
			h.logger.Warn("Failed to cache weather report", slog.Any("error", err))
		}
	}
	return &discordgo.WebhookParams{Content: report.text}, nil
}

type weatherReport struct {
	text  string
	found bool
}

func (h *WeatherHandler) lookup(ctx context.Context, location string) (weatherReport, error) {
	geo, err := h.geocode(ctx, location)
	if err != nil {
		return weatherReport{}, err
	}
	if geo == nil {
		return weatherReport{text: fmt.Sprintf(locationMissing, location)}, nil
	}

	current, err := h.currentWeather(ctx, geo.Lat, geo.Lon)
	if err != nil {
		return weatherReport{}, err
	}

	description := ""
	if len(current.Weather) > 0 {
		description = capitalize(current.Weather[0].Description)
	}

	text := fmt.Sprintf(
		"🌍 Weather in %s, %s:\n"+
			"🌡️ Temperature: %d°C (Feels like %d°C)\n"+
			"☁️ Conditions: %s\n"+
			"💧 Humidity: %d%%\n"+
			"💨 Wind Speed: %d km/h",
		geo.Name, geo.Country,
		roundInt(current.Main.Temp), roundInt(current.Main.FeelsLike),
		description,
		current.Main.Humidity,
		roundInt(current.Wind.Speed*3.6), // m/s to km/h
	)
	return weatherReport{text: text, found: true}, nil
}

// geocode resolves a location name to coordinates. A nil result with nil
// error means the location does not exist.
func (h *WeatherHandler) geocode(ctx context.Context, location string) (*geoResult, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("limit", "1")
	query.Set("appid", h.cfg.APIKey)

	var results []geoResult
	if err := h.getJSON(ctx, h.cfg.GeoURL+"?"+query.Encode(), &results); err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (h *WeatherHandler) currentWeather(ctx context.Context, lat, lon float64) (*weatherResult, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	query.Set("appid", h.cfg.APIKey)
	query.Set("units", "metric")

	var result weatherResult
	if err := h.getJSON(ctx, h.cfg.APIURL+"?"+query.Encode(), &result); err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	return &result, nil
}

func (h *WeatherHandler) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func cacheKey(location string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(location))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
