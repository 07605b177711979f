// Package weather resolves a free-text location to current conditions via
// the Open-Meteo geocoding and forecast APIs. Every failure mode collapses
// into a fixed fallback readout; callers never see an error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/ymatsumoto/startpage/internal/logger"
)

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"

	requestTimeout = 10 * time.Second
)

// Readout is the weather widget contract: temperature in whole degrees,
// a short condition label, a description composed with the resolved place
// name, and a precipitation probability in percent.
type Readout struct {
	Temp          int    `json:"temp"`
	Condition     string `json:"condition"`
	Description   string `json:"description"`
	Precipitation int    `json:"precipitation"`
}

// Fallback is returned whenever the lookup fails for any reason.
var Fallback = Readout{
	Temp:          22,
	Condition:     "エラー",
	Description:   "天気情報を取得できませんでした",
	Precipitation: 0,
}

// Client performs the two-stage lookup. Base URLs are configurable so
// tests can point at a local server.
type Client struct {
	httpClient   *http.Client
	geocodingURL string
	forecastURL  string
	cache        *Cache
	logger       logger.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURLs overrides the upstream endpoints.
func WithBaseURLs(geocoding, forecast string) Option {
	return func(c *Client) {
		c.geocodingURL = geocoding
		c.forecastURL = forecast
	}
}

// WithCache enables response caching as a courtesy to the upstream
// service.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates a weather client.
func NewClient(log logger.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		geocodingURL: defaultGeocodingURL,
		forecastURL:  defaultForecastURL,
		logger:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type coordinates struct {
	Lat  float64 `json:"latitude"`
	Lon  float64 `json:"longitude"`
	Name string  `json:"name"`
}

type geocodingResponse struct {
	Results []coordinates `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature              float64 `json:"temperature_2m"`
		WeatherCode              int     `json:"weather_code"`
		PrecipitationProbability *int    `json:"precipitation_probability"`
	} `json:"current"`
}

// Fetch resolves location to a current-conditions readout. On any failure
// (network, non-OK status, empty geocoding result, bad payload) it logs
// the cause and returns Fallback.
func (c *Client) Fetch(ctx context.Context, location string) Readout {
	coords, err := c.geocode(ctx, location)
	if err != nil {
		c.logger.Warn("weather lookup failed",
			logger.String("location", location), logger.Error(err))
		return Fallback
	}

	fc, err := c.forecast(ctx, coords.Lat, coords.Lon)
	if err != nil {
		c.logger.Warn("weather lookup failed",
			logger.String("location", location), logger.Error(err))
		return Fallback
	}

	label := labelForCode(fc.Current.WeatherCode)
	precipitation := 0
	if fc.Current.PrecipitationProbability != nil {
		precipitation = *fc.Current.PrecipitationProbability
	}

	return Readout{
		Temp:          int(math.Round(fc.Current.Temperature)),
		Condition:     label.Condition,
		Description:   fmt.Sprintf("%sの%s", coords.Name, label.Description),
		Precipitation: precipitation,
	}
}

func (c *Client) geocode(ctx context.Context, location string) (coordinates, error) {
	name := transliterate(location)

	if c.cache != nil {
		if coords, ok := c.cache.Coordinates(ctx, name); ok {
			return coords, nil
		}
	}

	u := fmt.Sprintf("%s?name=%s&count=1&language=ja&format=json",
		c.geocodingURL, url.QueryEscape(name))

	var resp geocodingResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return coordinates{}, fmt.Errorf("geocoding %q: %w", name, err)
	}
	if len(resp.Results) == 0 {
		return coordinates{}, fmt.Errorf("geocoding %q: no results", name)
	}

	coords := resp.Results[0]
	if c.cache != nil {
		c.cache.StoreCoordinates(ctx, name, coords)
	}
	return coords, nil
}

func (c *Client) forecast(ctx context.Context, lat, lon float64) (forecastResponse, error) {
	if c.cache != nil {
		if fc, ok := c.cache.Forecast(ctx, lat, lon); ok {
			return fc, nil
		}
	}

	u := fmt.Sprintf("%s?latitude=%f&longitude=%f&current=temperature_2m,weather_code,precipitation_probability&timezone=auto",
		c.forecastURL, lat, lon)

	var resp forecastResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return forecastResponse{}, fmt.Errorf("forecast for %.4f,%.4f: %w", lat, lon, err)
	}

	if c.cache != nil {
		c.cache.StoreForecast(ctx, lat, lon, resp)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}
