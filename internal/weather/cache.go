package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ymatsumoto/startpage/internal/kv"
	"github.com/ymatsumoto/startpage/internal/logger"
)

const (
	// GeocodingTTL bounds how long a resolved place keeps its coordinates.
	GeocodingTTL = 24 * time.Hour
	// ForecastTTL bounds how long current conditions are reused.
	ForecastTTL = 30 * time.Minute
)

// Cache stores upstream responses in the key-value store. It is a
// transport courtesy to Open-Meteo, not core dashboard state: a miss or a
// failed read just means another upstream call.
type Cache struct {
	kv     kv.Store
	logger logger.Logger
	now    func() time.Time
}

// NewCache creates a cache over the given store.
func NewCache(store kv.Store, log logger.Logger) *Cache {
	return &Cache{kv: store, logger: log, now: time.Now}
}

type cachedCoordinates struct {
	Coords   coordinates `json:"coords"`
	CachedAt time.Time   `json:"cachedAt"`
}

type cachedForecast struct {
	Forecast forecastResponse `json:"forecast"`
	CachedAt time.Time        `json:"cachedAt"`
}

func geoKey(name string) string {
	return "weather:geo:" + name
}

func forecastKey(lat, lon float64) string {
	return fmt.Sprintf("weather:current:%.4f,%.4f", lat, lon)
}

// Coordinates returns cached geocoding for name if still fresh.
func (c *Cache) Coordinates(ctx context.Context, name string) (coordinates, bool) {
	var entry cachedCoordinates
	if !c.read(ctx, geoKey(name), &entry) || c.expired(entry.CachedAt, GeocodingTTL) {
		return coordinates{}, false
	}
	return entry.Coords, true
}

// StoreCoordinates caches a geocoding result.
func (c *Cache) StoreCoordinates(ctx context.Context, name string, coords coordinates) {
	c.write(ctx, geoKey(name), cachedCoordinates{Coords: coords, CachedAt: c.now()})
}

// Forecast returns cached current conditions for the coordinates if still
// fresh.
func (c *Cache) Forecast(ctx context.Context, lat, lon float64) (forecastResponse, bool) {
	var entry cachedForecast
	if !c.read(ctx, forecastKey(lat, lon), &entry) || c.expired(entry.CachedAt, ForecastTTL) {
		return forecastResponse{}, false
	}
	return entry.Forecast, true
}

// StoreForecast caches a forecast response.
func (c *Cache) StoreForecast(ctx context.Context, lat, lon float64, fc forecastResponse) {
	c.write(ctx, forecastKey(lat, lon), cachedForecast{Forecast: fc, CachedAt: c.now()})
}

func (c *Cache) expired(cachedAt time.Time, ttl time.Duration) bool {
	return c.now().Sub(cachedAt) > ttl
}

func (c *Cache) read(ctx context.Context, key string, into any) bool {
	raw, found, err := c.kv.Get(ctx, key)
	if err != nil || !found {
		if err != nil {
			c.logger.Debug("weather cache read failed",
				logger.String("key", key), logger.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		c.logger.Debug("weather cache entry corrupt",
			logger.String("key", key), logger.Error(err))
		return false
	}
	return true
}

func (c *Cache) write(ctx context.Context, key string, val any) {
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.kv.Set(ctx, key, string(data)); err != nil {
		c.logger.Debug("weather cache write failed",
			logger.String("key", key), logger.Error(err))
	}
}
