// Package persist mirrors the dashboard state into the key-value store,
// one named blob per collection plus a few plain-string scalars.
package persist

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/kv"
	"github.com/ymatsumoto/startpage/internal/logger"
)

// Persisted key names. Collections and the streaming flag are JSON-encoded;
// theme, active category and weather location are stored as plain strings.
const (
	KeyQuickPages      = "state:quickPages"
	KeyCategories      = "state:categories"
	KeyActiveCategory  = "state:activeCategory"
	KeyReminders       = "state:reminders"
	KeyMailServices    = "state:mailServices"
	KeyNotes           = "state:notes"
	KeyTheme           = "state:theme"
	KeyStreaming       = "state:isStreaming"
	KeyWeatherLocation = "state:weatherLocation"
)

// Adapter loads and saves dashboard snapshots.
type Adapter struct {
	kv     kv.Store
	logger logger.Logger
}

// NewAdapter creates an adapter over the given key-value store.
func NewAdapter(store kv.Store, log logger.Logger) *Adapter {
	return &Adapter{kv: store, logger: log}
}

// Load reads every persisted key on top of defaults. A key that is absent
// or fails to parse falls back to the default for that key only; a corrupt
// entry is logged and skipped, never fatal. Load runs exactly once, before
// the store hydrates.
func (a *Adapter) Load(ctx context.Context, defaults dashboard.State) dashboard.State {
	state := defaults

	loadJSON(a, ctx, KeyQuickPages, &state.QuickPages)
	loadJSON(a, ctx, KeyCategories, &state.Categories)
	loadJSON(a, ctx, KeyReminders, &state.Reminders)
	loadJSON(a, ctx, KeyMailServices, &state.MailServices)
	loadJSON(a, ctx, KeyNotes, &state.Notes)

	if v, ok := a.loadString(ctx, KeyActiveCategory); ok {
		state.ActiveCategory = v
	}
	if v, ok := a.loadString(ctx, KeyTheme); ok {
		state.Theme = v
	}
	if v, ok := a.loadString(ctx, KeyWeatherLocation); ok {
		state.WeatherLocation = v
	}
	if v, ok := a.loadString(ctx, KeyStreaming); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			state.Streaming = b
		} else {
			a.logger.Warn("skipping corrupt persisted value",
				logger.String("key", KeyStreaming), logger.Error(err))
		}
	}

	return state
}

// Save writes every key, unconditionally overwriting prior contents. It is
// invoked after each mutation once hydration is complete. Individual write
// failures are logged and the remaining keys are still written.
func (a *Adapter) Save(ctx context.Context, state dashboard.State) {
	saveJSON(a, ctx, KeyQuickPages, state.QuickPages)
	saveJSON(a, ctx, KeyCategories, state.Categories)
	saveJSON(a, ctx, KeyReminders, state.Reminders)
	saveJSON(a, ctx, KeyMailServices, state.MailServices)
	saveJSON(a, ctx, KeyNotes, state.Notes)

	a.saveString(ctx, KeyActiveCategory, state.ActiveCategory)
	a.saveString(ctx, KeyTheme, state.Theme)
	a.saveString(ctx, KeyWeatherLocation, state.WeatherLocation)
	a.saveString(ctx, KeyStreaming, strconv.FormatBool(state.Streaming))
}

func (a *Adapter) loadString(ctx context.Context, key string) (string, bool) {
	val, found, err := a.kv.Get(ctx, key)
	if err != nil {
		a.logger.Warn("failed to read persisted key",
			logger.String("key", key), logger.Error(err))
		return "", false
	}
	return val, found
}

func (a *Adapter) saveString(ctx context.Context, key, val string) {
	if err := a.kv.Set(ctx, key, val); err != nil {
		a.logger.Warn("failed to write persisted key",
			logger.String("key", key), logger.Error(err))
	}
}

func loadJSON[T any](a *Adapter, ctx context.Context, key string, into *T) {
	raw, ok := a.loadString(ctx, key)
	if !ok {
		return
	}
	var parsed T
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		a.logger.Warn("skipping corrupt persisted value",
			logger.String("key", key), logger.Error(err))
		return
	}
	*into = parsed
}

func saveJSON[T any](a *Adapter, ctx context.Context, key string, val T) {
	data, err := json.Marshal(val)
	if err != nil {
		a.logger.Warn("failed to encode persisted value",
			logger.String("key", key), logger.Error(err))
		return
	}
	a.saveString(ctx, key, string(data))
}
