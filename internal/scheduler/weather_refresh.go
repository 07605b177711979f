package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/logger"
	"github.com/ymatsumoto/startpage/internal/weather"
)

// WeatherRefresher keeps the weather readout for the stored location warm.
// It refreshes on a fixed interval and on a manual trigger (fired when the
// user changes the location). A stale in-flight response simply loses to
// the most recent write; there is no request fencing.
type WeatherRefresher struct {
	client        *weather.Client
	store         *dashboard.Store
	logger        logger.Logger
	interval      time.Duration
	manualTrigger chan struct{}
	stopCh        chan struct{}

	mu      sync.RWMutex
	current weather.Readout
	asOf    time.Time
}

// NewWeatherRefresher creates a weather refresher. manualTrigger may be a
// buffered channel shared with the handler that changes the location.
func NewWeatherRefresher(
	client *weather.Client,
	store *dashboard.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *WeatherRefresher {
	return &WeatherRefresher{
		client:        client,
		store:         store,
		logger:        log,
		interval:      interval,
		manualTrigger: manualTrigger,
		stopCh:        make(chan struct{}),
	}
}

// Start refreshes once in the background, then periodically and on manual
// trigger. The initial fetch never blocks the caller: a slow upstream must
// not delay process startup.
func (wr *WeatherRefresher) Start(ctx context.Context) error {
	ticker := time.NewTicker(wr.interval)
	go func() {
		defer ticker.Stop()
		wr.Refresh(ctx)
		for {
			select {
			case <-ticker.C:
				wr.Refresh(ctx)
			case <-wr.manualTrigger:
				wr.logger.Info("manual weather refresh triggered")
				wr.Refresh(ctx)
			case <-wr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the refresher.
func (wr *WeatherRefresher) Stop() {
	close(wr.stopCh)
}

// Refresh fetches conditions for the currently stored location and
// replaces the readout. The fetch never errors; a failed lookup lands the
// fallback readout.
func (wr *WeatherRefresher) Refresh(ctx context.Context) {
	location := wr.store.WeatherLocation()
	if location == "" {
		return
	}

	readout := wr.client.Fetch(ctx, location)

	wr.mu.Lock()
	wr.current = readout
	wr.asOf = time.Now()
	wr.mu.Unlock()

	wr.logger.Debug("weather refreshed",
		logger.String("location", location),
		logger.String("condition", readout.Condition))
}

// Current returns the latest readout and when it was fetched. The zero
// time means no fetch has completed yet.
func (wr *WeatherRefresher) Current() (weather.Readout, time.Time) {
	wr.mu.RLock()
	defer wr.mu.RUnlock()
	return wr.current, wr.asOf
}
