package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/logger"
	"github.com/ymatsumoto/startpage/internal/weather"
)

func TestStartDoesNotBlockOnSlowUpstream(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()
	defer close(release)

	log := logger.New("error", false)
	store := dashboard.NewStore(log, nil)
	store.Hydrate(dashboard.State{WeatherLocation: "東京"})

	client := weather.NewClient(log, weather.WithBaseURLs(srv.URL, srv.URL))
	wr := NewWeatherRefresher(client, store, log, time.Hour, make(chan struct{}, 1))

	started := make(chan struct{})
	go func() {
		defer close(started)
		if err := wr.Start(context.Background()); err != nil {
			t.Errorf("Start failed: %v", err)
		}
	}()

	// The upstream is still holding the first fetch open; Start must have
	// returned anyway.
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("Start blocked on the initial upstream fetch")
	}

	wr.Stop()
}

func TestRefreshSkipsEmptyLocation(t *testing.T) {
	log := logger.New("error", false)
	store := dashboard.NewStore(log, nil)
	store.Hydrate(dashboard.State{})

	// Unreachable upstream: a fetch attempt would land the fallback.
	client := weather.NewClient(log, weather.WithBaseURLs("http://127.0.0.1:1/g", "http://127.0.0.1:1/f"))
	wr := NewWeatherRefresher(client, store, log, time.Hour, make(chan struct{}, 1))

	wr.Refresh(context.Background())

	readout, asOf := wr.Current()
	if !asOf.IsZero() {
		t.Errorf("refresh ran without a location, asOf = %v", asOf)
	}
	if readout != (weather.Readout{}) {
		t.Errorf("readout = %+v, want zero value", readout)
	}
}
