package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRefreshWeatherBackpressure(t *testing.T) {
	d := testDeps(t)
	h := RefreshWeather(d)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/weather/refresh", nil))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("first trigger status = %d, want 202", rec.Code)
	}

	// The trigger channel is full until the refresher drains it.
	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/weather/refresh", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second trigger status = %d, want 429", rec.Code)
	}
}
