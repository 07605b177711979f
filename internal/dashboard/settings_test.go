package dashboard

import "testing"

func TestSetTheme(t *testing.T) {
	s := newHydratedStore(t)

	s.SetTheme("light")
	if got := s.Theme(); got != "light" {
		t.Errorf("theme = %q", got)
	}

	s.SetTheme("solarized")
	if got := s.Theme(); got != "light" {
		t.Errorf("unknown theme accepted: %q", got)
	}
}

func TestToggleTheme(t *testing.T) {
	s := newHydratedStore(t)

	s.ToggleTheme()
	if got := s.Theme(); got != "light" {
		t.Errorf("theme = %q after toggle from dark", got)
	}
	s.ToggleTheme()
	if got := s.Theme(); got != "dark" {
		t.Errorf("theme = %q after second toggle", got)
	}
}

func TestSetStreaming(t *testing.T) {
	s := newHydratedStore(t)

	s.SetStreaming(true)
	if !s.Streaming() {
		t.Error("streaming not enabled")
	}
	s.SetStreaming(false)
	if s.Streaming() {
		t.Error("streaming not disabled")
	}
}

func TestSetWeatherLocation(t *testing.T) {
	s := newHydratedStore(t)

	s.SetWeatherLocation("大阪")
	if got := s.WeatherLocation(); got != "大阪" {
		t.Errorf("location = %q", got)
	}

	s.SetWeatherLocation("")
	if got := s.WeatherLocation(); got != "大阪" {
		t.Errorf("empty location overwrote: %q", got)
	}
}
