package dashboard

// Theme returns the current theme ("light" or "dark").
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme
}

// SetTheme switches the theme. Anything other than "light" or "dark" is
// refused.
func (s *Store) SetTheme(theme string) {
	if theme != "light" && theme != "dark" {
		return
	}
	s.mutate(func(st *State) bool {
		if st.Theme == theme {
			return false
		}
		st.Theme = theme
		return true
	})
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme() {
	s.mutate(func(st *State) bool {
		if st.Theme == "light" {
			st.Theme = "dark"
		} else {
			st.Theme = "light"
		}
		return true
	})
}

// Streaming reports whether streaming mode is active. While active, views
// filter out every entity flagged hide-on-stream.
func (s *Store) Streaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Streaming
}

// SetStreaming switches streaming mode on or off.
func (s *Store) SetStreaming(on bool) {
	s.mutate(func(st *State) bool {
		if st.Streaming == on {
			return false
		}
		st.Streaming = on
		return true
	})
}

// WeatherLocation returns the location the weather widget is bound to.
func (s *Store) WeatherLocation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.WeatherLocation
}

// SetWeatherLocation rebinds the weather widget. Empty input is a silent
// guard.
func (s *Store) SetWeatherLocation(location string) {
	if location == "" {
		return
	}
	s.mutate(func(st *State) bool {
		if st.WeatherLocation == location {
			return false
		}
		st.WeatherLocation = location
		return true
	})
}
