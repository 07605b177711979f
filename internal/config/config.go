package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":7870"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir  string // base directory for the file-backed store
	SeedFile string // optional YAML file seeding a fresh installation

	ReminderInterval time.Duration // reminder check interval (default: 30s)
	WeatherInterval  time.Duration // weather refresh interval (default: 30m)
	Notifications    bool          // false => reminder checks run but emit nothing
	NotifyIcon       string        // path to the notification icon asset (optional)

	// Redis is optional; empty addr means the local file-backed store.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisDT       time.Duration // dial timeout
	RedisRT       time.Duration // read timeout
	RedisWT       time.Duration // write timeout

	AllowedCIDRS []string // optional, restrict access to specific IPs/CIDRs
}

// Load builds the configuration from environment variables, reading an
// optional .env file first. Every value has a default that works on a
// personal machine; nothing is required.
func Load() *Config {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	return &Config{
		ListenPort:      getenv("STARTPAGE_LISTEN_PORT", ":7870"),
		ShutdownTimeout: mustDuration("STARTPAGE_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("STARTPAGE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("STARTPAGE_PRETTY_LOG", true),

		DataDir:  getenv("STARTPAGE_DATA_DIR", defaultDataDir()),
		SeedFile: getenv("STARTPAGE_SEED_FILE", ""),

		ReminderInterval: mustDuration("STARTPAGE_REMINDER_INTERVAL", 30*time.Second),
		WeatherInterval:  mustDuration("STARTPAGE_WEATHER_INTERVAL", 30*time.Minute),
		Notifications:    mustBool("STARTPAGE_NOTIFICATIONS", true),
		NotifyIcon:       getenv("STARTPAGE_NOTIFY_ICON", ""),

		RedisAddr:     getenv("STARTPAGE_REDIS_ADDR", ""),
		RedisPassword: getenv("STARTPAGE_REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("STARTPAGE_REDIS_DB", 0),
		RedisDT:       mustDuration("STARTPAGE_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:       mustDuration("STARTPAGE_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:       mustDuration("STARTPAGE_REDIS_WRITE_TIMEOUT", 3*time.Second),

		AllowedCIDRS: splitAndTrim(getenv("STARTPAGE_ALLOWED_CIDRS", "")),
	}
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ListenPort, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.DataDir, validation.Required.When(c.RedisAddr == "")),
		validation.Field(&c.ReminderInterval, validation.Min(time.Second)),
		validation.Field(&c.WeatherInterval, validation.Min(time.Minute)),
	)
}

// UseRedis reports whether persistence goes through Redis instead of the
// local file-backed store.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

func defaultDataDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".local", "share", "startpage")
	}
	return "./data"
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
