package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ymatsumoto/startpage/internal/config"
	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/httpserver"
	"github.com/ymatsumoto/startpage/internal/httpserver/deps"
	"github.com/ymatsumoto/startpage/internal/kv"
	"github.com/ymatsumoto/startpage/internal/logger"
	"github.com/ymatsumoto/startpage/internal/notify"
	"github.com/ymatsumoto/startpage/internal/persist"
	"github.com/ymatsumoto/startpage/internal/redis"
	"github.com/ymatsumoto/startpage/internal/scheduler"
	"github.com/ymatsumoto/startpage/internal/sources/seed"
	"github.com/ymatsumoto/startpage/internal/version"
	"github.com/ymatsumoto/startpage/internal/weather"
)

type App struct {
	cfg       *config.Config
	logger    logger.Logger
	server    *httpserver.Server
	kvStore   kv.Store
	store     *dashboard.Store
	reminders *scheduler.ReminderNotifier
	weather   *scheduler.WeatherRefresher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	if err := cfg.Validate(); err != nil {
		loggerClient.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	// Pick the persistence backend: Redis when configured, one file per
	// key under the data directory otherwise.
	var kvStore kv.Store
	if cfg.UseRedis() {
		redisClient, err := redis.New(redis.ConnectOptions{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  cfg.RedisDT,
			ReadTimeout:  cfg.RedisRT,
			WriteTimeout: cfg.RedisWT,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		kvStore = kv.NewRedisStore(redisClient)
	} else {
		loggerClient.Info("using file-backed store", logger.String("dir", cfg.DataDir))
		kvStore = kv.NewDiskStore(cfg.DataDir)
	}

	adapter := persist.NewAdapter(kvStore, loggerClient)

	// First-run defaults, optionally replaced by the seed file.
	seedState, err := seed.NewLoader(cfg.SeedFile).Load()
	if err != nil {
		loggerClient.Errorf("Failed to load seed file: %v", err)
		os.Exit(1)
	}

	store := dashboard.NewStore(loggerClient, func(state dashboard.State) {
		adapter.Save(context.Background(), state)
	})

	// Hydrate before the server starts so the first request already sees
	// persisted state.
	store.Hydrate(adapter.Load(context.Background(), seedState))

	var notifier notify.Notifier = notify.Discard{}
	if cfg.Notifications {
		notifier = notify.NewDesktop(cfg.NotifyIcon, loggerClient)
	} else {
		loggerClient.Info("desktop notifications disabled")
	}

	reminders := scheduler.NewReminderNotifier(store, notifier, loggerClient, cfg.ReminderInterval, time.Now)

	weatherTrigger := make(chan struct{}, 1)
	weatherClient := weather.NewClient(loggerClient,
		weather.WithCache(weather.NewCache(kvStore, loggerClient)))
	refresher := scheduler.NewWeatherRefresher(weatherClient, store, loggerClient, cfg.WeatherInterval, weatherTrigger)

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		Store:          store,
		Weather:        refresher,
		WeatherTrigger: weatherTrigger,
		AllowedCIDRS:   cfg.AllowedCIDRS,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:       cfg,
		logger:    loggerClient,
		server:    server,
		kvStore:   kvStore,
		store:     store,
		reminders: reminders,
		weather:   refresher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Startpage v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Startpage %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.reminders.Start(ctx); err != nil {
		return fmt.Errorf("failed to start reminder notifier: %w", err)
	}
	a.logger.Info("reminder notifier started",
		logger.Duration("interval", a.cfg.ReminderInterval))

	if err := a.weather.Start(ctx); err != nil {
		return fmt.Errorf("failed to start weather refresher: %w", err)
	}
	a.logger.Info("weather refresher started",
		logger.Duration("interval", a.cfg.WeatherInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reminders.Stop()
	a.weather.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.kvStore.Close(); err != nil {
		a.logger.Warnf("failed to close store: %v", err)
	}

	a.logger.Info("✅ Startpage stopped cleanly")
	return nil
}
