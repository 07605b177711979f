package scheduler

import (
	"context"
	"time"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/domain"
	"github.com/ymatsumoto/startpage/internal/logger"
	"github.com/ymatsumoto/startpage/internal/notify"
)

const (
	// DefaultCheckInterval polls twice per minute so every matching
	// minute is checked at least once; the notified set dedups the
	// second hit.
	DefaultCheckInterval = 30 * time.Second

	notificationTitle = "リマインダー"
)

// ReminderNotifier fires one desktop notification per reminder whose due
// time equals the current wall-clock minute.
type ReminderNotifier struct {
	store    *dashboard.Store
	notifier notify.Notifier
	logger   logger.Logger
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

// NewReminderNotifier creates a reminder notifier. now is injected so
// tests can simulate the clock; pass time.Now in production.
func NewReminderNotifier(
	store *dashboard.Store,
	notifier notify.Notifier,
	log logger.Logger,
	interval time.Duration,
	now func() time.Time,
) *ReminderNotifier {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if now == nil {
		now = time.Now
	}
	return &ReminderNotifier{
		store:    store,
		notifier: notifier,
		logger:   log,
		interval: interval,
		now:      now,
		stopCh:   make(chan struct{}),
	}
}

// Start checks once immediately, then keeps checking on the interval until
// Stop is called or ctx is done.
func (rn *ReminderNotifier) Start(ctx context.Context) error {
	rn.Check()

	ticker := time.NewTicker(rn.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rn.Check()
			case <-rn.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the notifier.
func (rn *ReminderNotifier) Stop() {
	close(rn.stopCh)
}

// Check fires a notification for every reminder due at the current minute
// that has not completed and has not already been notified. MarkNotified
// is the dedup guard: each reminder id fires at most once per process
// lifetime (or until the reminder is removed and recreated).
func (rn *ReminderNotifier) Check() {
	current := domain.FormatClock(rn.now())

	for _, r := range rn.store.Reminders() {
		if r.Time == "" || r.Time != current || r.Completed {
			continue
		}
		if !rn.store.MarkNotified(r.ID) {
			continue
		}
		rn.logger.Info("reminder due, notifying",
			logger.String("reminder_id", r.ID),
			logger.String("time", r.Time))
		rn.notifier.Notify(notificationTitle, r.Text)
	}
}
