package deps

import (
	"time"

	"github.com/ymatsumoto/startpage/internal/dashboard"
	"github.com/ymatsumoto/startpage/internal/logger"
	"github.com/ymatsumoto/startpage/internal/scheduler"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time             // for testing, defaults to time.Now
	Store          *dashboard.Store             // the dashboard state store
	Weather        *scheduler.WeatherRefresher  // latest weather readout
	WeatherTrigger chan struct{}                // channel to trigger a manual weather refresh
	AllowedCIDRS   []string                     // IPs allowed to reach the API (empty = no filter)
}
