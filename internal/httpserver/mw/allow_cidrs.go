package mw

import (
	"net/http"

	"github.com/ymatsumoto/startpage/internal/logger"
	"github.com/ymatsumoto/startpage/internal/utils"
)

// AllowOnlyCIDRS allows only specific IPs/CIDRs. An empty list does not
// filter (passthrough), which is the default for a loopback-only bind.
func AllowOnlyCIDRS(allowed []string, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.HostNoPort(r.RemoteAddr)
			if !m.Allow(ip) {
				log.Debugf("AllowOnlyCIDRS: IP %s rejected", ip)
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
