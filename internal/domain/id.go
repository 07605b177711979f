package domain

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// NewID returns a fresh unique identifier based on the current wall clock
// in milliseconds. Two calls within the same millisecond are disambiguated
// by bumping past the previous value, so ids stay unique and roughly
// monotonic within a process.
func NewID() string {
	now := time.Now().UnixMilli()
	for {
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
