package funcs

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle returns a function that calls fn at most once per wait. The first
// call always runs fn; calls arriving before wait has elapsed since the last
// run return the last computed result without calling fn.
//
// A non-positive wait disables throttling.
func Throttle[A, R any](fn func(A) R, wait time.Duration) func(A) R {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if wait > 0 {
		limiter = rate.NewLimiter(rate.Every(wait), 1)
	}
	var (
		mu   sync.Mutex
		last R
	)
	return func(arg A) R {
		mu.Lock()
		defer mu.Unlock()
		if limiter.Allow() {
			last = fn(arg)
		}
		return last
	}
}
