package funcs

import (
	"sync"
	"time"
)

// Once returns a function that calls fn the first time it is invoked and
// returns that first result on every later call, whatever the argument.
//
//	reverse := funcs.Once(reverseString)
//	reverse("abc") // "cba"
//	reverse("xyz") // "cba", reverseString not called again
func Once[A, R any](fn func(A) R) func(A) R {
	var (
		once   sync.Once
		result R
	)
	return func(arg A) R {
		once.Do(func() { result = fn(arg) })
		return result
	}
}

// Memoize returns a function that caches the result of fn per argument.
// fn runs at most once for every distinct argument value, so recursive
// functions may call the memoized version for other arguments.
func Memoize[A comparable, R any](fn func(A) R) func(A) R {
	type entry struct {
		once   sync.Once
		result R
	}
	var (
		mu    sync.Mutex
		cache = make(map[A]*entry)
	)
	return func(arg A) R {
		mu.Lock()
		e, ok := cache[arg]
		if !ok {
			e = new(entry)
			cache[arg] = e
		}
		mu.Unlock()

		e.once.Do(func() { e.result = fn(arg) })
		return e.result
	}
}

// Delay calls fn(args...) once, after wait has elapsed, on its own goroutine.
// Stop the returned timer to cancel a call that has not started yet.
//
//	t := funcs.Delay(func(names ...string) { greet(names...) }, time.Second, "ana", "bo")
//	defer t.Stop()
func Delay[A any](fn func(...A), wait time.Duration, args ...A) *time.Timer {
	return time.AfterFunc(wait, func() { fn(args...) })
}
