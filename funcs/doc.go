// Package funcs wraps functions with call-control behaviour: single
// invocation, result caching, deferred invocation and rate limiting.
//
//	initOnce := funcs.Once(loadConfig)
//	slowSquare := funcs.Memoize(func(n int) int { time.Sleep(time.Second); return n * n })
//	funcs.Delay(func(msgs ...string) { log.Println(msgs) }, 50*time.Millisecond, "later")
//	onResize := funcs.Throttle(redraw, 100*time.Millisecond)
//
// The wrappers returned by Once, Memoize and Throttle are safe for concurrent
// use.
package funcs
