// Package leaktest checks that code under test leaves no goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// DefaultSettleTimeout bounds how long Check waits for goroutines to exit.
	DefaultSettleTimeout = 2 * time.Second

	pollInterval   = 10 * time.Millisecond
	stackDumpBytes = 64 << 10
)

// GoroutineChecker compares the goroutine count against a baseline taken
// when it was created.
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine(), timeout: DefaultSettleTimeout}
}

// WithTimeout changes how long Check waits.
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check waits for the count to fall back to within tolerance of the
// baseline and fails the test with a stack dump if it does not.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := settle(g.before+tolerance, g.timeout)
	if ok {
		return
	}

	buf := make([]byte, stackDumpBytes)
	n := runtime.Stack(buf, true)
	g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d\n%s",
		g.before, after, tolerance, buf[:n])
}

// CheckNoGoroutineLeak runs fn and checks that it leaves at most tolerance
// extra goroutines running.
func CheckNoGoroutineLeak(t testing.TB, tolerance int, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(tolerance)
}

// settle polls until at most target goroutines remain or timeout passes.
func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
