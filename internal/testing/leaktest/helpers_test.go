package leaktest

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckNoGoroutineLeak_Clean(t *testing.T) {
	CheckNoGoroutineLeak(t, 0, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() { time.Sleep(50 * time.Millisecond) }()

	checker.Check(0)
}

func TestSettle(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	_, ok := settle(0, 20*time.Millisecond)
	assert.False(t, ok, "a blocked goroutine keeps the count above zero")

	n, ok := settle(runtime.NumGoroutine()+10, time.Second)
	assert.True(t, ok)
	assert.Positive(t, n)
}
