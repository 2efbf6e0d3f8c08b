package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a token bucket capping request rate to an upstream service.
type Limiter struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64
	last     time.Time
}

// New builds a limiter allowing ratePerSec requests per second with a
// burst equal to the rate. A non-positive rate disables limiting.
func New(ratePerSec int) *Limiter {
	if ratePerSec <= 0 {
		return nil
	}
	r := float64(ratePerSec)
	return &Limiter{tokens: r, capacity: r, rate: r, last: time.Now()}
}

// Allow reports whether a request may proceed now. A nil limiter always
// allows.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.tokens += now.Sub(l.last).Seconds() * l.rate
	if l.tokens > l.capacity {
		l.tokens = l.capacity
	}
	l.last = now

	if l.tokens < 1 {
		return false
	}
	l.tokens--
	return true
}
