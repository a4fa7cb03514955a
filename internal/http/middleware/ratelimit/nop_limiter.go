package ratelimit

// NopLimiter admits every request.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }

// NewNopLimiter returns a limiter that never rejects.
func NewNopLimiter() Limiter { return NopLimiter{} }
