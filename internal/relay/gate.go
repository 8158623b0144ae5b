package relay

import (
	"time"

	"golang.org/x/time/rate"
)

// Gate is the cooldown mechanism limiting how often the relay replies. It
// is a token bucket holding a single token that refills once per window, so
// a successful Allow consumes the token immediately — the window closes
// before any further work happens, and a near-simultaneous second event
// cannot also pass.
type Gate struct {
	lim *rate.Limiter
}

func NewGate(window time.Duration) *Gate {
	return &Gate{lim: rate.NewLimiter(rate.Every(window), 1)}
}

// Allow reports whether a reply may be dispatched at t, consuming the
// window when it may. Safe for concurrent use.
func (g *Gate) Allow(t time.Time) bool {
	return g.lim.AllowN(t, 1)
}
