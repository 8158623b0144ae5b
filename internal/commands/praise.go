package commands

import "sync"

// PraiseCounter tracks how many headpats Net-chan will accept before she
// gets annoyed. It starts at one, every pat drains it to zero, and a cron
// job tops it back up once an hour.
type PraiseCounter struct {
	mu    sync.Mutex
	count int
}

func NewPraiseCounter() *PraiseCounter {
	return &PraiseCounter{count: 1}
}

// Take returns the current count and zeroes it.
func (p *PraiseCounter) Take() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.count
	p.count = 0
	return n
}

// Reset restores the counter to one.
func (p *PraiseCounter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count = 1
}
