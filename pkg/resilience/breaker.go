package resilience

import (
	"errors"
	"sync"
	"time"

	"animeai-app/backend/pkg/logger"
)

// ErrOpen is returned when the breaker short-circuits a call.
var ErrOpen = errors.New("upstream temporarily unavailable")

type state int

const (
	closed state = iota
	open
	halfOpen
)

func (s state) String() string {
	switch s {
	case open:
		return "open"
	case halfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// Breaker guards an upstream dependency. After FailureThreshold
// consecutive failures it rejects calls outright until RetryAfter has
// passed, then lets probes through and closes again after
// SuccessThreshold of them succeed.
type Breaker struct {
	name             string
	failureThreshold int
	successThreshold int
	retryAfter       time.Duration
	log              *logger.Logger

	mu        sync.Mutex
	state     state
	failures  int
	successes int
	reopenAt  time.Time
}

// Options configures a Breaker. Zero fields fall back to defaults
// suited to a remote AI provider: 5 failures to open, 2 probe
// successes to close, 30 seconds between retry windows.
type Options struct {
	FailureThreshold int
	SuccessThreshold int
	RetryAfter       time.Duration
}

// NewBreaker creates a breaker named after the upstream it protects.
func NewBreaker(name string, log *logger.Logger, opts Options) *Breaker {
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = 5
	}
	if opts.SuccessThreshold <= 0 {
		opts.SuccessThreshold = 2
	}
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = 30 * time.Second
	}
	return &Breaker{
		name:             name,
		failureThreshold: opts.FailureThreshold,
		successThreshold: opts.SuccessThreshold,
		retryAfter:       opts.RetryAfter,
		log:              log,
	}
}

// Execute runs fn unless the breaker is open.
func (b *Breaker) Execute(fn func() error) error {
	if !b.allow() {
		if b.log != nil {
			b.log.Warn("request short-circuited", "breaker", b.name)
		}
		return ErrOpen
	}

	if err := fn(); err != nil {
		b.recordFailure()
		return err
	}
	b.recordSuccess()
	return nil
}

// State reports the breaker state as a string for health reporting.
func (b *Breaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.String()
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case closed:
		return true
	case open:
		if time.Now().After(b.reopenAt) {
			b.state = halfOpen
			b.successes = 0
			return true
		}
		return false
	default: // halfOpen
		return b.successes < b.successThreshold
	}
}

func (b *Breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case closed:
		b.failures = 0
	case halfOpen:
		b.successes++
		if b.successes >= b.successThreshold {
			b.state = closed
			b.failures = 0
			if b.log != nil {
				b.log.Info("breaker closed", "breaker", b.name)
			}
		}
	}
}

func (b *Breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case closed:
		b.failures++
		if b.failures >= b.failureThreshold {
			b.trip()
		}
	case halfOpen:
		b.trip()
	}
}

func (b *Breaker) trip() {
	b.state = open
	b.reopenAt = time.Now().Add(b.retryAfter)
	if b.log != nil {
		b.log.Warn("breaker opened",
			"breaker", b.name,
			"failures", b.failures,
			"retryAt", b.reopenAt.Format(time.RFC3339),
		)
	}
}
