package fetcher

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Policy holds the per-host-class fetch parameters: the throttling delay
// window and the retry budgets per purpose. The pre-attempt delay is drawn
// uniformly at random from [MinDelay, MaxDelay] — random rather than fixed
// so the request cadence has no detectable signature. This is a compliance
// contract with the target hosts, not a tuning knob.
type Policy struct {
	MinDelay       time.Duration
	MaxDelay       time.Duration
	SearchAttempts int
	DetailAttempts int
}

// Attempts returns the retry budget for the given purpose.
func (p Policy) Attempts(purpose Purpose) int {
	if purpose == PurposeSearch {
		return p.SearchAttempts
	}
	return p.DetailAttempts
}

// DefaultPolicies returns the fetch policies for both host classes.
// The registry tolerates a short delay window; the directory is highly
// defense-sensitive and its search endpoint gets a single attempt so a
// persistent 403 does not burn minutes of backoff per company.
func DefaultPolicies() map[HostClass]Policy {
	return map[HostClass]Policy{
		HostRegistry: {
			MinDelay:       1 * time.Second,
			MaxDelay:       3 * time.Second,
			SearchAttempts: 3,
			DetailAttempts: 3,
		},
		HostDirectory: {
			MinDelay:       5 * time.Second,
			MaxDelay:       10 * time.Second,
			SearchAttempts: 1,
			DetailAttempts: 3,
		},
	}
}

// DefaultLimiters returns the global per-host-class rate limiters. These are
// shared across all workers so that aggregate inter-request spacing is
// preserved when companies are processed concurrently, not just per worker.
func DefaultLimiters() map[HostClass]*rate.Limiter {
	return map[HostClass]*rate.Limiter{
		HostRegistry:  rate.NewLimiter(rate.Every(1*time.Second), 1),
		HostDirectory: rate.NewLimiter(rate.Every(5*time.Second), 1),
	}
}

// rateLimitBackoffUnit scales the extra wait after a 429: (attempt+1) × unit.
const rateLimitBackoffUnit = 30 * time.Second

// attemptState is the per-attempt state machine. Delay and backoff
// durations are data (Policy), so tests inject a fake sleeper and
// transport and drive the machine deterministically.
type attemptState int

const (
	statePending attemptState = iota
	stateWaiting
	stateRequesting
	stateSucceeded
	stateRetryable
	stateAbandoned
)

// Engine executes fetches under the per-host policies. Zero-value Engine is
// not usable; construct with NewEngine.
type Engine struct {
	policies   map[HostClass]Policy
	transports map[HostClass]Transport
	limiters   map[HostClass]*rate.Limiter

	// sleep and randFloat are injection points for deterministic tests.
	sleep     func(ctx context.Context, d time.Duration) error
	randFloat func() float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSleeper overrides the wall-clock sleep, for tests.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Engine) { e.sleep = sleep }
}

// WithRand overrides the uniform random source, for tests.
func WithRand(f func() float64) Option {
	return func(e *Engine) { e.randFloat = f }
}

// WithLimiters overrides the global host-class rate limiters.
func WithLimiters(limiters map[HostClass]*rate.Limiter) Option {
	return func(e *Engine) { e.limiters = limiters }
}

// NewEngine creates a fetch engine with the given transports keyed by host
// class. Policies default to DefaultPolicies.
func NewEngine(transports map[HostClass]Transport, policies map[HostClass]Policy, opts ...Option) *Engine {
	if policies == nil {
		policies = DefaultPolicies()
	}
	e := &Engine{
		policies:   policies,
		transports: transports,
		limiters:   DefaultLimiters(),
		sleep:      sleepCtx,
		randFloat:  rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fetch runs the attempt state machine for one request. It never returns an
// error: every failure mode resolves to Outcome{TerminalFailure: true}.
func (e *Engine) Fetch(ctx context.Context, req Request) Outcome {
	pol, ok := e.policies[req.Host]
	if !ok {
		zap.L().Error("fetch: no policy for host class", zap.String("host_class", string(req.Host)))
		return Outcome{TerminalFailure: true}
	}
	tr, ok := e.transports[req.Host]
	if !ok {
		zap.L().Error("fetch: no transport for host class", zap.String("host_class", string(req.Host)))
		return Outcome{TerminalFailure: true}
	}

	budget := pol.Attempts(req.Purpose)
	log := zap.L().With(
		zap.String("host_class", string(req.Host)),
		zap.String("purpose", string(req.Purpose)),
		zap.String("url", req.URL),
	)

	for attempt := 0; attempt < budget; attempt++ {
		state := statePending
		var body string
		var status int
		var trErr error

		for state != stateSucceeded && state != stateRetryable && state != stateAbandoned {
			switch state {
			case statePending:
				state = stateWaiting

			case stateWaiting:
				if lim := e.limiters[req.Host]; lim != nil {
					if err := lim.Wait(ctx); err != nil {
						log.Warn("fetch: rate limiter wait cancelled", zap.Error(err))
						return Outcome{TerminalFailure: true}
					}
				}
				delay := e.throttleDelay(pol)
				log.Info("fetch: waiting before request",
					zap.Duration("delay", delay),
					zap.Int("attempt", attempt+1),
					zap.Int("budget", budget),
				)
				if err := e.sleep(ctx, delay); err != nil {
					return Outcome{TerminalFailure: true}
				}
				state = stateRequesting

			case stateRequesting:
				status, body, trErr = tr.Get(ctx, req.URL)
				state = e.classify(ctx, req, budget, attempt, status, trErr, log)
			}
		}

		switch state {
		case stateSucceeded:
			log.Info("fetch: success", zap.Int("status", status))
			return Outcome{Body: body}
		case stateAbandoned:
			return Outcome{TerminalFailure: true}
		case stateRetryable:
			// Next attempt, if any budget remains.
		}
	}

	log.Warn("fetch: retries exhausted")
	return Outcome{TerminalFailure: true}
}

// classify maps a transport result to the next attempt state and performs
// the 429 backoff sleep. A 403 on a single-attempt-budget directory search
// is a defensive block that persistence does not reward — abandon at once.
func (e *Engine) classify(ctx context.Context, req Request, budget, attempt, status int, trErr error, log *zap.Logger) attemptState {
	switch {
	case trErr != nil:
		log.Warn("fetch: transport error",
			zap.Int("attempt", attempt+1),
			zap.Error(trErr),
		)
		return stateRetryable

	case status >= 200 && status < 300:
		return stateSucceeded

	case status == http.StatusTooManyRequests:
		wait := time.Duration(attempt+1) * rateLimitBackoffUnit
		log.Warn("fetch: rate limited, backing off",
			zap.Duration("wait", wait),
			zap.Int("attempt", attempt+1),
		)
		if err := e.sleep(ctx, wait); err != nil {
			return stateAbandoned
		}
		return stateRetryable

	case status == http.StatusForbidden && req.Host == HostDirectory && req.Purpose == PurposeSearch && budget == 1:
		log.Warn("fetch: defensive block, abandoning", zap.Int("status", status))
		return stateAbandoned

	default:
		log.Warn("fetch: http error",
			zap.Int("status", status),
			zap.Int("attempt", attempt+1),
		)
		return stateRetryable
	}
}

// throttleDelay draws a uniform random duration from the policy's window.
func (e *Engine) throttleDelay(pol Policy) time.Duration {
	span := pol.MaxDelay - pol.MinDelay
	if span <= 0 {
		return pol.MinDelay
	}
	return pol.MinDelay + time.Duration(e.randFloat()*float64(span))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
