package confirmation

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/mymetrics"
	"github.com/autosphere/storefront/services/reservation"
)

const DefaultFallbackVehicleName = "your vehicle"

type State int

const (
	StateIdle State = iota
	StatePolling
	StateFound
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

func (s State) Terminal() bool {
	return s == StateFound || s == StateExhausted
}

// Finder performs one lookup of the confirmation of a checkout session.
type Finder interface {
	FindConfirmation(c context.Context, sessionID string) (reservation.Confirmation, bool, error)
}

type FinderFunc func(c context.Context, sessionID string) (reservation.Confirmation, bool, error)

func (f FinderFunc) FindConfirmation(c context.Context, sessionID string) (reservation.Confirmation, bool, error) {
	return f(c, sessionID)
}

type Result struct {
	State       State
	VehicleName string
	Status      string
	Attempts    int
}

// Poller waits for the reservation of one checkout session. It queries serially with a fixed
// interval and stops at the first match or after maxAttempts queries. Once terminal it never queries again.
type Poller struct {
	sync.Mutex
	finder      Finder
	sleeper     Sleeper
	interval    time.Duration
	maxAttempts int
	state       State
	result      Result
}

func NewPoller(finder Finder, sleeper Sleeper, interval time.Duration, maxAttempts int) *Poller {
	return &Poller{
		finder:      finder,
		sleeper:     sleeper,
		interval:    interval,
		maxAttempts: maxAttempts,
		state:       StateIdle,
	}
}

func (p *Poller) State() State {
	p.Lock()
	defer p.Unlock()

	return p.state
}

// Await polls until found or exhausted. Query errors count as not found, except a rejected
// credential which ends polling at once. When c is cancelled
// polling stops, the poller ends exhausted and the context error is returned.
func (p *Poller) Await(c context.Context, sessionID string, fallbackVehicleName string) (Result, error) {
	p.Lock()
	defer p.Unlock()

	if p.state.Terminal() {
		return p.result, nil
	}
	if fallbackVehicleName == "" {
		fallbackVehicleName = DefaultFallbackVehicleName
	}

	p.state = StatePolling
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if c.Err() != nil {
			p.exhaust(fallbackVehicleName, attempt-1, "cancelled")
			return p.result, c.Err()
		}

		found, exists, err := p.finder.FindConfirmation(c, sessionID)
		if err != nil && myerrors.GetHTTPStatus(err) == http.StatusUnauthorized {
			p.exhaust(fallbackVehicleName, attempt, "unauthenticated")
			return p.result, err
		}
		if err == nil && exists {
			p.state = StateFound
			p.result = Result{
				State:       StateFound,
				VehicleName: found.VehicleName,
				Status:      found.Status,
				Attempts:    attempt,
			}
			mymetrics.ConfirmationPollsTotal.WithLabelValues(StateFound.String()).Inc()
			return p.result, nil
		}

		if attempt == p.maxAttempts {
			break
		}

		err = p.sleeper.Sleep(c, p.interval)
		if err != nil {
			p.exhaust(fallbackVehicleName, attempt, "cancelled")
			return p.result, err
		}
	}

	p.exhaust(fallbackVehicleName, p.maxAttempts, StateExhausted.String())
	return p.result, nil
}

func (p *Poller) exhaust(fallbackVehicleName string, attempts int, outcome string) {
	p.state = StateExhausted
	p.result = Result{
		State:       StateExhausted,
		VehicleName: fallbackVehicleName,
		Attempts:    attempts,
	}
	mymetrics.ConfirmationPollsTotal.WithLabelValues(outcome).Inc()
}
