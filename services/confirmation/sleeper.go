package confirmation

import (
	"context"
	"time"
)

type Sleeper interface {
	Sleep(c context.Context, d time.Duration) error
}

type TimerSleeper struct{}

func (s TimerSleeper) Sleep(c context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-c.Done():
		return c.Err()
	case <-timer.C:
		return nil
	}
}
