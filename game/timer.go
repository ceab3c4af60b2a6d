package game

import "time"

// Timer is a passive stopwatch. It never ticks on its own; callers pass the
// current time in and read elapsed time back out.
type Timer struct {
	started, running bool
	start, stop      time.Time
}

// Start begins timing. Starting a running timer is a no-op.
func (timer *Timer) Start(now time.Time) {
	if timer.running {
		return
	}
	timer.started = true
	timer.running = true
	timer.start = now
}

// Stop freezes the elapsed time. Stopping a stopped timer is a no-op.
func (timer *Timer) Stop(now time.Time) {
	if !timer.running {
		return
	}
	timer.running = false
	timer.stop = now
}

func (timer *Timer) Reset() {
	*timer = Timer{}
}

func (timer *Timer) Running() bool {
	return timer.running
}

func (timer *Timer) Elapsed(now time.Time) time.Duration {
	var elapsed time.Duration
	switch {
	case !timer.started:
		return 0
	case timer.running:
		elapsed = now.Sub(timer.start)
	default:
		elapsed = timer.stop.Sub(timer.start)
	}

	if elapsed < 0 {
		return 0
	}
	return elapsed
}
