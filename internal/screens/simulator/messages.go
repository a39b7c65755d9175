package simulator

import "time"

// timerTickMsg is sent every second to advance the countdown. The
// generation number ties a tick to the run that scheduled it, so a
// tick left over from an abandoned run is dropped instead of draining
// the new clock.
type timerTickMsg struct {
	Gen int
	At  time.Time
}

// eventLoggedMsg reports the outcome of an async event append.
type eventLoggedMsg struct {
	Err error
}
