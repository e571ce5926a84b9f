package order

import "time"

// StatusChange is one immutable audit entry in an order's status history.
// The first entry of a history has no previous status (From returns nil)
// and records the initial status; every subsequent entry's previous status
// equals the prior entry's new status.
type StatusChange struct {
	from *Status
	to   Status
	at   time.Time
}

func newStatusChange(from *Status, to Status, at time.Time) StatusChange {
	var prev *Status
	if from != nil {
		v := *from
		prev = &v
	}
	return StatusChange{from: prev, to: to, at: at}
}

// From returns the previous status, or nil for the initial history entry.
func (c StatusChange) From() *Status {
	if c.from == nil {
		return nil
	}
	v := *c.from
	return &v
}

// To returns the status the order transitioned to.
func (c StatusChange) To() Status {
	return c.to
}

// At returns the time the transition was recorded.
func (c StatusChange) At() time.Time {
	return c.at
}

// String returns a human-readable rendering of the transition.
func (c StatusChange) String() string {
	from := "none"
	if c.from != nil {
		from = c.from.String()
	}
	return from + " -> " + c.to.String() + " at " + c.at.Format(time.RFC3339)
}
