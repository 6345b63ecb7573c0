package optimizer

import (
	"context"
	"time"
)

// Terminator is consulted at the top of every Separator attempt,
// between worker batches, and between outer-loop iterations. On fire,
// every layer returns the best-feasible snapshot held so far.
type Terminator interface {
	ShouldStop() bool
	Deadline() (time.Time, bool)
}

// ContextTerminator adapts a context.Context into a Terminator.
// ShouldStop checks ctx.Done() non-blockingly; Deadline delegates to
// the context directly.
type ContextTerminator struct {
	ctx context.Context
}

// NewContextTerminator wraps ctx. A nil ctx is treated as one that
// never fires.
func NewContextTerminator(ctx context.Context) ContextTerminator {
	return ContextTerminator{ctx: ctx}
}

func (c ContextTerminator) ShouldStop() bool {
	if c.ctx == nil {
		return false
	}
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

func (c ContextTerminator) Deadline() (time.Time, bool) {
	if c.ctx == nil {
		return time.Time{}, false
	}
	return c.ctx.Deadline()
}

// deadlineTerminator composes a parent Terminator with an absolute
// deadline of its own. ShouldStop fires on whichever comes first, so
// the deadline is visible even to callers (like separator.Terminator)
// that only ever consult ShouldStop and never Deadline.
type deadlineTerminator struct {
	parent   Terminator
	deadline time.Time
}

// withDeadline wraps parent with a deadline seconds from now. A
// non-positive seconds returns parent unchanged: the phase has no
// budget of its own and only parent's cancellation applies.
func withDeadline(parent Terminator, seconds float64) Terminator {
	if seconds <= 0 {
		return parent
	}
	return deadlineTerminator{parent: parent, deadline: time.Now().Add(time.Duration(seconds * float64(time.Second)))}
}

func (d deadlineTerminator) ShouldStop() bool {
	if !time.Now().Before(d.deadline) {
		return true
	}
	return d.parent != nil && d.parent.ShouldStop()
}

func (d deadlineTerminator) Deadline() (time.Time, bool) {
	if d.parent == nil {
		return d.deadline, true
	}
	if parentDeadline, ok := d.parent.Deadline(); ok && parentDeadline.Before(d.deadline) {
		return parentDeadline, true
	}
	return d.deadline, true
}

// shouldStop reports whether term has fired, treating a nil term as
// one that never stops.
func shouldStop(term Terminator) bool {
	return term != nil && term.ShouldStop()
}
