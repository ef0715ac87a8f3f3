package reflow

// Scheduler defers work to a later turn of a single-threaded loop.
// Schedule must not run fn before it returns, except for
// ImmediateScheduler, which exists for synchronous tests and tools.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Schedule calls f(fn).
func (f SchedulerFunc) Schedule(fn func()) {
	f(fn)
}

// ImmediateScheduler runs work synchronously inside Schedule.
type ImmediateScheduler struct{}

// Schedule runs fn.
func (ImmediateScheduler) Schedule(fn func()) {
	fn()
}

// ManualScheduler queues work until Flush is called.
// It is not safe for concurrent use.
type ManualScheduler struct {
	queue []func()
}

// Schedule queues fn.
func (s *ManualScheduler) Schedule(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// Flush runs one turn: the callbacks queued before the call, in order.
// Callbacks they schedule wait for the next turn. Returns how many ran.
func (s *ManualScheduler) Flush() int {
	turn := s.queue
	s.queue = nil
	for _, fn := range turn {
		fn()
	}
	return len(turn)
}
