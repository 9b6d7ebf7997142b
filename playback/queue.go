package playback

import "slices"

// queue is the FIFO of pending commands. It never holds two instances of
// the same kind; the command currently executing is tracked separately and
// does not block an identical kind from being queued behind it.
type queue struct {
	pending []Command
	current Command // 0 when nothing executes
}

// offer appends c unless an identical kind is already pending.
// It reports whether c was accepted.
func (q *queue) offer(c Command) bool {
	if slices.Contains(q.pending, c) {
		return false
	}
	q.pending = append(q.pending, c)

	return true
}

// drop removes a pending c, reporting whether it was present.
func (q *queue) drop(c Command) bool {
	i := slices.Index(q.pending, c)
	if i < 0 {
		return false
	}
	q.pending = slices.Delete(q.pending, i, i+1)

	return true
}

// next pops the head into current. ok is false when nothing is pending,
// in which case current is reset.
func (q *queue) next() (c Command, ok bool) {
	if len(q.pending) == 0 {
		q.current = 0
		return 0, false
	}
	c = q.pending[0]
	q.pending = slices.Delete(q.pending, 0, 1)
	q.current = c

	return c, true
}

func (q *queue) reset() {
	q.pending = nil
	q.current = 0
}

func (q *queue) snapshot() []Command { return slices.Clone(q.pending) }
