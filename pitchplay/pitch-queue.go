package main

import "sync"

// pitchQueue carries pitch ids from the MIDI listener to the frame loop.
// It is unbounded so the listener never waits on the renderer.
type pitchQueue struct {
	mu      sync.Mutex
	pending []uint8
}

func (q *pitchQueue) push(id uint8) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, id)
}

// drain returns everything queued so far in arrival order, nil when empty
func (q *pitchQueue) drain() []uint8 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	drained := q.pending
	q.pending = nil
	return drained
}
