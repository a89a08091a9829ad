package main

import (
	"sync"
	"testing"
)

func TestPitchQueueDrainsInOrder(t *testing.T) {
	q := pitchQueue{}
	if q.drain() != nil {
		t.Error("Expected empty queue to drain to nil")
	}

	for _, id := range []uint8{64, 60, 71, 64} {
		q.push(id)
	}

	drained := q.drain()
	expected := []uint8{64, 60, 71, 64}
	if len(drained) != len(expected) {
		t.Fatalf("Expected %d pitches, got %d", len(expected), len(drained))
	}
	for i := range expected {
		if drained[i] != expected[i] {
			t.Errorf("Expected pitch %d at %d, got %d", expected[i], i, drained[i])
		}
	}

	if q.drain() != nil {
		t.Error("Expected queue to be empty after drain")
	}
}

func TestPitchQueueManyProducers(t *testing.T) {
	q := pitchQueue{}
	const producers = 4
	const perProducer = 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.push(uint8(offset*10 + i%10))
			}
		}(p)
	}

	total := 0
	lastSeen := map[int]int{}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	check := func(batch []uint8) {
		for _, id := range batch {
			producer := int(id) / 10
			seq := int(id) % 10
			// each producer cycles 0..9, so order within a producer shows up
			// as seq following the previous one
			if prev, ok := lastSeen[producer]; ok && seq != (prev+1)%10 {
				t.Errorf("Producer %d out of order: %d after %d", producer, seq, prev)
			}
			lastSeen[producer] = seq
			total++
		}
	}

	for {
		select {
		case <-done:
			check(q.drain())
			if total != producers*perProducer {
				t.Errorf("Expected %d pitches, got %d", producers*perProducer, total)
			}
			return
		default:
			check(q.drain())
		}
	}
}
