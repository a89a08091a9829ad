package main

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// how long a correct answer stays on screen before the next note
const advanceDelay = 500 * time.Millisecond

type judgment int

const (
	judgmentUnset judgment = iota
	judgmentCorrect
	judgmentIncorrect
)

func (j judgment) String() string {
	switch j {
	case judgmentCorrect:
		return "correct"
	case judgmentIncorrect:
		return "incorrect"
	default:
		return "unset"
	}
}

type roundState int

const (
	awaiting roundState = iota
	correctPending
	incorrect
)

// round is one "show a note, wait for the matching pitch" trial
type round struct {
	id        uuid.UUID // only used to correlate log lines
	target    note
	result    judgment
	correctAt time.Time // zero unless a correct answer is waiting to advance
}

func (r round) state() roundState {
	switch r.result {
	case judgmentCorrect:
		return correctPending
	case judgmentIncorrect:
		return incorrect
	default:
		return awaiting
	}
}

func (r round) advancePending() bool {
	return !r.correctAt.IsZero()
}

// roundKeeper owns the live round. Every read-modify-write of it happens
// under mu.
type roundKeeper struct {
	mu    sync.Mutex
	round round
	stats sessionStats
	notes []note
	rng   *rand.Rand
	now   func() time.Time
}

func newRoundKeeper(rng *rand.Rand, now func() time.Time) *roundKeeper {
	rk := &roundKeeper{
		notes: trainableNotes,
		rng:   rng,
		now:   now,
	}
	rk.startRound()
	return rk
}

func (rk *roundKeeper) startRound() {
	rk.mu.Lock()
	defer rk.mu.Unlock()
	rk.startRoundLocked()
}

// uniform with replacement, the previous note may come again
func (rk *roundKeeper) startRoundLocked() {
	target := rk.notes[rk.rng.Intn(len(rk.notes))]
	rk.round = round{
		id:     uuid.New(),
		target: target,
		result: judgmentUnset,
	}
	log.Info("round started", "round", rk.round.id, "note", target)
}

func (rk *roundKeeper) onPitch(id uint8) judgment {
	rk.mu.Lock()
	defer rk.mu.Unlock()
	return rk.onPitchLocked(id)
}

func (rk *roundKeeper) onPitchLocked(id uint8) judgment {
	log.Debug("incoming pitch", "round", rk.round.id, "pitch", id, "name", pitchName(id))

	if id == rk.round.target.pitch() {
		if rk.round.result != judgmentCorrect {
			rk.stats.hitNote()
		}
		rk.round.result = judgmentCorrect
		rk.round.correctAt = rk.now()
	} else {
		rk.round.result = judgmentIncorrect
		rk.stats.missNote()
	}

	log.Info("pitch judged", "round", rk.round.id, "expected", rk.round.target, "played", pitchName(id), "result", rk.round.result)
	return rk.round.result
}

// judge applies a drained batch of pitches in arrival order under a single
// lock. Only the last judgment stays on the round.
func (rk *roundKeeper) judge(ids []uint8) []judgment {
	if len(ids) == 0 {
		return nil
	}
	rk.mu.Lock()
	defer rk.mu.Unlock()

	judgments := make([]judgment, len(ids))
	for i, id := range ids {
		judgments[i] = rk.onPitchLocked(id)
	}
	return judgments
}

// tick starts a new round once the advance delay after a correct answer has
// passed. It reports whether a new round was started.
func (rk *roundKeeper) tick(now time.Time) bool {
	rk.mu.Lock()
	defer rk.mu.Unlock()

	if !rk.round.advancePending() {
		return false
	}
	if now.Sub(rk.round.correctAt) < advanceDelay {
		return false
	}
	rk.startRoundLocked()
	return true
}

func (rk *roundKeeper) skip() {
	rk.mu.Lock()
	defer rk.mu.Unlock()

	if rk.round.result != judgmentCorrect {
		rk.stats.skipNote()
	}
	log.Info("round skipped", "round", rk.round.id, "note", rk.round.target)
	rk.startRoundLocked()
}

func (rk *roundKeeper) current() round {
	rk.mu.Lock()
	defer rk.mu.Unlock()
	return rk.round
}

func (rk *roundKeeper) sessionStats() sessionStats {
	rk.mu.Lock()
	defer rk.mu.Unlock()
	return rk.stats
}

// advanceProgress is how much of the advance delay has passed, 0..1
func (rk *roundKeeper) advanceProgress(now time.Time) float64 {
	r := rk.current()
	if !r.advancePending() {
		return 0
	}
	p := float64(now.Sub(r.correctAt)) / float64(advanceDelay)
	if p < 0 {
		return 0
	} else if p > 1 {
		return 1
	}
	return p
}
