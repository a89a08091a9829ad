package main

// sessionStats only lives as long as the process
type sessionStats struct {
	correct    int
	wrong      int
	skipped    int
	streak     int
	bestStreak int
}

func (ss *sessionStats) hitNote() {
	ss.correct++
	ss.streak++
	if ss.streak > ss.bestStreak {
		ss.bestStreak = ss.streak
	}
}

func (ss *sessionStats) missNote() {
	ss.wrong++
	ss.streak = 0
}

func (ss *sessionStats) skipNote() {
	ss.skipped++
	ss.streak = 0
}

func (ss sessionStats) attempts() int {
	return ss.correct + ss.wrong
}

// accuracy of all judged pitches, 0 when nothing has been played yet
func (ss sessionStats) accuracy() float64 {
	if ss.attempts() == 0 {
		return 0
	}
	return float64(ss.correct) / float64(ss.attempts())
}
