package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

type letter int

const (
	letterC letter = iota
	letterD
	letterE
	letterF
	letterG
	letterA
	letterB
)

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// semitones above C for each natural letter
var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// note is a natural note, no accidentals
type note struct {
	letter letter
	octave int
}

// the notes the trainer picks from
var trainableNotes = []note{
	{letterC, 4},
	{letterD, 4},
	{letterE, 4},
	{letterF, 4},
	{letterG, 4},
	{letterA, 4},
	{letterB, 4},
}

func (l letter) index() int {
	if l < letterC || l > letterB {
		panic(fmt.Sprintf("invalid note letter %d", int(l)))
	}
	return int(l)
}

func (n note) String() string {
	return letterNames[n.letter.index()] + strconv.Itoa(n.octave)
}

// displayName uses H instead of B when german is set
func (n note) displayName(german bool) string {
	if german && n.letter == letterB {
		return "H" + strconv.Itoa(n.octave)
	}
	return n.String()
}

// pitch returns the MIDI key number of the note (C4 = 60)
func (n note) pitch() uint8 {
	return uint8((n.octave+1)*12 + letterSemitones[n.letter.index()])
}

func parseNote(name string) (note, error) {
	if len(name) < 2 {
		return note{}, errors.Errorf("note %q too short", name)
	}

	var l letter
	switch name[0] {
	case 'C', 'c':
		l = letterC
	case 'D', 'd':
		l = letterD
	case 'E', 'e':
		l = letterE
	case 'F', 'f':
		l = letterF
	case 'G', 'g':
		l = letterG
	case 'A', 'a':
		l = letterA
	case 'B', 'b', 'H', 'h':
		l = letterB
	default:
		return note{}, errors.Errorf("unknown note letter in %q", name)
	}

	octave, err := strconv.Atoi(name[1:])
	if err != nil {
		return note{}, errors.Wrapf(err, "octave of %q", name)
	}
	return note{l, octave}, nil
}

func mustParseNote(name string) note {
	n, err := parseNote(name)
	if err != nil {
		panic(err)
	}
	return n
}

var chromaticNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// pitchName formats any MIDI key for logging
func pitchName(pitch uint8) string {
	return fmt.Sprintf("%s%d", chromaticNames[pitch%12], int(pitch/12)-1)
}
