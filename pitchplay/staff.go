package main

const staffLineCount = 5

// E4 sits on the bottom line of the treble staff
var referenceNote = note{letterE, 4}

type staffGeometry struct {
	top         float64 // y of the top line
	lineSpacing float64 // distance between two adjacent lines
}

type staffPosition struct {
	y          float64 // center of the notehead
	ledgerLine bool
	stemDown   bool
}

// steps counts natural notes from C0
func (n note) steps() int {
	return n.octave*7 + n.letter.index()
}

func (g staffGeometry) bottom() float64 {
	return g.top + g.lineSpacing*(staffLineCount-1)
}

func (g staffGeometry) midline() float64 {
	return g.top + g.lineSpacing*2
}

// noteY moves half a line spacing per step, upwards for higher notes
func (g staffGeometry) noteY(n note) float64 {
	distance := n.steps() - referenceNote.steps()
	return g.bottom() - float64(distance)*(g.lineSpacing/2)
}

func (g staffGeometry) position(n note) staffPosition {
	y := g.noteY(n)
	return staffPosition{
		y:          y,
		ledgerLine: needsLedgerLine(n),
		stemDown:   y <= g.midline(),
	}
}

// needsLedgerLine is true for notes outside the five lines that sit on a
// ledger position or need one to reach it (C4 and below, A5 and above)
func needsLedgerLine(n note) bool {
	distance := n.steps() - referenceNote.steps()
	return distance <= -2 || distance >= 2*staffLineCount
}
