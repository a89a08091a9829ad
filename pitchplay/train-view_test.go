package main

import (
	"strings"
	"testing"
)

const testStaffWidth = 20

func runeAt(lines []string, row, col int) rune {
	return []rune(lines[row])[col]
}

func TestRenderStaffLines(t *testing.T) {
	lines := renderStaff(referenceNote, terminalStaff, testStaffWidth)

	if len(lines) != 13 {
		t.Fatalf("Expected 13 rows, got %d", len(lines))
	}
	for _, row := range []int{1, 3, 5, 7} {
		if runeAt(lines, row, 0) != staffLineRune || runeAt(lines, row, testStaffWidth-1) != staffLineRune {
			t.Errorf("Expected a staff line on row %d, got %q", row, lines[row])
		}
	}
	if strings.TrimSpace(lines[0]) != "" {
		t.Errorf("Expected row above the staff to be empty, got %q", lines[0])
	}
	if runeAt(lines, 7, 1) != trebleClef {
		t.Errorf("Expected clef on the G line, got %q", lines[7])
	}
}

func TestRenderStaffNoteheadRow(t *testing.T) {
	col := testStaffWidth / 2
	for _, n := range trainableNotes {
		lines := renderStaff(n, terminalStaff, testStaffWidth)
		row := staffRow(terminalStaff.noteY(n))
		if runeAt(lines, row, col) != noteheadRune {
			t.Errorf("Expected %s notehead on row %d, got %q", n, row, lines[row])
		}
		for r := range lines {
			if r != row && strings.ContainsRune(lines[r], noteheadRune) {
				t.Errorf("Expected a single notehead for %s, found another on row %d", n, r)
			}
		}
	}
}

func TestRenderStaffLedgerLine(t *testing.T) {
	col := testStaffWidth / 2

	c4 := renderStaff(note{letterC, 4}, terminalStaff, testStaffWidth)
	if runeAt(c4, 11, col-2) != staffLineRune || runeAt(c4, 11, col+2) != staffLineRune {
		t.Errorf("Expected ledger line through C4, got %q", c4[11])
	}
	if runeAt(c4, 11, 0) != ' ' {
		t.Errorf("Expected ledger line to be short, got %q", c4[11])
	}

	d4 := renderStaff(note{letterD, 4}, terminalStaff, testStaffWidth)
	if runeAt(d4, 10, col-2) != ' ' {
		t.Errorf("Expected no ledger line for D4, got %q", d4[10])
	}
}

func TestRenderStaffStems(t *testing.T) {
	col := testStaffWidth / 2

	// C4 stem goes up on the right and crosses the bottom line
	c4 := renderStaff(note{letterC, 4}, terminalStaff, testStaffWidth)
	if runeAt(c4, 10, col+1) != stemRune || runeAt(c4, 9, col+1) != stemCrossRune || runeAt(c4, 8, col+1) != stemRune {
		t.Errorf("Expected C4 stem up, got %q %q %q", c4[8], c4[9], c4[10])
	}
	if runeAt(c4, 12, col-1) != ' ' {
		t.Errorf("Expected nothing below C4, got %q", c4[12])
	}

	// B4 sits on the middle line, its stem goes down on the left
	b4 := renderStaff(note{letterB, 4}, terminalStaff, testStaffWidth)
	if runeAt(b4, 6, col-1) != stemRune || runeAt(b4, 7, col-1) != stemCrossRune || runeAt(b4, 8, col-1) != stemRune {
		t.Errorf("Expected B4 stem down, got %q %q %q", b4[6], b4[7], b4[8])
	}
	if runeAt(b4, 4, col+1) != ' ' {
		t.Errorf("Expected no stem above B4, got %q", b4[4])
	}
}

func TestFeedbackString(t *testing.T) {
	r := round{target: note{letterB, 4}, result: judgmentCorrect}
	if !strings.Contains(feedbackString(r, false), "Correct! B4") {
		t.Errorf("Expected correct feedback, got %q", feedbackString(r, false))
	}
	if !strings.Contains(feedbackString(r, true), "Correct! H4") {
		t.Errorf("Expected german note name, got %q", feedbackString(r, true))
	}

	r.result = judgmentIncorrect
	if !strings.Contains(feedbackString(r, false), "Wrong!") {
		t.Errorf("Expected wrong feedback, got %q", feedbackString(r, false))
	}

	r.result = judgmentUnset
	if strings.TrimSpace(feedbackString(r, false)) != "" {
		t.Errorf("Expected no feedback, got %q", feedbackString(r, false))
	}
}

func TestViewWithoutDevice(t *testing.T) {
	f := newTrainFixture(t)
	view := f.model.View()
	if !strings.Contains(view, "No MIDI keyboard connected") {
		t.Errorf("Expected missing device notice, got %q", view)
	}
	if !strings.ContainsRune(view, noteheadRune) {
		t.Error("Expected the note to be drawn")
	}
}
