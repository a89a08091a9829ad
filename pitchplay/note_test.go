package main

import "testing"

func TestNotePitch(t *testing.T) {
	expected := map[string]uint8{
		"C4": 60, "D4": 62, "E4": 64, "F4": 65,
		"G4": 67, "A4": 69, "B4": 71,
	}
	for _, n := range trainableNotes {
		if n.pitch() != expected[n.String()] {
			t.Errorf("Expected %s to be %d, got %d", n, expected[n.String()], n.pitch())
		}
	}
}

func TestNoteSteps(t *testing.T) {
	for i, n := range trainableNotes {
		if n.steps() != 28+i {
			t.Errorf("Expected %s to be %d steps, got %d", n, 28+i, n.steps())
		}
	}
}

func TestParseNote(t *testing.T) {
	n, err := parseNote("H4")
	if err != nil {
		t.Fatal(err)
	}
	if n != (note{letterB, 4}) {
		t.Errorf("Expected H4 to parse as B4, got %v", n)
	}

	n, err = parseNote("g5")
	if err != nil {
		t.Fatal(err)
	}
	if n != (note{letterG, 5}) {
		t.Errorf("Expected G5, got %v", n)
	}

	for _, bad := range []string{"X4", "Cx", "C", ""} {
		if _, err := parseNote(bad); err == nil {
			t.Errorf("Expected %q to fail", bad)
		}
	}
}

func TestMustParseNotePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for malformed note")
		}
	}()
	mustParseNote("Q9")
}

func TestNoteEquality(t *testing.T) {
	if mustParseNote("E4") != referenceNote {
		t.Error("Expected E4 to equal the reference note")
	}
	if mustParseNote("E5") == referenceNote {
		t.Error("Expected notes in different octaves to differ")
	}
}

func TestDisplayName(t *testing.T) {
	b4 := note{letterB, 4}
	if b4.displayName(false) != "B4" {
		t.Errorf("Expected B4, got %s", b4.displayName(false))
	}
	if b4.displayName(true) != "H4" {
		t.Errorf("Expected H4, got %s", b4.displayName(true))
	}
	if (note{letterC, 4}).displayName(true) != "C4" {
		t.Error("Expected german naming to only change B")
	}
}

func TestPitchName(t *testing.T) {
	cases := map[uint8]string{60: "C4", 61: "C#4", 71: "B4", 0: "C-1", 127: "G9"}
	for pitch, expected := range cases {
		if pitchName(pitch) != expected {
			t.Errorf("Expected %d to be %s, got %s", pitch, expected, pitchName(pitch))
		}
	}
}
