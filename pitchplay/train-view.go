package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// one terminal row per staff step
var terminalStaff = staffGeometry{top: 1, lineSpacing: 2}

const (
	staffLineRune = '─'
	stemRune      = '│'
	stemCrossRune = '┼'
	noteheadRune  = '●'
	trebleClef    = '𝄞'
	stemLength    = 3
)

var staffStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#c0c0c0"))

var staffBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(pinkAccentColor)).
	Padding(0, 1)

var noteStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(logoColor)).
	Bold(true)

func staffRow(y float64) int {
	return int(math.Round(y))
}

// renderStaff draws the five lines, the clef and the note without any styling
func renderStaff(n note, g staffGeometry, width int) []string {
	pos := g.position(n)
	noteRow := staffRow(pos.y)

	height := staffRow(g.bottom()) + stemLength + 1
	if noteRow+stemLength+1 > height {
		height = noteRow + stemLength + 1
	}
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	for i := 0; i < staffLineCount; i++ {
		row := grid[staffRow(g.top+float64(i)*g.lineSpacing)]
		for c := range row {
			row[c] = staffLineRune
		}
	}

	// the G clef curls around the G4 line
	grid[staffRow(g.noteY(note{letterG, 4}))][1] = trebleClef

	col := width / 2
	if pos.ledgerLine {
		for c := col - 2; c <= col+2; c++ {
			grid[noteRow][c] = staffLineRune
		}
	}
	grid[noteRow][col] = noteheadRune

	stemCol, dir := col+1, -1
	if pos.stemDown {
		stemCol, dir = col-1, 1
	}
	for i := 1; i <= stemLength; i++ {
		r := noteRow + dir*i
		if r < 0 || r >= height {
			continue
		}
		if grid[r][stemCol] == staffLineRune {
			grid[r][stemCol] = stemCrossRune
		} else {
			grid[r][stemCol] = stemRune
		}
	}

	lines := make([]string, height)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return lines
}

func styledStaff(lines []string) string {
	sb := strings.Builder{}
	for i, line := range lines {
		for _, r := range line {
			if r == noteheadRune || r == stemRune || r == stemCrossRune {
				sb.WriteString(noteStyle.Render(string(r)))
			} else {
				sb.WriteString(staffStyle.Render(string(r)))
			}
		}
		if i < len(lines)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func feedbackString(r round, german bool) string {
	switch r.result {
	case judgmentCorrect:
		return greenTextStyle.Render("✓ Correct! " + r.target.displayName(german))
	case judgmentIncorrect:
		return redTextStyle.Render("✕ Wrong!")
	default:
		return " "
	}
}

func (m trainModel) deviceString() string {
	name := m.device()
	if name == "" {
		return orangeTextStyle.Render("No MIDI keyboard connected. Press space to skip notes.")
	}
	return greenTextStyle.Render("Connected to " + name)
}

func (m trainModel) statsString() string {
	ss := m.keeper.sessionStats()
	return grayTextStyle.Render(fmt.Sprintf("correct %d  wrong %d  skipped %d  streak %d (best %d)  accuracy %.0f%%",
		ss.correct, ss.wrong, ss.skipped, ss.streak, ss.bestStreak, ss.accuracy()*100))
}

func (m trainModel) View() string {
	r := m.keeper.current()

	staffWidth := m.settings.StaffWidth
	if m.width > 0 && m.width-4 < staffWidth {
		staffWidth = m.width - 4
	}
	if staffWidth < 16 {
		staffWidth = 16
	}

	sb := strings.Builder{}
	sb.WriteString(headerStyle.Render("♫ Pitchplay") + "\n")
	sb.WriteString("Play the note on your MIDI keyboard\n")
	sb.WriteString(m.deviceString() + "\n\n")
	sb.WriteString(staffBoxStyle.Render(styledStaff(renderStaff(r.target, terminalStaff, staffWidth))) + "\n\n")
	sb.WriteString(feedbackString(r, m.settings.GermanNoteNames) + "\n")

	m.advanceBar.Width = staffWidth
	sb.WriteString(m.advanceBar.ViewAs(m.keeper.advanceProgress(m.lastFrame)) + "\n\n")

	sb.WriteString(m.statsString() + "\n")
	sb.WriteString(grayTextStyle.Render("space: skip • q: quit"))
	return sb.String()
}
