package main

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

const (
	logoColor         = "#07edc3"
	selectedItemColor = logoColor
	yellowAccentColor = "#f0f007"
	pinkAccentColor   = "#ee6ff8"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

var redTextStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FF0000"))

var greenTextStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#00FF00"))

var orangeTextStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFA500"))

var grayTextStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#626262"))

var listTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(yellowAccentColor)).
	Bold(true).
	Padding(0, 1, 0, 1)

var deviceListStyle = lipgloss.NewStyle().
	Padding(1, 1, 1, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(yellowAccentColor)).
	Width(60)

func styleList(list *list.Model) {
	list.Styles.Title = listTitleStyle
}

func createListDd() list.DefaultDelegate {
	dd := list.NewDefaultDelegate()
	dd.ShowDescription = false
	dd.SetSpacing(0)

	selectedTitleBorder := lipgloss.Border{
		Left: "♪",
	}
	dd.Styles.SelectedTitle = dd.Styles.SelectedTitle.Foreground(lipgloss.Color(selectedItemColor)).
		BorderStyle(selectedTitleBorder).
		BorderForeground(lipgloss.Color(pinkAccentColor))

	return dd
}

func setupKeymapForList(list *list.Model) {
	list.KeyMap.NextPage.SetKeys("right", "d")
	list.KeyMap.PrevPage.SetKeys("left", "a")
	list.KeyMap.CursorDown.SetKeys("down", "s", "j")
	list.KeyMap.CursorUp.SetKeys("up", "w", "k")
}
