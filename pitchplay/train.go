package main

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// trainModel is the frame loop. Each frame drains the pitch queue, judges
// what arrived and then checks whether the next round is due.
type trainModel struct {
	keeper   *roundKeeper
	queue    *pitchQueue
	device   func() string // name of the connected input, "" when none
	sounds   *feedbackSounds
	speaker  soundPlayer
	settings settings

	advanceBar progress.Model
	lastFrame  time.Time
	width      int
}

type tickMsg time.Time

func timerCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func initialTrainModel(keeper *roundKeeper, queue *pitchQueue, stngs settings) trainModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = stngs.StaffWidth

	return trainModel{
		keeper:     keeper,
		queue:      queue,
		device:     func() string { return "" },
		settings:   stngs,
		advanceBar: bar,
		width:      stngs.StaffWidth,
	}
}

func (m trainModel) withSound(sounds *feedbackSounds, spkr soundPlayer) trainModel {
	m.sounds = sounds
	m.speaker = spkr
	return m
}

func (m trainModel) withDevice(device func() string) trainModel {
	m.device = device
	return m
}

func (m trainModel) Init() tea.Cmd {
	return timerCmd(m.settings.FrameInterval)
}

func (m trainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m = m.processFrame(time.Time(msg))
		return m, timerCmd(m.settings.FrameInterval)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.keeper.skip()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m trainModel) processFrame(now time.Time) trainModel {
	m.lastFrame = now

	judgments := m.keeper.judge(m.queue.drain())
	if len(judgments) > 0 {
		m.playFeedback(judgments[len(judgments)-1])
	}

	if m.keeper.tick(now) {
		log.Debug("advanced after correct answer", "note", m.keeper.current().target)
	}
	return m
}

// only the latest judgment of a frame is heard
func (m trainModel) playFeedback(j judgment) {
	if m.sounds == nil || m.speaker == nil {
		return
	}
	switch j {
	case judgmentCorrect:
		m.speaker.play(m.sounds.correctFor(m.keeper.current().target), m.sounds.format)
	case judgmentIncorrect:
		m.speaker.play(m.sounds.wrong(), m.sounds.format)
	}
}
