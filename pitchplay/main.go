package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type sessionState int

const (
	scanDevices sessionState = iota
	chooseDevice
	training
)

type mainModel struct {
	state             sessionState
	spinner           spinner.Model
	selectDeviceModel selectDeviceModel
	trainModel        trainModel
	watcher           *midiWatcher // nil when the MIDI driver is unavailable
	ctx               context.Context
	settings          settings
}

type devicesScannedMsg struct {
	names []string
	err   error
}

func initialMainModel(ctx context.Context, tm trainModel, watcher *midiWatcher, stngs settings) mainModel {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return mainModel{
		state:      scanDevices,
		spinner:    s,
		trainModel: tm,
		watcher:    watcher,
		ctx:        ctx,
		settings:   stngs,
	}
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(scanDevicesCmd(m.watcher), m.spinner.Tick)
}

func scanDevicesCmd(watcher *midiWatcher) tea.Cmd {
	return func() tea.Msg {
		if watcher == nil {
			return devicesScannedMsg{err: fmt.Errorf("no MIDI driver")}
		}
		names, err := watcher.inputs()
		return devicesScannedMsg{names, err}
	}
}

// watchDevicesCmd blocks for the lifetime of the program, it is the MIDI
// listener's goroutine
func watchDevicesCmd(ctx context.Context, watcher *midiWatcher, interval time.Duration) tea.Cmd {
	return func() tea.Msg {
		watcher.run(ctx, interval)
		return nil
	}
}

// needsDeviceChoice is true when the user has to pick between inputs
func needsDeviceChoice(names []string, stngs settings) bool {
	if stngs.Device != "" || len(names) <= 1 {
		return false
	}
	for _, pat := range stngs.PreferredDevices {
		for _, name := range names {
			if containsCI(name, pat) {
				return false
			}
		}
	}
	return true
}

func (m mainModel) startTraining(listen bool, device string) (mainModel, tea.Cmd) {
	m.state = training
	cmds := []tea.Cmd{m.trainModel.Init()}
	if listen && m.watcher != nil {
		if device != "" {
			m.watcher.selectDevice(device)
		}
		m.trainModel = m.trainModel.withDevice(m.watcher.connectedDevice)
		cmds = append(cmds, watchDevicesCmd(m.ctx, m.watcher, m.settings.RescanInterval))
	}
	log.Info("training started", "listening", listen && m.watcher != nil, "device", device)
	return m, tea.Batch(cmds...)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if isForceQuitMsg(msg) {
		log.Info("Force quit")
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// the training screen may not be active yet but still needs the size
		tm, _ := m.trainModel.Update(msg)
		m.trainModel = tm.(trainModel)
		return m, nil
	case devicesScannedMsg:
		if msg.err != nil {
			log.Warn("MIDI input unavailable, continuing without", "err", msg.err)
			return m.startTraining(false, "")
		}
		log.Info("MIDI inputs scanned", "count", len(msg.names))
		if needsDeviceChoice(msg.names, m.settings) {
			m.selectDeviceModel = initialSelectDeviceModel(msg.names)
			m.state = chooseDevice
			return m, m.selectDeviceModel.Init()
		}
		return m.startTraining(true, "")
	}

	switch m.state {
	case scanDevices:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case chooseDevice:
		sdm, cmd := m.selectDeviceModel.Update(msg)
		m.selectDeviceModel = sdm.(selectDeviceModel)
		if m.selectDeviceModel.done {
			chosen := m.selectDeviceModel.selected
			return m.startTraining(chosen != "", chosen)
		}
		return m, cmd
	case training:
		tm, cmd := m.trainModel.Update(msg)
		m.trainModel = tm.(trainModel)
		return m, cmd
	}
	return m, nil
}

func (m mainModel) View() string {
	switch m.state {
	case scanDevices:
		return m.spinner.View() + " " + orangeTextStyle.Render("Looking for MIDI keyboards...")
	case chooseDevice:
		return m.selectDeviceModel.View()
	case training:
		return m.trainModel.View()
	}
	return "No view"
}

func isForceQuitMsg(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	return ok && keyMsg.String() == "ctrl+c"
}

func setupLogging(stngs settings) (*os.File, error) {
	f, err := tea.LogToFile(stngs.LogFile, "pitchplay")
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	if stngs.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return f, nil
}

func newRandSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func runTrainer(stngs settings) error {
	f, err := setupLogging(stngs)
	if err != nil {
		return err
	}
	defer f.Close()

	queue := &pitchQueue{}
	keeper := newRoundKeeper(newRandSource(stngs.Seed), time.Now)
	tm := initialTrainModel(keeper, queue, stngs)

	if !stngs.Mute {
		sounds, err := loadFeedbackSounds(stngs.WrongSoundPath)
		if err != nil {
			log.Error("feedback sounds unavailable", "err", err)
		} else {
			spkr := &ppSpeaker{}
			defer spkr.clear()
			tm = tm.withSound(&sounds, spkr)
		}
	}

	watcher, err := newMidiWatcher(stngs, queue.push)
	if err != nil {
		log.Error("MIDI driver unavailable", "err", err)
	} else {
		defer watcher.close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(initialMainModel(ctx, tm, watcher, stngs), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
