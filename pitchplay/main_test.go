package main

import (
	"context"
	"io"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestMainModel(t *testing.T, stngs settings) mainModel {
	t.Helper()
	keeper, _ := newTestKeeper(3)
	tm := initialTrainModel(keeper, &pitchQueue{}, stngs)
	return initialMainModel(context.Background(), tm, nil, stngs)
}

func update(t *testing.T, m mainModel, msg tea.Msg) (mainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(mainModel)
	require.True(t, ok)
	return mm, cmd
}

func TestScanErrorStartsTrainingWithoutDevice(t *testing.T) {
	m := newTestMainModel(t, defaultSettings())
	assert.Equal(t, scanDevices, m.state)

	m, cmd := update(t, m, devicesScannedMsg{err: assert.AnError})
	assert.Equal(t, training, m.state)
	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.trainModel.device())
}

func TestSingleInputStartsTraining(t *testing.T) {
	m := newTestMainModel(t, defaultSettings())
	m, _ = update(t, m, devicesScannedMsg{names: []string{"Launchkey Mini MK3"}})
	assert.Equal(t, training, m.state)
}

func TestChooseDeviceWithEnter(t *testing.T) {
	m := newTestMainModel(t, defaultSettings())
	m, _ = update(t, m, devicesScannedMsg{names: []string{"USB Keystation 49", "Digital Piano"}})
	require.Equal(t, chooseDevice, m.state)
	assert.Contains(t, m.View(), "Choose your MIDI keyboard")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, training, m.state)
	assert.Equal(t, "USB Keystation 49", m.selectDeviceModel.selected)
}

func TestChooseDeviceWithEscape(t *testing.T) {
	m := newTestMainModel(t, defaultSettings())
	m, _ = update(t, m, devicesScannedMsg{names: []string{"USB Keystation 49", "Digital Piano"}})
	require.Equal(t, chooseDevice, m.state)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, training, m.state)
	assert.Equal(t, "", m.selectDeviceModel.selected)
}

func TestNeedsDeviceChoice(t *testing.T) {
	names := []string{"USB Keystation 49", "Launchkey Mini MK3"}

	stngs := defaultSettings()
	assert.True(t, needsDeviceChoice(names, stngs))
	assert.False(t, needsDeviceChoice(names[:1], stngs))
	assert.False(t, needsDeviceChoice(nil, stngs))

	stngs.Device = "keystation"
	assert.False(t, needsDeviceChoice(names, stngs))

	stngs = defaultSettings()
	stngs.PreferredDevices = []string{"launchkey"}
	assert.False(t, needsDeviceChoice(names, stngs))

	stngs.PreferredDevices = []string{"roland"}
	assert.True(t, needsDeviceChoice(names, stngs))
}

func TestWindowSizeReachesTrainerWhileScanning(t *testing.T) {
	m := newTestMainModel(t, defaultSettings())
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 37, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, scanDevices, m.state)
	assert.Equal(t, 37, m.trainModel.width)
}

func TestForceQuit(t *testing.T) {
	m := newTestMainModel(t, defaultSettings())
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNewRandSourceIsDeterministicWithSeed(t *testing.T) {
	a, b := newRandSource(9), newRandSource(9)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
