package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// midiWatcher keeps a connection to one MIDI input and pushes the key of
// every note-on into a pitchQueue. It reconnects when the device is
// unplugged and plugged back in.
type midiWatcher struct {
	mu           sync.Mutex
	drv          drivers.Driver
	inPort       drivers.In
	stopFn       func()
	connected    bool
	selectedName string
	closed       bool

	device    string   // input chosen by the user, matched as a substring
	preferred []string // substrings tried before falling back to the first input
	excluded  []string // substrings of ports that are never used

	onPitch func(pitch uint8)
}

func newMidiWatcher(stngs settings, onPitch func(pitch uint8)) (*midiWatcher, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, errors.Wrap(err, "rtmididrv")
	}
	return &midiWatcher{
		drv:       drv,
		device:    stngs.Device,
		preferred: stngs.PreferredDevices,
		excluded:  stngs.ExcludedDevices,
		onPitch:   onPitch,
	}, nil
}

// inputs lists the usable input names
func (m *midiWatcher) inputs() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listInputs()
}

func (m *midiWatcher) selectDevice(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.device = name
}

// connectedDevice returns the name of the open input, "" when there is none
func (m *midiWatcher) connectedDevice() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ""
	}
	return m.selectedName
}

// run rescans the inputs every interval until ctx is done
func (m *midiWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.rescan()
	for {
		select {
		case <-ctx.Done():
			m.close()
			return
		case <-ticker.C:
			m.rescan()
		}
	}
}

func (m *midiWatcher) close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.closeConn()
	if err := m.drv.Close(); err != nil {
		log.Warn("midi: driver close failed", "err", err)
	}
}

func (m *midiWatcher) rescan() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}

	names, err := m.listInputs()
	if err != nil {
		log.Error("midi: list inputs failed", "err", err)
		return
	}

	if m.connected {
		for _, n := range names {
			if n == m.selectedName {
				return
			}
		}
		log.Warn("midi: device disappeared", "device", m.selectedName)
		m.closeConn()
		return
	}

	cand, ok := pickInput(names, m.device, m.preferred)
	if !ok {
		return
	}
	if err := m.openByName(cand); err != nil {
		log.Error("midi: connect failed", "device", cand, "err", err)
	}
}

func (m *midiWatcher) listInputs() ([]string, error) {
	ins, err := m.drv.Ins()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	usable := filterInputs(names, m.excluded)
	log.Debug("midi: inputs found", "count", len(usable), "devices", strings.Join(usable, ", "))
	return usable, nil
}

func (m *midiWatcher) closeConn() {
	if m.stopFn != nil {
		m.stopFn()
		m.stopFn = nil
	}
	if m.inPort != nil {
		_ = m.inPort.Close()
		m.inPort = nil
	}
	m.connected = false
	m.selectedName = ""
}

func (m *midiWatcher) openByName(name string) error {
	ins, err := m.drv.Ins()
	if err != nil {
		return err
	}
	var found drivers.In
	for _, in := range ins {
		if in.String() == name {
			found = in
			break
		}
	}
	if found == nil {
		return errors.Errorf("input %q not found", name)
	}
	if err := found.Open(); err != nil {
		return errors.Wrapf(err, "open %q", name)
	}

	stop, err := midi.ListenTo(found, func(msg midi.Message, _ int32) {
		if pitch, ok := decodePitch(msg); ok {
			m.onPitch(pitch)
		}
	}, midi.HandleError(func(listenErr error) {
		log.Warn("midi: listener error", "device", name, "err", listenErr)
		// the listener goroutine must not take the lock itself
		go func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.connected && m.selectedName == name {
				m.closeConn()
			}
		}()
	}))
	if err != nil {
		_ = found.Close()
		return errors.Wrapf(err, "listen %q", name)
	}

	m.inPort = found
	m.stopFn = stop
	m.connected = true
	m.selectedName = name
	log.Info("midi: connected", "device", name)
	return nil
}

// decodePitch turns a note-on into a pitch id. Note-offs, including
// note-ons with zero velocity, are ignored.
func decodePitch(msg midi.Message) (uint8, bool) {
	var ch, key, vel uint8
	if msg.GetNoteStart(&ch, &key, &vel) {
		return key, true
	}
	return 0, false
}

var defaultExcludedDevices = []string{"Midi Through", "Through Port", "Dummy"}

func filterInputs(names []string, excluded []string) []string {
	usable := make([]string, 0, len(names))
	for _, name := range names {
		skip := false
		for _, pat := range excluded {
			if containsCI(name, pat) {
				skip = true
				break
			}
		}
		if !skip {
			usable = append(usable, name)
		}
	}
	return usable
}

// pickInput prefers the chosen device, then the preferred patterns in order,
// then the first input
func pickInput(names []string, device string, preferred []string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}
	if device != "" {
		for _, name := range names {
			if containsCI(name, device) {
				return name, true
			}
		}
		// a configured device that is not plugged in yet is waited for
		return "", false
	}
	for _, pat := range preferred {
		for _, name := range names {
			if containsCI(name, pat) {
				return name, true
			}
		}
	}
	return names[0], true
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
