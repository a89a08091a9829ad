package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnvVar  = "PITCHPLAY_CONFIG"
	dataFolderName    = ".pitchplay"
	defaultConfigName = "config.yaml"
)

type settings struct {
	Device           string        `yaml:"device"`
	PreferredDevices []string      `yaml:"preferredDevices"`
	ExcludedDevices  []string      `yaml:"excludedDevices"`
	FrameInterval    time.Duration `yaml:"frameInterval"`
	RescanInterval   time.Duration `yaml:"rescanInterval"`
	GermanNoteNames  bool          `yaml:"germanNoteNames"`
	Mute             bool          `yaml:"mute"`
	WrongSoundPath   string        `yaml:"wrongSound"`
	Seed             int64         `yaml:"seed"` // 0 seeds from the clock
	Debug            bool          `yaml:"debug"`
	LogFile          string        `yaml:"logFile"`
	StaffWidth       int           `yaml:"staffWidth"`
}

func defaultSettings() settings {
	return settings{
		PreferredDevices: []string{},
		ExcludedDevices:  defaultExcludedDevices,
		FrameInterval:    16 * time.Millisecond,
		RescanInterval:   time.Second,
		LogFile:          "debug.log",
		StaffWidth:       48,
	}
}

// defaultConfigPath is ~/.pitchplay/config.yaml
func defaultConfigPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dataFolderName, defaultConfigName), nil
}

// resolveConfigPath picks the flag, then the environment variable, then the
// default location. required is false only for the default location.
func resolveConfigPath(flagPath string) (path string, required bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if envPath := os.Getenv(configPathEnvVar); envPath != "" {
		return envPath, true
	}
	defPath, err := defaultConfigPath()
	if err != nil {
		return "", false
	}
	return defPath, false
}

// loadSettings overlays the yaml file at path on top of base
func loadSettings(base settings, path string, required bool) (settings, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, errors.Wrap(err, "read config")
	}

	stngs := base
	if err := yaml.Unmarshal(data, &stngs); err != nil {
		return base, errors.Wrapf(err, "parse config %s", path)
	}
	if err := stngs.validate(); err != nil {
		return base, errors.Wrapf(err, "config %s", path)
	}
	return stngs, nil
}

func (s settings) validate() error {
	if s.FrameInterval <= 0 {
		return errors.New("frameInterval must be positive")
	}
	if s.RescanInterval <= 0 {
		return errors.New("rescanInterval must be positive")
	}
	if s.StaffWidth < 16 {
		return errors.New("staffWidth must be at least 16")
	}
	return nil
}
