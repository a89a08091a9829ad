package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "pitchplay",
		Short:         "Sight-reading trainer: play the note shown on the staff on your MIDI keyboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			stngs, err := settingsFor(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			return runTrainer(stngs)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.pitchplay/config.yaml, or $"+configPathEnvVar+")")
	registerFlags(rootCmd.Flags())

	rootCmd.AddCommand(newDevicesCmd(&configPath))
	return rootCmd
}

func newDevicesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List the MIDI inputs pitchplay can listen to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stngs, err := settingsFor(cmd.Flags(), *configPath)
			if err != nil {
				return err
			}
			watcher, err := newMidiWatcher(stngs, func(uint8) {})
			if err != nil {
				return err
			}
			defer watcher.close()

			names, err := watcher.inputs()
			if err != nil {
				return err
			}
			printDevices(cmd, names)
			return nil
		},
	}
}

func printDevices(cmd *cobra.Command, names []string) {
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No MIDI inputs found.")
		return
	}
	for i, name := range names {
		fmt.Fprintf(out, "%d: %s\n", i, name)
	}
}

// settingsFor layers defaults, the config file and the flags that were set
func settingsFor(flags *pflag.FlagSet, configPath string) (settings, error) {
	path, required := resolveConfigPath(configPath)
	stngs, err := loadSettings(defaultSettings(), path, required)
	if err != nil {
		return stngs, err
	}
	return applyFlags(stngs, flags)
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("device", "", "MIDI input to listen to (case insensitive substring)")
	flags.Bool("mute", false, "disable feedback sounds")
	flags.Bool("german", false, "use German note names (H instead of B)")
	flags.Int64("seed", 0, "random seed for note selection, 0 uses the clock")
	flags.Bool("debug", false, "log at debug level")
	flags.String("log-file", "", "log file (default debug.log)")
	flags.String("wrong-sound", "", ".wav or .ogg file played on a wrong answer")
	flags.Int("staff-width", 0, "width of the staff in columns")
}

// applyFlags only overrides what was given on the command line
func applyFlags(stngs settings, flags *pflag.FlagSet) (settings, error) {
	var err error
	if flags.Changed("device") {
		if stngs.Device, err = flags.GetString("device"); err != nil {
			return stngs, err
		}
	}
	if flags.Changed("mute") {
		if stngs.Mute, err = flags.GetBool("mute"); err != nil {
			return stngs, err
		}
	}
	if flags.Changed("german") {
		if stngs.GermanNoteNames, err = flags.GetBool("german"); err != nil {
			return stngs, err
		}
	}
	if flags.Changed("seed") {
		if stngs.Seed, err = flags.GetInt64("seed"); err != nil {
			return stngs, err
		}
	}
	if flags.Changed("debug") {
		if stngs.Debug, err = flags.GetBool("debug"); err != nil {
			return stngs, err
		}
	}
	if flags.Changed("log-file") {
		if stngs.LogFile, err = flags.GetString("log-file"); err != nil {
			return stngs, err
		}
	}
	if flags.Changed("wrong-sound") {
		if stngs.WrongSoundPath, err = flags.GetString("wrong-sound"); err != nil {
			return stngs, err
		}
	}
	if flags.Changed("staff-width") {
		if stngs.StaffWidth, err = flags.GetInt("staff-width"); err != nil {
			return stngs, err
		}
	}
	return stngs, stngs.validate()
}
