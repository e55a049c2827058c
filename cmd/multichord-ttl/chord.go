package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/multichord-go/pkg/multichord/chord"
	"gitlab.com/gomidi/midi/v2"
)

var (
	presetName string
	channel    uint8
	note       uint8
	velocity   uint8
	noteOff    bool
)

func newChordCmd() *cobra.Command {
	chordCmd := &cobra.Command{
		Use:   "chord",
		Short: "Show the chord produced for a single note",
		Long: `Apply a chord preset to one note event and print the resulting MIDI
messages, one per line.

Examples:
  multichord-ttl chord --preset major --note 60
  multichord-ttl chord --preset minor --note 62 --velocity 80 --off`,
		Args: cobra.NoArgs,
		RunE: runChord,
	}

	chordCmd.Flags().StringVar(&presetName, "preset", chord.PresetDefault,
		"Chord preset: "+strings.Join(chord.Presets(), ", "))
	chordCmd.Flags().Uint8Var(&channel, "channel", 0, "MIDI channel (0-15)")
	chordCmd.Flags().Uint8Var(&note, "note", 60, "MIDI note number (0-127)")
	chordCmd.Flags().Uint8Var(&velocity, "velocity", 100, "Note velocity (0-127)")
	chordCmd.Flags().BoolVar(&noteOff, "off", false, "Send a note-off instead of a note-on")

	return chordCmd
}

func runChord(cmd *cobra.Command, args []string) error {
	if channel > 15 || note > 127 || velocity > 127 {
		return fmt.Errorf("channel, note or velocity out of range: %d/%d/%d", channel, note, velocity)
	}

	m, err := chord.LoadPreset(presetName)
	if err != nil {
		return err
	}

	msg := midi.NoteOn(channel, note, velocity)
	if noteOff {
		msg = midi.NoteOffVelocity(channel, note, velocity)
	}

	out := m.Apply(msg)
	logger.Debug("applied preset", "preset", presetName, "in", msg.String(), "voices", len(out))

	for _, o := range out {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), o.String()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
