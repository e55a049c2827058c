// Package main provides the CLI entry point for multichord-ttl.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/multichord-go/pkg/multichord"
	"github.com/ukaji3/multichord-go/pkg/multichord/output"
)

var (
	outputPath string
	format     string
	pretty     bool
	xlsxPath   string
	verbose    bool
)

var logger = slog.Default()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "multichord-ttl",
		Short: "Generate the LV2 descriptor of the MIDI Multi-Chord plugin",
		Long: `multichord-ttl writes the Turtle description of the MIDI Multi-Chord
plugin: two MIDI ports plus offset and velocity controls for 4 voices
on each of the 12 notes of the octave.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(cmd.ErrOrStderr(), verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&format, "format", string(multichord.FormatTurtle), "Output format: ttl, json")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the port table to an xlsx workbook")

	rootCmd.AddCommand(newChordCmd())
	return rootCmd
}

func initLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, args []string) error {
	f, err := multichord.ParseFormat(format)
	if err != nil {
		return err
	}

	opts := multichord.DefaultOptions()
	opts.Format = f
	opts.Pretty = pretty

	// Render before touching the output file
	var buf bytes.Buffer
	if err := multichord.Render(&buf, opts); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Debug("rendered descriptor", "format", opts.Format, "bytes", buf.Len())

	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Debug("wrote descriptor", "path", outputPath)
	} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return multichord.NewEmitError(opts.Format, err)
	}

	if xlsxPath != "" {
		if err := output.SaveWorkbook(multichord.Describe(), xlsxPath); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		logger.Debug("wrote port table", "path", xlsxPath)
	}

	return nil
}
