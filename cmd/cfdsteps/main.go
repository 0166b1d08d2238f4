package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/san-kum/cfdsteps/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	palette    string
	frameRate  int
	frames     int
	advances   int
)

// main registers the commands and runs the window frontend when no command
// is given. It exits with status 1 on error.
func main() {
	log.SetPrefix("[CFDSTEPS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfdsteps",
		Short: "step through twelve finite-difference flow schemes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDefault,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&palette, "palette", "",
		"colour palette: "+strings.Join(viz.PaletteNames(), ", ")+" (overrides config)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", 0, "frame rate (overrides config)")

	guiCmd := &cobra.Command{
		Use:   "gui [scheme]",
		Short: "open the raylib window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [scheme]",
		Short: "run in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [scheme]",
		Short: "advance a scheme headless and print the final field",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 120, "frames to simulate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list schemes",
		Args:  cobra.NoArgs,
		RunE:  listSchemes,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark every scheme",
		Args:  cobra.NoArgs,
		RunE:  benchSchemes,
	}
	benchCmd.Flags().IntVar(&advances, "advances", 500, "advances per scheme")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [scheme]",
		Short: "power spectrum of a field profile",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrum,
	}
	spectrumCmd.Flags().IntVar(&frames, "frames", 120, "frames to simulate first")

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, benchCmd, spectrumCmd)
	return rootCmd
}
