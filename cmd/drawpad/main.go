package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"drawpad/internal/app"
	"drawpad/internal/platform/desktop"
)

func main() {
	var (
		cfg   app.Config
		debug bool
	)

	rootCmd := &cobra.Command{
		Use:   "drawpad",
		Short: "Minimal pixel drawing app",
		Long: `DrawPad opens an 800x600 canvas with two tools: a centered
solid rectangle and a random block mosaic.`,
		Example: `  # Open the app
  drawpad

  # Reproducible mosaics at double window size
  drawpad --seed 42 --scale 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetOutput(os.Stderr)
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			logrus.SetLevel(logrus.InfoLevel)
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return app.New(cfg, desktop.New()).Run()
		},
	}

	rootCmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "Seed for mosaic colors (0 picks a random seed)")
	rootCmd.Flags().Float64Var(&cfg.Scale, "scale", 1.0, "Window scale factor (1.0-3.0)")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "drawpad failed: %v\n", err)
		os.Exit(1)
	}
}
