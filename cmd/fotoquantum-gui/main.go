package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/csheth/fotoquantum/internal/audio"
	"github.com/csheth/fotoquantum/internal/config"
	"github.com/csheth/fotoquantum/internal/gui"
	"github.com/csheth/fotoquantum/internal/quiz"
	"github.com/csheth/fotoquantum/internal/telemetry"
)

var rootCmd = &cobra.Command{
	Use:           "fotoquantum-gui",
	Short:         "Explore electron energy levels, photons and fluorescence in a desktop window",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	config.Register(rootCmd.Flags())
	rootCmd.Flags().Float64("scale", config.Default().Scale, "window scale factor")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cmd.Flags())
	if err != nil {
		return err
	}

	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	bank := quiz.DefaultBank()
	if cfg.Questions != "" {
		if bank, err = quiz.LoadBank(cfg.Questions); err != nil {
			return err
		}
	}

	metrics := telemetry.New()
	player := audio.Open(cfg.Sound, cfg.Volume)
	defer player.Close()

	game := gui.NewGame(gui.Config{
		Settings: cfg,
		Bank:     bank,
		Metrics:  metrics,
		Audio:    player,
	})
	ebiten.SetWindowSize(int(gui.ScreenWidth*cfg.Scale), int(gui.ScreenHeight*cfg.Scale))
	ebiten.SetWindowTitle("FotoQuantum - 1/2/3: modes, ?: help, Esc/Q: quit")
	ebiten.SetTPS(cfg.FPS)

	log.Printf("[shell] starting %s window (mode=%s, tps=%d)", config.Version, cfg.Mode, cfg.FPS)
	runErr := ebiten.RunGame(game)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil && runErr == nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("window error: %w", runErr)
	}
	return nil
}
