package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/csheth/fotoquantum/internal/audio"
	"github.com/csheth/fotoquantum/internal/config"
	"github.com/csheth/fotoquantum/internal/quiz"
	"github.com/csheth/fotoquantum/internal/telemetry"
	"github.com/csheth/fotoquantum/internal/tui"
)

var errNoTerminal = errors.New("fotoquantum needs an interactive terminal (try fotoquantum-gui)")

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cmd.Flags())
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "fotoquantum")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
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

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.New(tui.Config{
		Settings:      cfg,
		Bank:          bank,
		Metrics:       metrics,
		Audio:         player,
		Rand:          cfg.Rand(),
		MarkdownStyle: markdownStyle(cfg.ASCII),
	}), opts...)

	log.Printf("[shell] starting %s (mode=%s, fps=%d, questions=%d)", config.Version, cfg.Mode, cfg.FPS, bank.Len())
	_, runErr := program.Run()
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		log.Printf("[shell] %v", err)
		if runErr == nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("program error: %w", runErr)
	}
	return nil
}

// markdownStyle picks the colour profile for lipgloss and the matching glamour
// style for explanations.
func markdownStyle(ascii bool) string {
	profile := termenv.EnvColorProfile()
	if ascii {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)
	switch {
	case profile == termenv.Ascii:
		return "ascii"
	case termenv.HasDarkBackground():
		return "dark"
	default:
		return "light"
	}
}
