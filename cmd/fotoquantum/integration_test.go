package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/csheth/fotoquantum/internal/tuitest"
)

func TestFotoQuantumModeTour(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the real binary")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	metrics := filepath.Join(t.TempDir(), "fotoquantum.prom")

	script := (&tuitest.Script{}).
		WaitFor("QUANTUM LEAP").
		Press(tuitest.KeySpace).
		Type("2").
		WaitFor("QUANTUM QUIZ").
		Type("a").
		WaitFor("hide answer").
		Type("3").
		WaitFor("STAR MODE").
		Type("u").
		WaitFor("UV light energising the star").
		Press(tuitest.KeyCtrlC)

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--seed", "42", "--fps", "30", "--metrics-file", metrics},
		Dir:     cmdDir,
		Width:   110,
		Height:  36,
		Steps:   script.Steps(),
		Timeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	// The renderer repaints only changed lines, so each marker is looked up
	// on its own.
	for _, want := range []string{"QUANTUM LEAP", "QUANTUM QUIZ", "hide answer", "STAR MODE", "UV light energising the star"} {
		if _, ok := rec.LastFrameContaining(want); !ok {
			t.Fatalf("no frame showed %q", want)
		}
	}

	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	for _, want := range []string{
		`fotoquantum_mode_switches_total{mode="star"} 1`,
		`fotoquantum_quiz_answers_revealed_total 1`,
		`fotoquantum_star_phases_total{phase="uv_glow"} 1`,
	} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("metrics missing %q\n%s", want, data)
		}
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "fotoquantum-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
