package tuitest

import (
	"regexp"
	"strings"
)

// Frame is the screen between two clears, kept raw and as plain text.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	// Erase-in-display starts a new frame.
	clearScreen = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	// CSI and OSC sequences, plus the shift-in/shift-out bytes some
	// terminfo entries emit.
	escapes = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|[\x0e\x0f]`)
)

func parseFrames(raw []byte) []Frame {
	text := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, part := range clearScreen.Split(text, -1) {
		part = strings.TrimPrefix(strings.Trim(part, "\x00"), "\x1b[H")
		plain := tidy(stripANSI(part))
		if plain == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: part, Plain: plain})
	}
	if frames == nil && text != "" {
		frames = []Frame{{ANSI: text, Plain: tidy(stripANSI(text))}}
	}
	return frames
}

// FinalFrame returns the last frame, or false when nothing was drawn.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// LastFrameContaining returns the most recent frame whose plain text holds
// every needle.
func (r *Recording) LastFrameContaining(needles ...string) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for i := len(r.Frames) - 1; i >= 0; i-- {
		if r.Frames[i].Contains(needles...) {
			return r.Frames[i], true
		}
	}
	return Frame{}, false
}

// Contains reports whether the plain text holds every needle.
func (f Frame) Contains(needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(f.Plain, n) {
			return false
		}
	}
	return true
}

func stripANSI(s string) string {
	return escapes.ReplaceAllString(s, "")
}

// tidy drops trailing blanks on each line and trailing empty lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
