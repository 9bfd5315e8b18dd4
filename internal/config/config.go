package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config wires runtime options into both front ends.
type Config struct {
	Questions   string  `mapstructure:"questions"`
	Mode        string  `mapstructure:"mode"`
	FPS         int     `mapstructure:"fps"`
	Seed        int64   `mapstructure:"seed"`
	Sound       bool    `mapstructure:"sound"`
	Volume      float64 `mapstructure:"volume"`
	MetricsFile string  `mapstructure:"metrics_file"`
	LogFile     string  `mapstructure:"log_file"`
	AltScreen   bool    `mapstructure:"alt_screen"`
	ASCII       bool    `mapstructure:"ascii"`
	Scale       float64 `mapstructure:"scale"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Mode:      "leap",
		FPS:       60,
		Volume:    0.6,
		AltScreen: true,
		Scale:     2,
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.FPS < 10 || c.FPS > 240:
		return fmt.Errorf("%w: fps must be within [10, 240], got %d", ErrInvalid, c.FPS)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume must be within [0, 1], got %g", ErrInvalid, c.Volume)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalid, c.Scale)
	}
	return nil
}

// FrameInterval is the delay between animation frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Rand returns a source seeded from Seed, or from the clock when Seed is 0.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// LoadFile overlays a YAML config file on top of base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg := base
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return base, err
	}
	if err := decoder.Decode(raw); err != nil {
		return base, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return cfg, nil
}

// Register adds the shared flags to fs.
func Register(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "path to a YAML config file")
	fs.String("questions", d.Questions, "question bank file (.yaml or .json)")
	fs.String("mode", d.Mode, "initial mode: leap, quiz or star")
	fs.Int("fps", d.FPS, "animation frames per second")
	fs.Int64("seed", d.Seed, "random seed for the quiz and star field (0 = clock)")
	fs.Bool("sound", d.Sound, "play sound cues")
	fs.Float64("volume", d.Volume, "sound cue volume between 0 and 1")
	fs.String("metrics-file", d.MetricsFile, "write Prometheus textfile metrics here on exit")
	fs.String("log-file", d.LogFile, "append debug logs to this file")
}

// Resolve builds the effective configuration: defaults, then the --config
// file, then any flag set explicitly on the command line.
func Resolve(fs *pflag.FlagSet) (Config, error) {
	cfg := Default()
	if path, _ := fs.GetString("config"); path != "" {
		loaded, err := LoadFile(path, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "questions":
			cfg.Questions = f.Value.String()
		case "mode":
			cfg.Mode = f.Value.String()
		case "fps":
			cfg.FPS, err = fs.GetInt("fps")
		case "seed":
			cfg.Seed, err = fs.GetInt64("seed")
		case "sound":
			cfg.Sound, err = fs.GetBool("sound")
		case "volume":
			cfg.Volume, err = fs.GetFloat64("volume")
		case "metrics-file":
			cfg.MetricsFile = f.Value.String()
		case "log-file":
			cfg.LogFile = f.Value.String()
		case "no-alt-screen":
			var off bool
			off, err = fs.GetBool("no-alt-screen")
			cfg.AltScreen = !off
		case "ascii":
			cfg.ASCII, err = fs.GetBool("ascii")
		case "scale":
			cfg.Scale, err = fs.GetFloat64("scale")
		}
	})
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Version is stamped at build time with -ldflags "-X ...config.Version=...".
var Version = "0.4.0-dev"
