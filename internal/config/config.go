// Package config resolves command-line flags, TERMSWEEPER_* environment
// variables and an optional config file into a Config.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/samdwyer/termsweeper/internal/field"
	"github.com/samdwyer/termsweeper/internal/game"
)

// EnvPrefix is prepended to every environment variable, e.g. TERMSWEEPER_MINES.
const EnvPrefix = "TERMSWEEPER"

// Mode selects the driver.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeTUI  Mode = "tui"
	ModeLine Mode = "line"
)

// ErrInvalidMode is returned for a mode other than auto, tui or line.
var ErrInvalidMode = errors.New("invalid mode")

// Config is the resolved program configuration.
type Config struct {
	Size  int
	Mines int
	// MinesSet reports whether the mine count came from a flag, the
	// environment or the config file. The line driver asks for it otherwise.
	MinesSet bool
	Seed     uint64
	Mode     Mode
	Theme    string
	LogFile  string
	LogLevel string
	File     string // Config file that was read, if any
}

// Load parses args (without the program name). Precedence is flag, then
// environment, then config file, then the flag default.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("termsweeper", pflag.ContinueOnError)
	fs.Int("size", field.DefaultSize, "side length of the square board")
	fs.Int("mines", game.DefaultMines, "number of mines (line mode asks when unset)")
	fs.Uint64("seed", 0, "seed for mine placement, 0 for random")
	fs.String("mode", string(ModeAuto), "driver: tui, line or auto")
	fs.String("theme", "", "theme override file (.json or .toml)")
	fs.String("log-file", "termsweeper.log", "log file path")
	fs.String("log-level", "info", "log level")
	fs.StringP("config", "c", "", "config file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{File: v.GetString("config")}
	if cfg.File != "" {
		v.SetConfigFile(cfg.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfg.File, err)
		}
	}

	cfg.Size = v.GetInt("size")
	cfg.Mines = v.GetInt("mines")
	cfg.MinesSet = v.IsSet("mines")
	cfg.Seed = v.GetUint64("seed")
	cfg.Mode = Mode(strings.ToLower(v.GetString("mode")))
	cfg.Theme = v.GetString("theme")
	cfg.LogFile = v.GetString("log-file")
	cfg.LogLevel = v.GetString("log-level")

	switch cfg.Mode {
	case ModeAuto, ModeTUI, ModeLine:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}

	// game.Options treats a zero size as the default, so an explicit zero
	// has to be caught here.
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", field.ErrInvalidSize, cfg.Size)
	}

	return cfg, nil
}

// ResolveMode turns ModeAuto into ModeTUI when fd is a terminal and
// ModeLine otherwise.
func (c *Config) ResolveMode(fd int) Mode {
	if c.Mode != ModeAuto {
		return c.Mode
	}
	if term.IsTerminal(fd) {
		return ModeTUI
	}
	return ModeLine
}

// GameOptions returns the session options. An unset mine count is capped so
// the default fits small boards.
func (c *Config) GameOptions() game.Options {
	mines := c.Mines
	if !c.MinesSet {
		mines = min(mines, c.Size*c.Size)
	}
	return game.Options{Size: c.Size, Mines: mines, Seed: c.Seed}
}

// Fields returns the config as log fields.
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"size":      c.Size,
		"mines":     c.Mines,
		"mines_set": c.MinesSet,
		"seed":      c.Seed,
		"mode":      string(c.Mode),
		"theme":     c.Theme,
		"log_level": c.LogLevel,
		"config":    c.File,
	}
}
