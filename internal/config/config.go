// Package config loads chartinfo settings from an INI file.
//
//	[score]
//	psych    = 350
//	vslice   = 500
//	codename = 300
//
//	[lanes]
//	extended = false
//
//	[output]
//	text = true
//	wiki = true
//
//	[log]
//	level = info
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/meguminbot/chartinfo/internal/types"
)

// Config holds every setting with its default applied.
type Config struct {
	Multipliers map[types.Engine]int
	Extended    bool
	Text        bool
	Wiki        bool
	LogLevel    string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Multipliers: map[types.Engine]int{
			types.EnginePsych:    types.EnginePsych.DefaultMultiplier(),
			types.EngineVSlice:   types.EngineVSlice.DefaultMultiplier(),
			types.EngineCodename: types.EngineCodename.DefaultMultiplier(),
		},
		Text:     true,
		Wiki:     true,
		LogLevel: "info",
	}
}

var scoreKeys = map[string]types.Engine{
	"psych":    types.EnginePsych,
	"vslice":   types.EngineVSlice,
	"codename": types.EngineCodename,
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := apply(&cfg, f); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads settings from INI text over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, data)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := apply(&cfg, f); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func apply(cfg *Config, f *ini.File) error {
	score := f.Section("score")
	for key, engine := range scoreKeys {
		if !score.HasKey(key) {
			continue
		}
		v, err := score.Key(key).Int()
		if err != nil || v <= 0 {
			return fmt.Errorf("[score] %s: %w", key, &types.InvalidMultiplierError{Input: score.Key(key).String()})
		}
		cfg.Multipliers[engine] = v
	}

	cfg.Extended = f.Section("lanes").Key("extended").MustBool(cfg.Extended)

	out := f.Section("output")
	cfg.Text = out.Key("text").MustBool(cfg.Text)
	cfg.Wiki = out.Key("wiki").MustBool(cfg.Wiki)

	level := f.Section("log").Key("level").In(cfg.LogLevel, []string{"debug", "info", "warn", "error"})
	cfg.LogLevel = level
	return nil
}
