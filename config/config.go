// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads converter settings from a TOML file.
//
// Example:
//
//	locale = ["de-DE"]
//	verbose = false
//
//	[listing]
//	simulator = true
//	prefix_key = true
//	one_mnemonic_per_line = false
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/hp15c/mnemonic"
	"github.com/ezrec/hp15c/translate"
)

// Config is the content of a settings file.
type Config struct {
	Locale  []string         `toml:"locale"`  // Preferred message locales.
	Verbose bool             `toml:"verbose"` // Trace statement resolution.
	Listing mnemonic.Options `toml:"listing"`
}

// Default returns the settings used without a file.
func Default() Config {
	return Config{
		Listing: mnemonic.DefaultOptions(),
	}
}

// Decode reads settings over cfg. Keys absent from the text keep their
// value; unknown keys are an error.
func (cfg *Config) Decode(text string) (err error) {
	meta, err := toml.Decode(text, cfg)
	if err != nil {
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		err = ErrConfigKey(undecoded[0].String())
		return
	}

	return
}

// Load reads a settings file over cfg.
func (cfg *Config) Load(path string) (err error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = cfg.Decode(string(text))
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
	}

	return
}

// Apply selects the message locale and configures a converter.
func (cfg *Config) Apply(conv *mnemonic.Converter) {
	if len(cfg.Locale) != 0 {
		translate.Use(cfg.Locale...)
	}
	conv.Verbose = cfg.Verbose
	conv.SetOptions(cfg.Listing)
}
