// Package config holds the tunables of the dispatcher and their YAML representation.
package config

import (
	"errors"
	"os"
	"time"
	"unicode/utf8"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"gopkg.in/yaml.v3"
)

// Settings tunes matching, suggestion ranking and logging
type Settings struct {
	// CaseSensitive applies to command literals and suggestion prefix matching
	CaseSensitive bool `yaml:"caseSensitive"`
	// GreedyDelimiter joins the tokens absorbed by a greedy parameter
	GreedyDelimiter string `yaml:"greedyDelimiter"`
	// ListDelimiters holds the characters separating the elements of an array token
	ListDelimiters string `yaml:"listDelimiters"`
	// FlagMarker is the character introducing flags, "-" by default
	FlagMarker string `yaml:"flagMarker"`

	Suggestions Suggestions `yaml:"suggestions"`
	Logging     Logging     `yaml:"logging"`
}

// Suggestions tunes the completion engine
type Suggestions struct {
	MaxResults int `yaml:"maxResults"`
	// FuzzyThreshold is the minimum normalised similarity in [0,1] a fuzzy candidate needs
	FuzzyThreshold float64 `yaml:"fuzzyThreshold"`
	// MinFuzzyLength is the minimum partial length engaging fuzzy matching
	MinFuzzyLength int           `yaml:"minFuzzyLength"`
	CacheTTL       time.Duration `yaml:"cacheTTL"`
	CacheSize      int           `yaml:"cacheSize"`
}

// Logging selects the logger
type Logging struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"`
}

// Default returns the settings used when nothing is configured
func Default() Settings {
	return Settings{
		GreedyDelimiter: " ",
		ListDelimiters:  ",|",
		FlagMarker:      "-",
		Suggestions: Suggestions{
			MaxResults:     20,
			FuzzyThreshold: 0.6,
			MinFuzzyLength: 2,
			CacheTTL:       5 * time.Second,
			CacheSize:      512,
		},
		Logging: Logging{Level: "info"},
	}
}

// Marker returns the flag marker rune
func (s Settings) Marker() rune {
	r, _ := utf8.DecodeRuneInString(s.FlagMarker)
	if r == utf8.RuneError {
		return '-'
	}

	return r
}

// Parse overlays YAML data on the defaults
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	s.normalize()

	return s, nil
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, errs.ErrLoadSettings.WithArgs(path).Wrap(err)
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, errs.ErrLoadSettings.WithArgs(path).Wrap(err)
	}

	return s, nil
}

func (s *Settings) normalize() {
	d := Default()
	if s.FlagMarker == "" {
		s.FlagMarker = d.FlagMarker
	}
	if s.ListDelimiters == "" {
		s.ListDelimiters = d.ListDelimiters
	}
	if s.Suggestions.MaxResults <= 0 {
		s.Suggestions.MaxResults = d.Suggestions.MaxResults
	}
	if s.Suggestions.FuzzyThreshold <= 0 || s.Suggestions.FuzzyThreshold > 1 {
		s.Suggestions.FuzzyThreshold = d.Suggestions.FuzzyThreshold
	}
	if s.Suggestions.MinFuzzyLength <= 0 {
		s.Suggestions.MinFuzzyLength = d.Suggestions.MinFuzzyLength
	}
	if s.Suggestions.CacheTTL <= 0 {
		s.Suggestions.CacheTTL = d.Suggestions.CacheTTL
	}
	if s.Suggestions.CacheSize <= 0 {
		s.Suggestions.CacheSize = d.Suggestions.CacheSize
	}
}
