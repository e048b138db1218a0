// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voice holds the caller-facing tuning parameters of the
// pipeline and their host-driver control curves.
package voice

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/creasty/defaults"
	"github.com/pelletier/go-toml/v2"

	"github.com/fastfinge/NVSpeechPlayer/ipa"
)

// Tuning are the exposed pipeline parameters.
type Tuning struct {
	Speed      float64 `default:"1.0" toml:"speed"`
	BasePitch  float64 `default:"100.0" toml:"basePitch"`
	Inflection float64 `default:"0.5" toml:"inflection"`
	Language   string  `toml:"language,omitempty"`
	ClauseType string  `toml:"clauseType,omitempty"`
}

// Option is a functional option for configuring a Tuning.
type Option func(*Tuning)

// NewTuning returns a Tuning with defaults applied, then the options.
func NewTuning(opts ...Option) (*Tuning, error) {
	t := &Tuning{}
	if err := defaults.Set(t); err != nil {
		return nil, fmt.Errorf("failed to set defaults: %w", err)
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// WithSpeed sets the speed multiplier.
func WithSpeed(speed float64) Option {
	return func(t *Tuning) { t.Speed = speed }
}

// WithBasePitch sets the base pitch in Hz.
func WithBasePitch(hz float64) Option {
	return func(t *Tuning) { t.BasePitch = hz }
}

// WithInflection sets the octave scaling of pitch excursions.
func WithInflection(infl float64) Option {
	return func(t *Tuning) { t.Inflection = infl }
}

// WithLanguage sets the language tag.
func WithLanguage(tag string) Option {
	return func(t *Tuning) { t.Language = tag }
}

// WithClauseType sets the clause type punctuation.
func WithClauseType(c string) Option {
	return func(t *Tuning) { t.ClauseType = c }
}

// Validate checks the tuning values.
func (t *Tuning) Validate() error {
	if t.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", t.Speed)
	}
	if t.BasePitch <= 0 {
		return fmt.Errorf("basePitch must be positive, got %v", t.BasePitch)
	}
	if t.Inflection < 0 || t.Inflection > 1 {
		return fmt.Errorf("inflection must be in [0,1], got %v", t.Inflection)
	}
	switch t.ClauseType {
	case "", ".", ",", "?", "!":
	default:
		return fmt.Errorf("unknown clause type %q", t.ClauseType)
	}
	return nil
}

// Options converts the tuning into pipeline options.
func (t *Tuning) Options() ipa.Options {
	clause := rune(0)
	if t.ClauseType != "" {
		clause = []rune(t.ClauseType)[0]
	}
	return ipa.Options{
		Speed:      t.Speed,
		BasePitch:  t.BasePitch,
		Inflection: t.Inflection,
		Clause:     clause,
		Language:   t.Language,
	}
}

// LoadTuning reads a Tuning from a TOML file, rejecting unknown keys.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning parses TOML content into a validated Tuning.
func ParseTuning(content []byte) (*Tuning, error) {
	t, err := NewTuning()
	if err != nil {
		return nil, err
	}
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// RateToSpeed converts a 0..100 host rate setting to the pipeline
// speed multiplier (50 maps to 1.0, each 25 points doubles).
func RateToSpeed(rate int) float64 {
	return 0.25 * math.Exp2(float64(rate)/25.0)
}

// SpeedToRate is the inverse of RateToSpeed.
func SpeedToRate(speed float64) int {
	return int(math.Round(math.Log2(speed/0.25) * 25.0))
}

// PitchToHz converts a 0..100 host pitch setting to a base pitch in
// Hz (50 maps to 110 Hz).
func PitchToHz(pitch float64) float64 {
	return 25.0 + 21.25*(pitch/12.5)
}
