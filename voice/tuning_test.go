// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voice

import (
	"math"
	"testing"
)

func TestNewTuningDefaults(t *testing.T) {
	tu, err := NewTuning()
	if err != nil {
		t.Fatalf("NewTuning: %v", err)
	}
	if tu.Speed != 1.0 || tu.BasePitch != 100.0 || tu.Inflection != 0.5 {
		t.Errorf("unexpected defaults: %+v", tu)
	}
}

func TestNewTuningOptions(t *testing.T) {
	tu, err := NewTuning(
		WithSpeed(1.5),
		WithBasePitch(120),
		WithInflection(0.7),
		WithLanguage("en-gb"),
		WithClauseType("?"),
	)
	if err != nil {
		t.Fatalf("NewTuning: %v", err)
	}
	opts := tu.Options()
	if opts.Speed != 1.5 || opts.BasePitch != 120 || opts.Inflection != 0.7 {
		t.Errorf("options = %+v", opts)
	}
	if opts.Clause != '?' || opts.Language != "en-gb" {
		t.Errorf("options = %+v", opts)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr bool
	}{
		{"zero speed", WithSpeed(0), true},
		{"negative speed", WithSpeed(-1), true},
		{"zero pitch", WithBasePitch(0), true},
		{"inflection above one", WithInflection(1.5), true},
		{"bad clause", WithClauseType("x"), true},
		{"valid", WithSpeed(2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTuning(tt.opt)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseTuning(t *testing.T) {
	tu, err := ParseTuning([]byte("speed = 1.25\nbasePitch = 90.0\nlanguage = \"pl\"\n"))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if tu.Speed != 1.25 || tu.BasePitch != 90 || tu.Language != "pl" {
		t.Errorf("parsed = %+v", tu)
	}
	// Unspecified fields keep defaults.
	if tu.Inflection != 0.5 {
		t.Errorf("inflection = %v, want default", tu.Inflection)
	}
}

func TestParseTuningStrict(t *testing.T) {
	if _, err := ParseTuning([]byte("spede = 1.0\n")); err == nil {
		t.Error("unknown key accepted")
	}
	if _, err := ParseTuning([]byte("speed = -2.0\n")); err == nil {
		t.Error("invalid value accepted")
	}
}

func TestControlCurves(t *testing.T) {
	if got := RateToSpeed(50); got != 1.0 {
		t.Errorf("RateToSpeed(50) = %v, want 1", got)
	}
	if got := RateToSpeed(75); got != 2.0 {
		t.Errorf("RateToSpeed(75) = %v, want 2", got)
	}
	for _, rate := range []int{0, 25, 50, 75, 100} {
		if got := SpeedToRate(RateToSpeed(rate)); got != rate {
			t.Errorf("round trip rate %d -> %d", rate, got)
		}
	}
	if got := PitchToHz(50); math.Abs(got-110.0) > 1e-9 {
		t.Errorf("PitchToHz(50) = %v, want 110", got)
	}
}
