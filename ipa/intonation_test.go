// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipa

import (
	"math"
	"testing"

	"github.com/fastfinge/NVSpeechPlayer/phoneme"
)

// voicedRun builds a synthetic all-voiced record list with unit
// durations for pitch-path checks.
func voicedRun(n int) []*Record {
	list := make([]*Record, n)
	for i := range list {
		list[i] = &Record{
			Flags:    phoneme.Flags{IsVoiced: true, IsVowel: true},
			Duration: 10.0, FadeDuration: 1.0,
			Params: map[string]float64{},
		}
	}
	return list
}

func TestPitchFromPercent(t *testing.T) {
	tests := []struct {
		pct, inflection, want float64
	}{
		{50, 1.0, 100},  // midpoint is base pitch
		{100, 1.0, 200}, // +1 octave
		{0, 1.0, 50},    // -1 octave
		{100, 0.5, 100 * math.Sqrt2},
		{50, 0.0, 100},
	}
	for _, tt := range tests {
		got := pitchFromPercent(100, tt.inflection, tt.pct)
		if !almostEqual(got, tt.want) {
			t.Errorf("pitchFromPercent(100, %v, %v) = %v, want %v", tt.inflection, tt.pct, got, tt.want)
		}
	}
}

func TestApplyPitchPathMonotone(t *testing.T) {
	for _, dir := range []struct{ startPct, endPct float64 }{{20, 80}, {80, 20}, {50, 50}} {
		list := voicedRun(6)
		ApplyPitchPath(list, 0, len(list), 100, 1.0, dir.startPct, dir.endPct)
		sign := 0.0
		if dir.endPct > dir.startPct {
			sign = 1
		} else if dir.endPct < dir.startPct {
			sign = -1
		}
		for i, rec := range list {
			if d := (rec.EndVoicePitch - rec.VoicePitch) * sign; d < -1e-9 {
				t.Errorf("record %d: pitch not monotone (%v -> %v)", i, rec.VoicePitch, rec.EndVoicePitch)
			}
			if i > 0 && !almostEqual(list[i-1].EndVoicePitch, rec.VoicePitch) {
				t.Errorf("record %d: discontinuous pitch", i)
			}
		}
		if !almostEqual(list[0].VoicePitch, pitchFromPercent(100, 1.0, dir.startPct)) {
			t.Errorf("start pitch = %v", list[0].VoicePitch)
		}
		if !almostEqual(list[len(list)-1].EndVoicePitch, pitchFromPercent(100, 1.0, dir.endPct)) {
			t.Errorf("end pitch = %v", list[len(list)-1].EndVoicePitch)
		}
	}
}

func TestApplyPitchPathSkipsUnvoiced(t *testing.T) {
	list := voicedRun(3)
	list[1].Flags.IsVoiced = false
	ApplyPitchPath(list, 0, len(list), 100, 1.0, 0, 100)
	// The unvoiced record holds its entry pitch; the ramp resumes on
	// the next voiced record.
	if !almostEqual(list[1].VoicePitch, list[1].EndVoicePitch) {
		t.Errorf("unvoiced record should not ramp: %v -> %v", list[1].VoicePitch, list[1].EndVoicePitch)
	}
	if !almostEqual(list[2].EndVoicePitch, 200) {
		t.Errorf("final pitch = %v, want 200", list[2].EndVoicePitch)
	}
}

func TestHeadStepGenCycles(t *testing.T) {
	row := intonationParamTable['.']
	next := headStepGen(row)
	var got []float64
	for i := 0; i < len(row.headSteps)+6; i++ {
		got = append(got, next())
	}
	// Prefix is the step table itself.
	for i, want := range row.headSteps {
		if got[i] != want {
			t.Fatalf("step %d = %v, want %v", i, got[i], want)
		}
	}
	// Then it cycles from headExtendFrom.
	n := len(row.headSteps)
	ext := row.headExtendFrom
	for i := n; i < len(got); i++ {
		want := row.headSteps[ext+(i-ext)%(n-ext)]
		if got[i] != want {
			t.Errorf("step %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestCalculatePitchesQuestionTailRises(t *testing.T) {
	// ˈnɑ nɑ -- nucleus on the first syllable, tail on the second word.
	list := ToPhonemes("ˈnɑ nɑ", "en-us")
	CalculateTimes(list, 1.0, "en-us")
	CalculatePitches(list, 100, 0.5, '?')
	last := list[len(list)-1]
	first := list[len(list)-2]
	if last.EndVoicePitch <= first.VoicePitch {
		t.Errorf("question tail should rise: %v -> %v", first.VoicePitch, last.EndVoicePitch)
	}

	// Statement tail falls.
	list = ToPhonemes("ˈnɑ nɑ", "en-us")
	CalculateTimes(list, 1.0, "en-us")
	CalculatePitches(list, 100, 0.5, '.')
	last = list[len(list)-1]
	first = list[len(list)-2]
	if last.EndVoicePitch >= first.VoicePitch {
		t.Errorf("statement tail should fall: %v -> %v", first.VoicePitch, last.EndVoicePitch)
	}
}

func TestCalculatePitchesUnknownClauseIsStatement(t *testing.T) {
	a := ToPhonemes("ˈnɑnɑ", "en-us")
	CalculateTimes(a, 1.0, "en-us")
	CalculatePitches(a, 100, 0.5, 0)

	b := ToPhonemes("ˈnɑnɑ", "en-us")
	CalculateTimes(b, 1.0, "en-us")
	CalculatePitches(b, 100, 0.5, '.')

	for i := range a {
		if !almostEqual(a[i].VoicePitch, b[i].VoicePitch) || !almostEqual(a[i].EndVoicePitch, b[i].EndVoicePitch) {
			t.Errorf("record %d: zero clause %v/%v != '.' %v/%v",
				i, a[i].VoicePitch, a[i].EndVoicePitch, b[i].VoicePitch, b[i].EndVoicePitch)
		}
	}
}

func TestCalculatePitchesNoStress(t *testing.T) {
	// Without a primary stress the whole clause is pre-head.
	list := ToPhonemes("nɑnɑ", "en-us")
	CalculateTimes(list, 1.0, "en-us")
	CalculatePitches(list, 100, 0.5, '.')
	row := intonationParamTable['.']
	if !almostEqual(list[0].VoicePitch, pitchFromPercent(100, 0.5, row.preHeadStart)) {
		t.Errorf("pre-head start pitch = %v", list[0].VoicePitch)
	}
	for i, rec := range list {
		if rec.VoicePitch <= 0 {
			t.Errorf("record %d: no pitch assigned", i)
		}
	}
}

func TestCalculatePitchesHeadRuns(t *testing.T) {
	// Two stressed syllables before the nucleus exercise the head
	// walk: every record between pre-head and nucleus gets a pitch.
	list := ToPhonemes("ˈnɑ ˈnɑ ˈnɑ", "en-us")
	CalculateTimes(list, 1.0, "en-us")
	CalculatePitches(list, 100, 0.5, '.')
	for i, rec := range list {
		if rec.VoicePitch <= 0 {
			t.Errorf("record %d: no pitch assigned", i)
		}
	}
}
