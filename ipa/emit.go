// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipa

import "github.com/fastfinge/NVSpeechPlayer/phoneme"

// Options are the caller tuning parameters of one pipeline invocation.
// Zero values select the reference defaults (speed 1.0, base pitch
// 100 Hz, inflection 0.5, statement clause).
type Options struct {
	Speed      float64
	BasePitch  float64 // Hz
	Inflection float64 // 0..1 octave scaling
	Clause     rune    // '.', ',', '?', '!'; 0 means '.'
	Language   string  // BCP-47-like tag, e.g. "en-us"
}

func (o *Options) applyDefaults() {
	if o.Speed == 0 {
		o.Speed = 1.0
	}
	if o.BasePitch == 0 {
		o.BasePitch = 100.0
	}
	if o.Inflection == 0 {
		o.Inflection = 0.5
	}
}

// Step is one emitted triple: a synthesizer frame (nil for a silence
// gap) plus its minimum duration and fade length in milliseconds.
type Step struct {
	Frame    *phoneme.Frame
	Duration float64
	Fade     float64
}

// FrameSeq is the finite pull-based frame sequence of one utterance.
// It is not restartable; callers cancel by dropping it.
type FrameSeq struct {
	recs []*Record
	i    int
}

// Len returns the number of remaining steps.
func (s *FrameSeq) Len() int {
	return len(s.recs) - s.i
}

// Next materializes and returns the next step. ok is false once the
// sequence is exhausted.
func (s *FrameSeq) Next() (step Step, ok bool) {
	if s.i >= len(s.recs) {
		return Step{}, false
	}
	rec := s.recs[s.i]
	s.i++
	step.Duration = rec.Duration
	step.Fade = rec.FadeDuration
	if rec.Silence {
		return step, true
	}
	frame := &phoneme.Frame{PreFormantGain: 1.0, OutputGain: 1.5}
	for k, v := range rec.Params {
		frame.Set(k, v)
	}
	frame.VoicePitch = rec.VoicePitch
	frame.EndVoicePitch = rec.EndVoicePitch
	step.Frame = frame
	return step, true
}

// GenerateFrames runs the whole pipeline -- normalize, segment,
// h-correct, time, pitch -- and returns the frame sequence. Empty or
// fully-unknown input yields an empty sequence; the pipeline never
// fails.
func GenerateFrames(text string, opts Options) *FrameSeq {
	opts.applyDefaults()
	canonical := Normalize(text, opts.Language)
	list := ToPhonemes(canonical, opts.Language)
	if len(list) == 0 {
		return &FrameSeq{}
	}
	CorrectHPhonemes(list)
	CalculateTimes(list, opts.Speed, opts.Language)
	CalculatePitches(list, opts.BasePitch, opts.Inflection, opts.Clause)
	return &FrameSeq{recs: list}
}
