// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package player is the host glue between the frame pipeline and a
// formant synthesizer engine: frame queueing with millisecond-to-sample
// conversion, wav export, and sound-card playback.
package player

import "github.com/fastfinge/NVSpeechPlayer/phoneme"

// Synthesizer is the opaque formant-synthesis engine. Durations are in
// samples at the engine's rate. A nil frame queues silence. Purge
// drops everything queued so far, for barge-in cancellation.
type Synthesizer interface {
	QueueFrame(frame *phoneme.Frame, minSamples, fadeSamples int, userIndex int, purge bool)
	// Synthesize fills buf with 16-bit PCM and returns the number of
	// samples written; 0 means the queue is drained.
	Synthesize(buf []int16) int
	// LastIndex reports the most recent user index whose audio has
	// been synthesized, or -1.
	LastIndex() int
}

// SilenceSynth is a trivial Synthesizer that renders every queued
// frame as silence of the requested length. It stands in for the
// native engine in tests and offline runs.
type SilenceSynth struct {
	pending   int
	lastIndex int
}

// NewSilenceSynth returns an empty silence engine.
func NewSilenceSynth() *SilenceSynth {
	return &SilenceSynth{lastIndex: -1}
}

func (s *SilenceSynth) QueueFrame(frame *phoneme.Frame, minSamples, fadeSamples int, userIndex int, purge bool) {
	if purge {
		s.pending = 0
	}
	s.pending += minSamples
	if userIndex >= 0 {
		s.lastIndex = userIndex
	}
}

func (s *SilenceSynth) Synthesize(buf []int16) int {
	n := len(buf)
	if n > s.pending {
		n = s.pending
	}
	for i := 0; i < n; i++ {
		buf[i] = 0
	}
	s.pending -= n
	return n
}

// LastIndex returns the most recent non-negative user index passed to
// QueueFrame, or -1. SilenceSynth records it at queue time and does not
// track synthesis progress.
func (s *SilenceSynth) LastIndex() int {
	return s.lastIndex
}
