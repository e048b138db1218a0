// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package player

import (
	"github.com/fastfinge/NVSpeechPlayer/ipa"
	"github.com/fastfinge/NVSpeechPlayer/phoneme"
)

// Player queues pipeline output into a Synthesizer, converting the
// pipeline's millisecond durations into engine samples.
type Player struct {
	Synth      Synthesizer
	SampleRate int
}

// NewPlayer wraps a synthesizer running at sampleRate.
func NewPlayer(synth Synthesizer, sampleRate int) *Player {
	return &Player{Synth: synth, SampleRate: sampleRate}
}

// msToSamples converts milliseconds to whole samples, clamping
// negatives to zero.
func (p *Player) msToSamples(ms float64) int {
	n := int(ms * float64(p.SampleRate) / 1000.0)
	if n < 0 {
		n = 0
	}
	return n
}

// QueueFrame queues one frame (nil for silence) with durations in
// milliseconds.
func (p *Player) QueueFrame(frame *phoneme.Frame, durationMs, fadeMs float64, userIndex int) {
	p.Synth.QueueFrame(frame, p.msToSamples(durationMs), p.msToSamples(fadeMs), userIndex, false)
}

// Purge drops all queued audio, queueing a short fade-out gap in its
// place so cancellation doesn't click.
func (p *Player) Purge() {
	p.Synth.QueueFrame(nil, p.msToSamples(20.0), p.msToSamples(5.0), -1, true)
}

// QueueSeq drains a frame sequence into the synthesizer and returns
// the number of steps queued.
func (p *Player) QueueSeq(seq *ipa.FrameSeq) int {
	n := 0
	for {
		step, ok := seq.Next()
		if !ok {
			return n
		}
		p.QueueFrame(step.Frame, step.Duration, step.Fade, -1)
		n++
	}
}

// ClausePause returns the end-of-clause pause in milliseconds for the
// clause's terminating punctuation, scaled by speed.
func ClausePause(clauseType rune, speed float64) float64 {
	var pause float64
	switch clauseType {
	case '.', '!', '?':
		pause = 150.0
	case ',':
		pause = 120.0
	default:
		pause = 100.0
	}
	return pause / speed
}
