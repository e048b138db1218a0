// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipa converts an eSpeak-style phoneme stream into timed
// formant-synthesizer control frames: normalization into the canonical
// IPA alphabet, segmentation into phoneme records, duration and fade
// assignment, a prosodic pitch contour, and frame emission.
package ipa

import "github.com/fastfinge/NVSpeechPlayer/phoneme"

// Record is one occurrence in the segmented phoneme list: either a
// silence gap or a phoneme carrying a sparse copy of its table
// parameters plus per-occurrence annotations. Class flags are copied
// from the table entry; annotations are written by the segmenter,
// timer, and intonation engine.
type Record struct {
	// Silence records carry no acoustic parameters; PreStopGap marks
	// the synthetic gap inserted before stops and affricates.
	Silence    bool
	PreStopGap bool

	// Params is a per-occurrence copy of the table entry's sparse
	// frame parameters. Nil for silence records.
	Params map[string]float64
	Flags  phoneme.Flags

	// Char is the IPA character this record was segmented from; zero
	// for synthetic records such as inserted aspiration.
	Char rune

	Stress             int // 0 none, 1 primary, 2 secondary
	SyllableStart      bool
	WordStart          bool
	TiedTo             bool
	TiedFrom           bool
	Lengthened         bool
	PostStopAspiration bool
	CopyAdjacent       bool

	// Written by the timer, in milliseconds.
	Duration     float64
	FadeDuration float64

	// Written by the intonation engine, in Hz.
	VoicePitch    float64
	EndVoicePitch float64
}

// newRecord copies a table entry into a fresh occurrence record.
func newRecord(ph *phoneme.Phoneme, char rune) *Record {
	params := make(map[string]float64, len(ph.Params))
	for k, v := range ph.Params {
		params[k] = v
	}
	return &Record{
		Params:       params,
		Flags:        ph.Flags,
		CopyAdjacent: ph.CopyAdjacent,
		Char:         char,
	}
}
