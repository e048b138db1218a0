// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phoneme holds the static phoneme parameter table and the
// synthesizer frame schema. The table maps canonical IPA symbols to
// sparse sets of frame parameters plus phonological class flags, and is
// immutable after load.
package phoneme

// Flags are the phonological class flags of a table entry. They are
// fixed per symbol; per-occurrence state lives on pipeline records.
type Flags struct {
	IsVowel     bool
	IsVoiced    bool
	IsStop      bool
	IsAfricate  bool
	IsLiquid    bool
	IsNasal     bool
	IsSemivowel bool
	IsTap       bool
	IsTrill     bool
}

// Phoneme is one table entry: the class flags plus the frame parameters
// the entry sets. Params is sparse -- a parameter absent from the map is
// left at the frame default, and for /h/-like entries is filled in from
// a neighboring phoneme after segmentation.
type Phoneme struct {
	Flags        Flags
	CopyAdjacent bool
	Params       map[string]float64
}

// Table maps canonical IPA symbols to their entries.
type Table map[string]*Phoneme

// Has reports whether the table carries an entry for sym. The
// normalizer uses this as a capability probe when deciding between a
// preferred symbol and its approximation.
func (t Table) Has(sym string) bool {
	_, ok := t[sym]
	return ok
}

// Get returns the entry for sym, or nil.
func (t Table) Get(sym string) *Phoneme {
	return t[sym]
}
