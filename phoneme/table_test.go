// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phoneme

import "testing"

func TestDefaultTableLoads(t *testing.T) {
	if len(Default) < 60 {
		t.Fatalf("table has %d entries, expected the full asset", len(Default))
	}
}

func TestTableClassFlags(t *testing.T) {
	tests := []struct {
		sym  string
		want Flags
	}{
		{"ɑ", Flags{IsVowel: true, IsVoiced: true}},
		{"t", Flags{IsStop: true}},
		{"d", Flags{IsStop: true, IsVoiced: true}},
		{"t͡ʃ", Flags{IsAfricate: true}},
		{"d͡ʒ", Flags{IsAfricate: true, IsVoiced: true}},
		{"l", Flags{IsLiquid: true, IsVoiced: true}},
		{"n", Flags{IsNasal: true, IsVoiced: true}},
		{"j", Flags{IsSemivowel: true, IsVoiced: true}},
		{"ɾ", Flags{IsTap: true, IsVoiced: true}},
		{"r", Flags{IsTrill: true, IsVoiced: true}},
		{"s", Flags{}},
	}
	for _, tt := range tests {
		ph := Default.Get(tt.sym)
		if ph == nil {
			t.Errorf("missing entry %q", tt.sym)
			continue
		}
		if ph.Flags != tt.want {
			t.Errorf("%q flags = %+v, want %+v", tt.sym, ph.Flags, tt.want)
		}
	}
}

func TestTableHEntry(t *testing.T) {
	h := Default.Get("h")
	if h == nil {
		t.Fatal("missing h entry")
	}
	if !h.CopyAdjacent {
		t.Error("h must copy its spectrum from a neighbor")
	}
	if h.Params["aspirationAmplitude"] != 1.0 {
		t.Errorf("h aspiration = %v, want 1", h.Params["aspirationAmplitude"])
	}
	if _, ok := h.Params["cf1"]; ok {
		t.Error("h must not fix its own formants")
	}
}

func TestTableParamsAreFrameParams(t *testing.T) {
	for sym, ph := range Default {
		for k := range ph.Params {
			if !IsFrameParam(k) {
				t.Errorf("entry %q: %q is not a frame parameter", sym, k)
			}
		}
	}
}

func TestTableInternalVowels(t *testing.T) {
	for _, sym := range []string{"ᴀ", "ᴒ", "ᴇ", "ᴐ", "ᴜ", "O", "ã", "ẽ", "ĩ", "õ", "ũ"} {
		ph := Default.Get(sym)
		if ph == nil {
			t.Errorf("missing internal vowel %q", sym)
			continue
		}
		if !ph.Flags.IsVowel || !ph.Flags.IsVoiced {
			t.Errorf("%q should be a voiced vowel", sym)
		}
	}
}

func TestTableHas(t *testing.T) {
	if !Default.Has("ə") {
		t.Error("schwa missing")
	}
	if Default.Has("ɘ") || Default.Has("ɵ") || Default.Has("ɤ") {
		t.Error("approximation-only vowels must stay out of the table")
	}
}
