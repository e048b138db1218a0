// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package player

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fastfinge/NVSpeechPlayer/ipa"
)

func TestMsToSamples(t *testing.T) {
	p := NewPlayer(NewSilenceSynth(), 16000)
	tests := []struct {
		ms   float64
		want int
	}{
		{100, 1600},
		{41, 656},
		{0.001, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := p.msToSamples(tt.ms); got != tt.want {
			t.Errorf("msToSamples(%v) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}

func TestQueueSeqDrains(t *testing.T) {
	synth := NewSilenceSynth()
	p := NewPlayer(synth, 16000)
	seq := ipa.GenerateFrames("hɛˈloʊ", ipa.Options{Language: "en-us"})
	n := p.QueueSeq(seq)
	if n != 5 {
		t.Errorf("queued %d steps, want 5", n)
	}
	if _, ok := seq.Next(); ok {
		t.Error("sequence not drained")
	}

	buf := make([]int16, 256)
	total := 0
	for {
		got := synth.Synthesize(buf)
		if got == 0 {
			break
		}
		total += got
	}
	if total == 0 {
		t.Error("no samples synthesized")
	}
}

func TestSilenceSynthPurge(t *testing.T) {
	synth := NewSilenceSynth()
	p := NewPlayer(synth, 16000)
	p.QueueFrame(nil, 1000, 10, -1)
	p.Purge()
	buf := make([]int16, 4096)
	total := 0
	for {
		got := synth.Synthesize(buf)
		if got == 0 {
			break
		}
		total += got
	}
	// Only the 20ms fade-out gap survives the purge.
	if want := 320; total != want {
		t.Errorf("synthesized %d samples after purge, want %d", total, want)
	}
}

func TestClausePause(t *testing.T) {
	tests := []struct {
		clause rune
		speed  float64
		want   float64
	}{
		{'.', 1.0, 150},
		{'!', 1.0, 150},
		{'?', 1.0, 150},
		{',', 1.0, 120},
		{0, 1.0, 100},
		{'.', 2.0, 75},
	}
	for _, tt := range tests {
		if got := ClausePause(tt.clause, tt.speed); got != tt.want {
			t.Errorf("ClausePause(%q, %v) = %v, want %v", tt.clause, tt.speed, got, tt.want)
		}
	}
}

func TestWriteWav(t *testing.T) {
	synth := NewSilenceSynth()
	p := NewPlayer(synth, 16000)
	p.QueueFrame(nil, 500, 10, -1)

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := WriteWav(f, synth, 16000); err != nil {
		t.Fatalf("WriteWav: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// 8000 samples of 16-bit PCM plus the wav header.
	if info.Size() < 16000 {
		t.Errorf("wav size = %d, want at least 16000", info.Size())
	}
}

func TestSilenceSynthLastIndex(t *testing.T) {
	synth := NewSilenceSynth()
	if synth.LastIndex() != -1 {
		t.Errorf("initial LastIndex = %d, want -1", synth.LastIndex())
	}
	synth.QueueFrame(nil, 100, 0, 7, false)
	if synth.LastIndex() != 7 {
		t.Errorf("LastIndex = %d, want 7", synth.LastIndex())
	}
}
