// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package player

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const synthChunkSamples = 8192

// WriteWav drains the synthesizer into w as 16-bit mono PCM wav.
func WriteWav(w io.WriteSeeker, synth Synthesizer, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	format := &audio.Format{NumChannels: 1, SampleRate: sampleRate}
	buf := make([]int16, synthChunkSamples)
	for {
		n := synth.Synthesize(buf)
		if n <= 0 {
			break
		}
		ints := make([]int, n)
		for i := 0; i < n; i++ {
			ints[i] = int(buf[i])
		}
		if err := enc.Write(&audio.IntBuffer{Format: format, Data: ints, SourceBitDepth: 16}); err != nil {
			return fmt.Errorf("write wav chunk: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
