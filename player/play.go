// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package player

import (
	"encoding/binary"

	"github.com/hajimehoshi/oto"
)

// Play drains the synthesizer to the default sound device, blocking
// until the queue runs dry.
func Play(synth Synthesizer, sampleRate int) error {
	c, err := oto.NewContext(sampleRate, 1, 2, 4096)
	if err != nil {
		return err
	}
	defer c.Close()

	p := c.NewPlayer()
	defer p.Close()

	samples := make([]int16, synthChunkSamples)
	bytes := make([]byte, 2*synthChunkSamples)
	for {
		n := synth.Synthesize(samples)
		if n <= 0 {
			break
		}
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(bytes[2*i:], uint16(samples[i]))
		}
		if _, err := p.Write(bytes[:2*n]); err != nil {
			return err
		}
	}
	return nil
}
