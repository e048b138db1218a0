// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phoneme

// NumParams is the number of parameters in a synthesizer frame.
const NumParams = 47

// Frame is one formant-synthesizer control frame. The field order is
// bit-exact with the native engine's frame struct; Values returns the
// parameters in that order for the ABI boundary.
type Frame struct {
	VoicePitch               float64
	VibratoPitchOffset       float64
	VibratoSpeed             float64
	VoiceTurbulenceAmplitude float64
	GlottalOpenQuotient      float64
	VoiceAmplitude           float64
	AspirationAmplitude      float64

	CF1, CF2, CF3, CF4, CF5, CF6 float64
	CFN0, CFNP                   float64
	CB1, CB2, CB3, CB4, CB5, CB6 float64
	CBN0, CBNP                   float64
	CANP                         float64

	FricationAmplitude           float64
	PF1, PF2, PF3, PF4, PF5, PF6 float64
	PB1, PB2, PB3, PB4, PB5, PB6 float64
	PA1, PA2, PA3, PA4, PA5, PA6 float64
	ParallelBypass               float64

	PreFormantGain float64
	OutputGain     float64
	EndVoicePitch  float64
}

// ParamNames lists the wire names of all frame parameters in ABI order.
var ParamNames = []string{
	"voicePitch",
	"vibratoPitchOffset",
	"vibratoSpeed",
	"voiceTurbulenceAmplitude",
	"glottalOpenQuotient",
	"voiceAmplitude",
	"aspirationAmplitude",
	"cf1", "cf2", "cf3", "cf4", "cf5", "cf6", "cfN0", "cfNP",
	"cb1", "cb2", "cb3", "cb4", "cb5", "cb6", "cbN0", "cbNP",
	"caNP",
	"fricationAmplitude",
	"pf1", "pf2", "pf3", "pf4", "pf5", "pf6",
	"pb1", "pb2", "pb3", "pb4", "pb5", "pb6",
	"pa1", "pa2", "pa3", "pa4", "pa5", "pa6",
	"parallelBypass",
	"preFormantGain",
	"outputGain",
	"endVoicePitch",
}

// fieldPtrs returns pointers to the frame's fields in ABI order.
func (f *Frame) fieldPtrs() [NumParams]*float64 {
	return [NumParams]*float64{
		&f.VoicePitch,
		&f.VibratoPitchOffset,
		&f.VibratoSpeed,
		&f.VoiceTurbulenceAmplitude,
		&f.GlottalOpenQuotient,
		&f.VoiceAmplitude,
		&f.AspirationAmplitude,
		&f.CF1, &f.CF2, &f.CF3, &f.CF4, &f.CF5, &f.CF6, &f.CFN0, &f.CFNP,
		&f.CB1, &f.CB2, &f.CB3, &f.CB4, &f.CB5, &f.CB6, &f.CBN0, &f.CBNP,
		&f.CANP,
		&f.FricationAmplitude,
		&f.PF1, &f.PF2, &f.PF3, &f.PF4, &f.PF5, &f.PF6,
		&f.PB1, &f.PB2, &f.PB3, &f.PB4, &f.PB5, &f.PB6,
		&f.PA1, &f.PA2, &f.PA3, &f.PA4, &f.PA5, &f.PA6,
		&f.ParallelBypass,
		&f.PreFormantGain,
		&f.OutputGain,
		&f.EndVoicePitch,
	}
}

// paramIndex maps wire names to their ABI-order index.
var paramIndex = func() map[string]int {
	m := make(map[string]int, len(ParamNames))
	for i, n := range ParamNames {
		m[n] = i
	}
	return m
}()

// IsFrameParam reports whether name is a frame parameter wire name.
func IsFrameParam(name string) bool {
	_, ok := paramIndex[name]
	return ok
}

// Set assigns the named parameter, returning false for unknown names.
func (f *Frame) Set(name string, v float64) bool {
	i, ok := paramIndex[name]
	if !ok {
		return false
	}
	*f.fieldPtrs()[i] = v
	return true
}

// Get returns the named parameter value, or false for unknown names.
func (f *Frame) Get(name string) (float64, bool) {
	i, ok := paramIndex[name]
	if !ok {
		return 0, false
	}
	return *f.fieldPtrs()[i], true
}

// Values returns all parameters in ABI order.
func (f *Frame) Values() [NumParams]float64 {
	var out [NumParams]float64
	for i, p := range f.fieldPtrs() {
		out[i] = *p
	}
	return out
}
