// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipa

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// intonationParams is one clause-type row. All pitch positions are
// percentages in 0..100 of the inflection range: 50 is the base pitch,
// 100 and 0 are one octave up/down at inflection 1.
type intonationParams struct {
	preHeadStart float64
	preHeadEnd   float64

	headExtendFrom              int
	headStart                   float64
	headEnd                     float64
	headSteps                   []float64
	headStressEndDelta          float64
	headUnstressedRunStartDelta float64
	headUnstressedRunEndDelta   float64

	// nucleus0 is the terminal contour used when no tail follows.
	nucleus0Start float64
	nucleus0End   float64
	nucleusStart  float64
	nucleusEnd    float64

	tailStart float64
	tailEnd   float64
}

var intonationParamTable = map[rune]*intonationParams{
	'.': {
		preHeadStart: 46, preHeadEnd: 57,
		headExtendFrom: 4, headStart: 80, headEnd: 50,
		headSteps:          []float64{100, 75, 50, 25, 0, 63, 38, 13, 0},
		headStressEndDelta: -16, headUnstressedRunStartDelta: -8, headUnstressedRunEndDelta: -5,
		nucleus0Start: 64, nucleus0End: 8,
		nucleusStart: 70, nucleusEnd: 18,
		tailStart: 24, tailEnd: 8,
	},
	',': {
		preHeadStart: 46, preHeadEnd: 57,
		headExtendFrom: 4, headStart: 80, headEnd: 60,
		headSteps:          []float64{100, 75, 50, 25, 0, 63, 38, 13, 0},
		headStressEndDelta: -16, headUnstressedRunStartDelta: -8, headUnstressedRunEndDelta: -5,
		nucleus0Start: 34, nucleus0End: 52,
		nucleusStart: 78, nucleusEnd: 34,
		tailStart: 34, tailEnd: 52,
	},
	'?': {
		preHeadStart: 45, preHeadEnd: 56,
		headExtendFrom: 3, headStart: 75, headEnd: 43,
		headSteps:          []float64{100, 75, 50, 20, 60, 35, 11, 0},
		headStressEndDelta: -16, headUnstressedRunStartDelta: -7, headUnstressedRunEndDelta: 0,
		nucleus0Start: 34, nucleus0End: 68,
		nucleusStart: 86, nucleusEnd: 21,
		tailStart: 34, tailEnd: 68,
	},
	'!': {
		preHeadStart: 46, preHeadEnd: 57,
		headExtendFrom: 3, headStart: 90, headEnd: 50,
		headSteps:          []float64{100, 75, 50, 16, 82, 50, 32, 16},
		headStressEndDelta: -16, headUnstressedRunStartDelta: -9, headUnstressedRunEndDelta: 0,
		nucleus0Start: 92, nucleus0End: 4,
		nucleusStart: 92, nucleusEnd: 80,
		tailStart: 76, tailEnd: 4,
	},
}

// pitchFromPercent converts an inflection-range percentage to Hz:
// +-1 octave at the percent extremes when inflection is 1.
func pitchFromPercent(basePitch, inflection, pct float64) float64 {
	return basePitch * math.Exp2(((pct-50)/50.0)*inflection)
}

// ApplyPitchPath writes a linear-in-voiced-time pitch ramp across
// list[start:end]. Every record gets VoicePitch and EndVoicePitch; the
// ramp position advances only through voiced records, weighted by
// their durations.
func ApplyPitchPath(list []*Record, start, end int, basePitch, inflection, startPct, endPct float64) {
	startPitch := pitchFromPercent(basePitch, inflection, startPct)
	endPitch := pitchFromPercent(basePitch, inflection, endPct)
	var durations []float64
	for _, rec := range list[start:end] {
		if rec.Flags.IsVoiced {
			durations = append(durations, rec.Duration)
		}
	}
	voicedDuration := floats.Sum(durations)
	pitchDelta := endPitch - startPitch
	curDuration := 0.0
	curPitch := startPitch
	for _, rec := range list[start:end] {
		rec.VoicePitch = curPitch
		if rec.Flags.IsVoiced {
			curDuration += rec.Duration
			curPitch = startPitch + pitchDelta*(curDuration/voicedDuration)
		}
		rec.EndVoicePitch = curPitch
	}
}

// headStepGen yields the row's headSteps then cycles from
// headExtendFrom, so long heads repeat the tail of the step pattern.
func headStepGen(row *intonationParams) func() float64 {
	i := 0
	steps := row.headSteps
	ext := row.headExtendFrom
	return func() float64 {
		var v float64
		if i < len(steps) {
			v = steps[i]
		} else {
			v = steps[ext+(i-ext)%(len(steps)-ext)]
		}
		i++
		return v
	}
}

// CalculatePitches partitions the clause into pre-head, head, nucleus
// and tail and writes the pitch path of each region from the clause
// type's parameter row. Unknown clause types use the statement row.
func CalculatePitches(list []*Record, basePitch, inflection float64, clauseType rune) {
	row := intonationParamTable[clauseType]
	if row == nil {
		row = intonationParamTable['.']
	}

	// Pre-head: everything before the first primary-stressed syllable.
	preHeadStart := 0
	preHeadEnd := len(list)
	for i, rec := range list {
		if rec.SyllableStart && rec.Stress == 1 {
			preHeadEnd = i
			break
		}
	}
	if preHeadEnd-preHeadStart > 0 {
		ApplyPitchPath(list, preHeadStart, preHeadEnd, basePitch, inflection, row.preHeadStart, row.preHeadEnd)
	}

	// Nucleus: from the last primary-stressed syllable start to the
	// start of the following syllable; the tail is what remains.
	nucleusStart, nucleusEnd := len(list), len(list)
	tailStart, tailEnd := len(list), len(list)
	for i := nucleusEnd - 1; i >= preHeadEnd; i-- {
		rec := list[i]
		if !rec.SyllableStart {
			continue
		}
		if rec.Stress == 1 {
			nucleusStart = i
			break
		}
		nucleusEnd = i
		tailStart = i
	}
	hasTail := tailEnd-tailStart > 0
	if hasTail {
		ApplyPitchPath(list, tailStart, tailEnd, basePitch, inflection, row.tailStart, row.tailEnd)
	}
	if nucleusEnd-nucleusStart > 0 {
		if hasTail {
			ApplyPitchPath(list, nucleusStart, nucleusEnd, basePitch, inflection, row.nucleusStart, row.nucleusEnd)
		} else {
			ApplyPitchPath(list, nucleusStart, nucleusEnd, basePitch, inflection, row.nucleus0Start, row.nucleus0End)
		}
	}

	// Head: alternating stressed and unstressed runs between the
	// pre-head and the nucleus.
	if preHeadEnd < nucleusStart {
		nextStep := headStepGen(row)
		lastStressStart := -1
		lastUnstressedRunStart := -1
		stressEndPitch := 0.0
		for i := preHeadEnd; i <= nucleusStart; i++ {
			rec := list[i]
			stressed := rec.Stress == 1
			if !rec.SyllableStart {
				continue
			}
			if lastStressStart >= 0 {
				stressStartPitch := row.headEnd + (row.headStart-row.headEnd)/100.0*nextStep()
				stressEndPitch = stressStartPitch + row.headStressEndDelta
				ApplyPitchPath(list, lastStressStart, i, basePitch, inflection, stressStartPitch, stressEndPitch)
				lastStressStart = -1
			}
			if stressed {
				if lastUnstressedRunStart >= 0 {
					ApplyPitchPath(list, lastUnstressedRunStart, i, basePitch, inflection,
						stressEndPitch+row.headUnstressedRunStartDelta,
						stressEndPitch+row.headUnstressedRunEndDelta)
					lastUnstressedRunStart = -1
				}
				lastStressStart = i
			} else if lastUnstressedRunStart < 0 {
				lastUnstressedRunStart = i
			}
		}
	}
}
