// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipa

import (
	"math"
	"strings"
)

// CalculateTimes assigns Duration and FadeDuration (ms) to every
// record. baseSpeed is a unitless multiplier (1.0 = reference rate);
// stressed syllables run slower by the language's stress divisors.
func CalculateTimes(list []*Record, baseSpeed float64, languageTag string) {
	var lastPhoneme *Record
	syllableStress := 0
	speed := baseSpeed
	lang := normalizeTag(languageTag)
	primaryDiv, secondaryDiv := stressSlowdown(languageTag)
	isEnglish := strings.HasPrefix(lang, "en")
	isHungarian := strings.HasPrefix(lang, "hu")

	for i, rec := range list {
		var next *Record
		if i+1 < len(list) {
			next = list[i+1]
		}
		if rec.SyllableStart {
			syllableStress = rec.Stress
			switch syllableStress {
			case 1:
				speed = baseSpeed / primaryDiv
			case 2:
				speed = baseSpeed / secondaryDiv
			default:
				speed = baseSpeed
			}
		}
		duration := 60.0 / speed
		fade := 10.0 / speed
		switch {
		case rec.PreStopGap:
			duration = 41.0 / speed
		case rec.PostStopAspiration:
			duration = 20.0 / speed
		case rec.Flags.IsTap || rec.Flags.IsTrill:
			// Short, but no forced silence gap like a full stop.
			if rec.Flags.IsTrill {
				duration = 22.0 / speed
			} else {
				duration = math.Min(14.0/speed, 14.0)
			}
			fade = 0.001
		case rec.Flags.IsStop:
			duration = math.Min(6.0/speed, 6.0)
			fade = 0.001
		case rec.Flags.IsAfricate:
			duration = 24.0 / speed
			fade = 0.001
		case !rec.Flags.IsVoiced:
			duration = 45.0 / speed
		case rec.Flags.IsVowel:
			if lastPhoneme != nil && (lastPhoneme.Flags.IsLiquid || lastPhoneme.Flags.IsSemivowel) {
				fade = 25.0 / speed
			}
			switch {
			case rec.TiedTo:
				// PRICE/MOUTH onsets get a touch more time so they
				// don't sound clipped; FACE/GOAT stay as-is.
				if isEnglish && rec.Char == 'ɑ' {
					duration = 42.0 / speed
				} else {
					duration = 40.0 / speed
				}
			case rec.TiedFrom:
				// A more audible offglide for five/nine.
				if isEnglish && (rec.Char == 'ɪ' || rec.Char == 'ʊ') &&
					lastPhoneme != nil && lastPhoneme.TiedTo && lastPhoneme.Char == 'ɑ' {
					duration = 24.0 / speed
					fade = 18.0 / speed
				} else {
					duration = 20.0 / speed
					fade = 20.0 / speed
				}
			case syllableStress == 0 && !rec.SyllableStart &&
				next != nil && !next.WordStart && (next.Flags.IsLiquid || next.Flags.IsNasal):
				if next.Flags.IsLiquid {
					duration = 30.0 / speed
				} else {
					duration = 40.0 / speed
				}
			}
		default: // voiced non-vowel
			duration = 30.0 / speed
			if rec.Flags.IsLiquid || rec.Flags.IsSemivowel {
				fade = 20.0 / speed
			}
		}

		// Hungarian short a stays clearly shorter than long a in
		// running speech.
		if isHungarian && rec.Flags.IsVowel && rec.Char == 'ᴒ' && !rec.Lengthened {
			duration *= 0.85
		}
		// English word-final long /u/ (blue, new, view) sounds
		// over-held, especially after liquids and semivowels.
		if isEnglish && rec.Flags.IsVowel && rec.Char == 'u' && rec.Lengthened {
			if next == nil || next.WordStart {
				duration *= 0.80
				fade = math.Min(fade, 14.0/speed)
			}
		}
		if rec.Lengthened {
			// Vowel length is phonemic in Hungarian.
			if isHungarian {
				duration *= 1.3
			} else {
				duration *= 1.05
			}
		}

		rec.Duration = duration
		rec.FadeDuration = fade
		lastPhoneme = rec
	}
}
