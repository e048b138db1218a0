// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipa

import (
	"strings"

	"github.com/fastfinge/NVSpeechPlayer/phoneme"
)

const (
	tieRune     = '͡'
	longRune    = 'ː'
	stressRune  = 'ˈ'
	stress2Rune = 'ˌ'
)

// scanned is one scanner yield: the source character and its record,
// nil when the character maps to no table entry.
type scanned struct {
	char rune
	rec  *Record
}

// scan walks the canonical IPA string with a small look-ahead,
// resolving tied 3-rune windows, lengthened 2-rune windows, then
// single characters. Stress marks are a pending state consumed by the
// next matched phoneme.
func scan(data phoneme.Table, text string) []scanned {
	runes := []rune(text)
	n := len(runes)
	var out []scanned
	curStress := 0
	for i := 0; i < n; {
		char := runes[i]
		if char == stressRune {
			curStress = 1
			i++
			continue
		}
		if char == stress2Rune {
			curStress = 2
			i++
			continue
		}
		isLengthened := i+1 < n && runes[i+1] == longRune
		isTiedTo := i+1 < n && runes[i+1] == tieRune
		isTiedFrom := i > 0 && runes[i-1] == tieRune

		var entry *phoneme.Phoneme
		width := 1
		tieInternal := false
		if isTiedTo {
			if i+2 < n {
				entry = data.Get(string(runes[i : i+3]))
			}
			if entry != nil {
				// The whole tied window (an affricate entry) was
				// consumed as one record; the tie is internal.
				width = 3
				tieInternal = true
			} else {
				// Skip past the tie bar; the second element of the
				// pair is picked up on the next iteration.
				width = 2
			}
		} else if isLengthened {
			entry = data.Get(string(runes[i : i+2]))
			width = 2
		}
		if entry == nil {
			entry = data.Get(string(char))
		}
		if entry == nil {
			out = append(out, scanned{char: char})
			i += width
			continue
		}
		rec := newRecord(entry, char)
		if curStress != 0 {
			rec.Stress = curStress
			curStress = 0
		}
		if isTiedFrom {
			rec.TiedFrom = true
		} else if isTiedTo && !tieInternal {
			rec.TiedTo = true
		}
		if isLengthened {
			rec.Lengthened = true
		}
		out = append(out, scanned{char: char, rec: rec})
		i += width
	}
	return out
}

// ToPhonemes segments a canonical IPA string into the flat phoneme
// record list, attaching stress, syllable and word boundaries, and
// inserting the synthetic aspiration and pre-stop silence records.
// Unknown characters are dropped. An empty language defaults to
// English segmentation behavior.
func ToPhonemes(ipaText, languageTag string) []*Record {
	return toPhonemes(phoneme.Default, ipaText, languageTag)
}

func toPhonemes(data phoneme.Table, ipaText, languageTag string) []*Record {
	lang := normalizeTag(languageTag)
	isEnglish := lang == "" || strings.HasPrefix(lang, "en")

	var list []*Record
	newWord := true
	var lastPhoneme *Record
	var syllableStart *Record
	for _, sc := range scan(data, ipaText) {
		if sc.char == ' ' {
			newWord = true
			continue
		}
		rec := sc.rec
		if rec == nil {
			continue
		}
		stress := rec.Stress
		rec.Stress = 0
		if lastPhoneme != nil && !lastPhoneme.Flags.IsVowel && rec.Flags.IsVowel {
			// The consonant directly before a vowel is the onset of
			// the vowel's syllable.
			lastPhoneme.SyllableStart = true
			syllableStart = lastPhoneme
		} else if stress == 1 && lastPhoneme != nil && lastPhoneme.Flags.IsVowel {
			rec.SyllableStart = true
			syllableStart = rec
		}
		if isEnglish && lastPhoneme != nil &&
			lastPhoneme.Flags.IsStop && !lastPhoneme.Flags.IsVoiced &&
			rec.Flags.IsVoiced && !rec.Flags.IsStop && !rec.Flags.IsAfricate {
			// Voiceless stop into a voiced continuant: insert
			// aspiration as a copy of /h/; its spectrum is filled in
			// from the neighbor by the h-correction pass.
			if h := data.Get("h"); h != nil {
				psa := newRecord(h, 0)
				psa.PostStopAspiration = true
				list = append(list, psa)
				lastPhoneme = psa
			}
		}
		if newWord {
			newWord = false
			rec.WordStart = true
			rec.SyllableStart = true
			syllableStart = rec
		}
		if stress != 0 {
			if syllableStart != nil {
				syllableStart.Stress = stress
			}
		} else if rec.Flags.IsStop || rec.Flags.IsAfricate {
			list = append(list, &Record{Silence: true, PreStopGap: true})
		}
		list = append(list, rec)
		lastPhoneme = rec
	}
	return list
}
