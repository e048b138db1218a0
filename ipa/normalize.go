// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipa

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/fastfinge/NVSpeechPlayer/phoneme"
)

const (
	tie         = "͡" // combining double inverted breve (tie bar)
	tieVariant  = "͜" // combining double breve below
	nasalTilde  = "̃" // combining tilde
	syllabic    = "̩" // combining vertical line below
	rhoticHook  = "˞" // ˞
	stressMark  = "ˈ"
	stress2Mark = "ˌ"
	longMark    = "ː"
)

var (
	rePTWordInitialR = regexp.MustCompile(`(^|\s)R`)
	reWhitespaceRun  = regexp.MustCompile(`\s+`)
)

// ruleSet is an insertion-ordered replacement table. Later Add calls
// for an existing key update the value in place, like a dict.
type ruleSet struct {
	keys []string
	m    map[string]string
}

func newRuleSet() *ruleSet {
	return &ruleSet{m: make(map[string]string)}
}

func (rs *ruleSet) Add(k, v string) {
	if _, ok := rs.m[k]; !ok {
		rs.keys = append(rs.keys, k)
	}
	rs.m[k] = v
}

// ApplyOrdered replaces keys in insertion order.
func (rs *ruleSet) ApplyOrdered(text string) string {
	for _, k := range rs.keys {
		text = strings.ReplaceAll(text, k, rs.m[k])
	}
	return text
}

// ApplyLongestFirst replaces keys by descending rune length, so that
// e.g. RR2 wins over R2. A plain pass in table order is incorrect here.
func (rs *ruleSet) ApplyLongestFirst(text string) string {
	keys := make([]string, len(rs.keys))
	copy(keys, rs.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		li, lj := len([]rune(keys[i])), len([]rune(keys[j]))
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		text = strings.ReplaceAll(text, k, rs.m[k])
	}
	return text
}

// Normalize rewrites raw eSpeak phoneme output -- ASCII mnemonics,
// true IPA, or a mix -- into the canonical IPA alphabet of the phoneme
// table. Stress is marked with ˈ/ˌ, length with ː, and ties with ͡.
// Unknown symbols survive; the segmenter drops them later. The rewrite
// order is fixed and load-bearing.
func Normalize(text, languageTag string) string {
	return normalizeWith(phoneme.Default, text, languageTag)
}

func normalizeWith(data phoneme.Table, text, languageTag string) string {
	p := resolveProfile(languageTag)

	// Lossy decode plus NFC so combining-tilde vowel sequences from
	// --ipa output match the precomposed nasal-vowel rules below.
	text = strings.ToValidUTF8(text, "")
	text = norm.NFC.String(text)

	// eSpeak utility codes and wrapper punctuation.
	text = strings.ReplaceAll(text, tieVariant, tie)
	for _, c := range []string{"[", "]", "(", ")", "{", "}", "/", "\\"} {
		text = strings.ReplaceAll(text, c, "")
	}
	text = strings.ReplaceAll(text, "||", " ")
	text = strings.ReplaceAll(text, "|", "")
	text = strings.ReplaceAll(text, "%", "")
	text = strings.ReplaceAll(text, "=", "")
	text = strings.ReplaceAll(text, "!", "")
	text = strings.ReplaceAll(text, "_:", " ")
	text = strings.ReplaceAll(text, "_", " ")
	text = strings.ReplaceAll(text, "-", "")

	// Stress and length markers.
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "'", stressMark)
	text = strings.ReplaceAll(text, ",", stress2Mark)
	text = strings.ReplaceAll(text, ":", longMark)

	// Portuguese nasalization: -x mnemonics use '~', --ipa uses the
	// combining tilde. Fold both into stable single-codepoint vowels
	// that exist in the table so they don't get stripped. Longest
	// first so &U~ is handled before &~. NFC above already composed
	// o/u/e/i plus tilde; only the non-composable pairs remain.
	if p.isPortuguese {
		text = strings.ReplaceAll(text, "&U~", "ãᴜ")
		text = strings.ReplaceAll(text, "U~", "ᴜ")
		text = strings.ReplaceAll(text, "&~", "ã")
		text = strings.ReplaceAll(text, "a~", "ã")
		text = strings.ReplaceAll(text, "o~", "õ")
		text = strings.ReplaceAll(text, "u~", "ũ")
		text = strings.ReplaceAll(text, "e~", "ẽ")
		text = strings.ReplaceAll(text, "i~", "ĩ")

		text = strings.ReplaceAll(text, "ɐ"+nasalTilde+"ʊ"+nasalTilde, "ãᴜ")
		text = strings.ReplaceAll(text, "ɐ"+nasalTilde, "ã")
		text = strings.ReplaceAll(text, "ʊ"+nasalTilde, "ᴜ")
	}

	// Diacritics we don't model.
	text = strings.ReplaceAll(text, "ʲ", "")
	text = strings.ReplaceAll(text, nasalTilde, "")
	text = strings.ReplaceAll(text, "~", "")

	multi := buildMultiRules(data, p)

	if p.isGerman {
		text = strings.ReplaceAll(text, "ɐ̯", "ɐ")
	}
	// Portuguese strong R at true word starts only, so clusters like
	// bR stay a tap.
	if p.isPortuguese {
		text = rePTWordInitialR.ReplaceAllString(text, "${1}x")
	}

	text = multi.ApplyLongestFirst(text)

	// Stray numeric allophone markers (e.g. t2) left after the multi
	// pass would otherwise surface as unknown phonemes.
	text = strings.ReplaceAll(text, "2", "")

	text = buildASCIIRules(data, p).ApplyOrdered(text)

	// Late dialect rewrites on already-IPA input.
	if p.isEnglish && p.isNonRhoticEnglish && data.Has("O") {
		text = strings.ReplaceAll(text, "ɔ", "O")
	}
	if p.isPortuguese && data.Has("ᴐ") {
		text = strings.ReplaceAll(text, "ɔ", "ᴐ")
	}

	// Leftover mnemonic modifiers.
	text = strings.ReplaceAll(text, ";", "")
	text = strings.ReplaceAll(text, "^", "")

	// Dark-L and syllabic-L variants.
	text = strings.ReplaceAll(text, "l"+syllabic, "əl")
	text = strings.ReplaceAll(text, "ɫ"+syllabic, "əl")
	text = strings.ReplaceAll(text, "ə"+tie+"l", "əl")
	text = strings.ReplaceAll(text, "ʊ"+tie+"l", "əl")

	if !data.Has("ᵻ") {
		text = strings.ReplaceAll(text, "ᵻ", "ɪ")
	}

	// Rhotic hook and syllabic r.
	text = strings.ReplaceAll(text, rhoticHook, "ɹ")
	syllR := "əɹ"
	if data.Has("ɚ") {
		syllR = "ɚ"
	}
	text = strings.ReplaceAll(text, "ɹ"+syllabic, syllR)
	text = strings.ReplaceAll(text, "r"+syllabic, syllR)
	if !data.Has("ɚ") {
		text = strings.ReplaceAll(text, "ɚ", "əɹ")
	}
	if !data.Has("ɝ") {
		text = strings.ReplaceAll(text, "ɝ", "ɜɹ")
	}

	if p.isEnglish {
		text = strings.ReplaceAll(text, "r", "ɹ")
	}
	// French and German usually realise /r/ as [ʁ].
	if !p.isEnglish && (p.isFrench || p.isGerman) && data.Has("ʁ") {
		text = strings.ReplaceAll(text, "r", "ʁ")
	}

	text = applyApproximations(data, p, text)

	// Precomposed nasal vowels: keep them only for Portuguese with the
	// corresponding table entries; otherwise fall back to plain vowels.
	stripNasals := true
	if p.isPortuguese && data.Has("ã") && data.Has("õ") && data.Has("ũ") {
		stripNasals = false
	}
	if stripNasals {
		text = strings.ReplaceAll(text, "ã", "a")
		text = strings.ReplaceAll(text, "ẽ", "e")
		text = strings.ReplaceAll(text, "ĩ", "i")
		text = strings.ReplaceAll(text, "õ", "o")
		text = strings.ReplaceAll(text, "ũ", "u")
	}

	// English TRAP.
	if p.isEnglish {
		text = strings.ReplaceAll(text, "a", "æ")
	}

	text = strings.ReplaceAll(text, "#", "")
	text = reWhitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// buildMultiRules assembles the multi-character replacement table for
// the profile. Applied longest-first in one pass.
func buildMultiRules(data phoneme.Table, p langProfile) *ruleSet {
	m := newRuleSet()

	// eSpeak tap markers.
	m.Add("**", "ɾ")
	m.Add("*", "ɾ")
	// Affricates: plain IPA sequences become tied forms so they hit
	// the affricate entries.
	m.Add("tʃ", "t"+tie+"ʃ")
	m.Add("dʒ", "d"+tie+"ʒ")
	m.Add("tɕ", "t"+tie+"ɕ")
	m.Add("dʑ", "d"+tie+"ʑ")
	m.Add("t"+tie+"S", "t"+tie+"ʃ")
	m.Add("d"+tie+"Z", "d"+tie+"ʒ")
	m.Add("ts", "t"+tie+"s")
	m.Add("dz", "d"+tie+"z")
	// Polish palatalized affricates/fricatives (mnemonics).
	m.Add("S;", "ɕ")
	m.Add("Z;", "ʑ")
	m.Add("ts;", "t"+tie+"ɕ")
	m.Add("dz;", "d"+tie+"ʑ")
	// Spanish/Portuguese palatals.
	m.Add("n^", "ɲ")
	m.Add("l^", "ʎ")
	if p.isPortuguese {
		// 'lh' often appears as lj.
		m.Add("lj", "ʎ")
	}
	// Rolled r markers.
	m.Add("RR2", "r")
	m.Add("R2", "r")
	// Unstressed/reduced English vowels.
	m.Add("I2", "ɪ")
	if p.isRhoticEnglish {
		m.Add("I#", "ᵻ")
		m.Add("I2#", "ᵻ")
	} else {
		m.Add("I#", "ɪ")
		m.Add("I2#", "ɪ")
	}
	m.Add("e#", "ɛ")
	// Syllabic /l/.
	m.Add("@L", "əl")

	// German ich-Laut appears as C in mnemonics (ich, Maedchen).
	if p.isGerman {
		if data.Has("ç") {
			m.Add("C", "ç")
		} else {
			m.Add("C", "x")
		}
	}

	if p.isPortuguese {
		// Some voices output rr for a strong R.
		m.Add("rr", "x")
		// Common diphthongs as tied pairs so the glide is audible
		// without adding a syllable.
		m.Add("aI", "a"+tie+"i")
		m.Add("eI", "e"+tie+"i")
		m.Add("oI", "o"+tie+"i")
		m.Add("aU", "a"+tie+"u")
		m.Add("eU", "e"+tie+"u")
		m.Add("EU", "ɛ"+tie+"u")
		// "ou" is typically emitted as ow.
		m.Add("ow", "o"+tie+"u")
	}

	if p.isHungarian {
		// Long e is a different vowel quality from short e; route it
		// to an internal symbol so it can be tuned independently.
		m.Add("eː", "ᴇː")
		// Phrase lengthening can produce Aː, but Hungarian has no
		// phonemic long counterpart of the short a; collapse it.
		m.Add("Aː", "A")
		// IPA forms of the short/long a pair go to the same internal
		// vowels as the mnemonics so tuning stays in one place.
		m.Add("aː", "ᴀː")
		m.Add("ɒ", "ᴒ")
		m.Add("ɑ", "ᴒ")
	}

	m.Add("tS", "t"+tie+"ʃ")
	m.Add("dZ", "d"+tie+"ʒ")

	if p.isEnglish {
		// PRICE/MOUTH start on ɑ so the later TRAP mapping doesn't
		// touch them. The bare-IPA pairs cover --ipa output, which
		// emits diphthongs without a tie bar.
		m.Add("aI", "ɑ"+tie+"ɪ")
		m.Add("aU", "ɑ"+tie+"ʊ")
		m.Add("OI", "ɔ"+tie+"ɪ")
		m.Add("aɪ", "ɑ"+tie+"ɪ")
		m.Add("aʊ", "ɑ"+tie+"ʊ")
		m.Add("ɔɪ", "ɔ"+tie+"ɪ")
		// BATH/PALM: TRAP-like in rhotic accents, broad in UK.
		if p.isRhoticEnglish {
			m.Add("aa", "æ")
			m.Add("oU", "o"+tie+"ʊ")
			m.Add("oʊ", "o"+tie+"ʊ")
			m.Add("əʊ", "o"+tie+"u")
			m.Add("eI", "e"+tie+"i")
			m.Add("eɪ", "e"+tie+"i")
			m.Add("t#", "ɾ")
			m.Add("d#", "ɾ")
		} else {
			m.Add("aa", "ɑː")
			m.Add("oU", "ə"+tie+"ʊ")
			m.Add("oʊ", "ə"+tie+"ʊ")
			m.Add("əʊ", "ə"+tie+"ʊ")
			m.Add("eI", "e"+tie+"ɪ")
			m.Add("eɪ", "e"+tie+"ɪ")
		}
	}

	// --ipa output uses ɜ(ː) for stressed NURSE even in rhotic
	// accents; convert to the r-coloured vowel there.
	if p.isEnglish && p.isRhoticEnglish {
		m.Add("ɜː", "ɝː")
		m.Add("ɜ", "ɝ")
	}

	// English rhotic clusters.
	if p.isEnglish {
		if p.isRhoticEnglish {
			m.Add("3ː", "ɝː")
			m.Add("3", "ɚ")
			m.Add("A@", "ɑɹ")
			m.Add("O@", "ɔːɹ")
			m.Add("o@", "ɔːɹ")
			m.Add("i@3", "ɪɹ")
			m.Add("i@", "ɪɹ")
			m.Add("e@", "ɛɹ")
		} else {
			m.Add("3ː", "ɜː")
			m.Add("3", "ə")
			m.Add("A@", "ɑː")
			// Keep a distinct THOUGHT/NORTH vowel when the table
			// provides one, so UK and US don't collapse.
			if data.Has("O") {
				m.Add("O@", "Oː")
				m.Add("o@", "Oː")
			} else {
				m.Add("O@", "ɔː")
				m.Add("o@", "ɔː")
			}
			m.Add("i@3", "ɪə")
			m.Add("i@", "ɪə")
			m.Add("e@", "ɛə")
		}
	}

	// German vocalic R variants.
	if p.isGerman {
		m.Add("ɐ̯", "ɐ")
		m.Add("R2", "ɐ")
		m.Add("@2", "ɐ")
	}

	return m
}

// buildASCIIRules assembles the single-character mnemonic table.
func buildASCIIRules(data phoneme.Table, p langProfile) *ruleSet {
	m := newRuleSet()
	m.Add("@", "ə")
	m.Add("E", "ɛ")
	// O is overloaded: UK keeps a rounded THOUGHT vowel when the
	// table has one, US maps to the more open ɔ, Portuguese routes
	// to its dedicated open o.
	switch {
	case p.isPortuguese && data.Has("ᴐ"):
		m.Add("O", "ᴐ")
	case p.isEnglish && p.isNonRhoticEnglish && data.Has("O"):
		m.Add("O", "O")
	default:
		m.Add("O", "ɔ")
	}
	m.Add("V", "ʌ")
	if p.isPortuguese {
		m.Add("U", "u")
		m.Add("I", "i")
	} else {
		m.Add("U", "ʊ")
		m.Add("I", "ɪ")
	}
	m.Add("J", "j")
	// '?' is used for glottal stop / stoed in some languages.
	if data.Has("ʔ") {
		m.Add("?", "ʔ")
	} else {
		m.Add("?", "")
	}
	m.Add("N", "ŋ")
	m.Add("T", "θ")
	m.Add("D", "ð")
	m.Add("B", "b")
	m.Add("Q", "g")
	if p.isGerman {
		m.Add("x", "x")
	} else {
		m.Add("x", "h")
	}
	m.Add("&", "ɐ")
	m.Add("Y", "ø")
	m.Add("W", "œ")

	// Portuguese uses y for a /j/ glide.
	if p.isPortuguese {
		m.Add("y", "j")
	}
	// Hungarian long and short a are distinct phonemes; both go to
	// dedicated internal vowels so they can be tuned without touching
	// other languages' a or UK LOT.
	if p.isHungarian {
		m.Add("a", "ᴀ")
		m.Add("A", "ᴒ")
	} else {
		m.Add("A", "ɑ")
	}
	m.Add("S", "ʃ")
	m.Add("Z", "ʒ")
	// Polish trilled r and the vowel y.
	if p.isPolish {
		m.Add("R", "r")
		m.Add("y", "ɨ")
	}
	// Portuguese onset clusters: tr often outputs R for a tap-like r.
	if p.isPortuguese {
		m.Add("R", "ɾ")
	}
	// Romanian uses y for /ɨ/.
	if p.isRomanian {
		m.Add("y", "ɨ")
	}
	// Danish R is uvular.
	if p.isDanish {
		if data.Has("ʁ") {
			m.Add("R", "ʁ")
		} else {
			m.Add("R", "r")
		}
	}
	// German vocalic -er.
	if p.isGerman && data.Has("ɐ") {
		m.Add("3", "ɐ")
	}
	// German fallback in case mnemonic C survived the multi pass.
	if p.isGerman {
		if data.Has("ç") {
			m.Add("C", "ç")
		} else {
			m.Add("C", "x")
		}
	}
	// LOT differs across English accents.
	if p.isEnglish && p.isRhoticEnglish {
		m.Add("0", "ɑ")
	} else {
		m.Add("0", "ɒ")
	}
	return m
}

// applyApproximations substitutes cross-language phonemes the table
// doesn't carry with their nearest supported neighbors.
func applyApproximations(data phoneme.Table, p langProfile, text string) string {
	approx := func(preferred, fallback string) string {
		if data.Has(preferred) {
			return preferred
		}
		return fallback
	}
	pairs := []struct{ from, to string }{
		// Polish.
		{"ɕ", approx("ɕ", "ʃ")},
		{"ʑ", approx("ʑ", "ʒ")},
		{"ʂ", approx("ʂ", "ʃ")},
		{"ʐ", approx("ʐ", "ʒ")},
		{"t" + tie + "ɕ", approx("t"+tie+"ɕ", "t"+tie+"ʃ")},
		{"d" + tie + "ʑ", approx("d"+tie+"ʑ", "d"+tie+"ʒ")},
		// Spanish/Portuguese.
		{"β", "b"},
		{"ɣ", "g"},
		{"ʝ", "j"},
		{"ʎ", approx("ʎ", "l")},
		// Palatal stops.
		{"c", "k"},
		{"ɟ", "g"},
		// Nasals.
		{"ɲ", approx("ɲ", "n")},
		// Misc vowels.
		{"ɘ", approx("ɘ", "ə")},
		{"ɵ", approx("ɵ", approx("ø", "o"))},
		{"ɤ", approx("ɤ", "ʌ")},
	}
	// x keeps its place only for German voices with a table entry.
	xTo := "h"
	if p.isGerman && data.Has("x") {
		xTo = "x"
	}
	pairs = append(pairs, struct{ from, to string }{"x", xTo})
	for _, pr := range pairs {
		if pr.from == pr.to {
			continue
		}
		text = strings.ReplaceAll(text, pr.from, pr.to)
	}
	return text
}
