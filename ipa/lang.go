// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipa

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeTag lowercases a BCP-47-ish tag, folds '_' to '-', and runs
// it through x/text canonicalization when it parses (so e.g. en-UK
// becomes en-gb). Unparseable tags are kept as lowered input; the
// caller falls back to default behavior for them.
func normalizeTag(tag string) string {
	tag = strings.ToLower(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return ""
	}
	if t, err := language.Parse(tag); err == nil {
		tag = strings.ToLower(t.String())
	}
	return tag
}

// langProfile is the set of dialect switches the normalizer and timer
// condition on, resolved once per call from the language tag.
type langProfile struct {
	tag string

	isEnglish          bool
	isNonRhoticEnglish bool
	isRhoticEnglish    bool
	isHungarian        bool
	isPolish           bool
	isSpanish          bool
	isPortuguese       bool
	isFrench           bool
	isGerman           bool
	isItalian          bool
	isDanish           bool
	isRomanian         bool
}

func resolveProfile(languageTag string) langProfile {
	lang := normalizeTag(languageTag)
	p := langProfile{tag: lang}
	p.isEnglish = strings.HasPrefix(lang, "en")
	// eSpeak's default English voice "en" is British (non-rhotic), as
	// are en-gb and en-uk; every other en-* variant is treated as rhotic.
	p.isNonRhoticEnglish = p.isEnglish &&
		(lang == "en" || strings.HasPrefix(lang, "en-gb") || strings.HasPrefix(lang, "en-uk"))
	p.isRhoticEnglish = p.isEnglish && !p.isNonRhoticEnglish
	p.isHungarian = strings.HasPrefix(lang, "hu")
	p.isPolish = strings.HasPrefix(lang, "pl")
	p.isSpanish = strings.HasPrefix(lang, "es")
	p.isPortuguese = strings.HasPrefix(lang, "pt")
	p.isFrench = strings.HasPrefix(lang, "fr")
	p.isGerman = strings.HasPrefix(lang, "de")
	p.isItalian = strings.HasPrefix(lang, "it")
	p.isDanish = strings.HasPrefix(lang, "da")
	p.isRomanian = strings.HasPrefix(lang, "ro")
	return p
}

// stressSlowdownByLang selects how much stressed syllables are slowed.
// English keeps the stronger shaping; the milder factors keep that
// cadence from bleeding into other voices.
var stressSlowdownByLang = map[string][2]float64{
	"default": {1.4, 1.1},
	"en":      {1.4, 1.1},
	"hu":      {1.25, 1.07},
	"pl":      {1.25, 1.07},
	"es":      {1.25, 1.07},
	"pt":      {1.25, 1.07},
	"fr":      {1.25, 1.07},
	"de":      {1.25, 1.07},
	"it":      {1.25, 1.07},
	"da":      {1.25, 1.07},
	"ro":      {1.25, 1.07},
}

// stressSlowdown returns (primaryDiv, secondaryDiv) for the tag,
// preferring the most specific match, then progressively trimmed
// right-hand components, then default.
func stressSlowdown(languageTag string) (float64, float64) {
	lang := normalizeTag(languageTag)
	if lang == "" {
		d := stressSlowdownByLang["default"]
		return d[0], d[1]
	}
	parts := strings.Split(lang, "-")
	for i := len(parts); i > 0; i-- {
		key := strings.Join(parts[:i], "-")
		if v, ok := stressSlowdownByLang[key]; ok {
			return v[0], v[1]
		}
	}
	d := stressSlowdownByLang["default"]
	return d[0], d[1]
}
