// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phoneme

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed data.toml
var dataTOML []byte

// Default is the process-wide phoneme table, loaded once from the
// embedded asset. Read-only after init.
var Default Table

func init() {
	var err error
	Default, err = parseTable(dataTOML)
	if err != nil {
		panic(fmt.Sprintf("phoneme: bad embedded table: %s", err))
	}
}

// flagSetters maps asset flag keys onto Flags fields.
var flagSetters = map[string]func(*Phoneme){
	"vowel":        func(p *Phoneme) { p.Flags.IsVowel = true },
	"voiced":       func(p *Phoneme) { p.Flags.IsVoiced = true },
	"stop":         func(p *Phoneme) { p.Flags.IsStop = true },
	"africate":     func(p *Phoneme) { p.Flags.IsAfricate = true },
	"liquid":       func(p *Phoneme) { p.Flags.IsLiquid = true },
	"nasal":        func(p *Phoneme) { p.Flags.IsNasal = true },
	"semivowel":    func(p *Phoneme) { p.Flags.IsSemivowel = true },
	"tap":          func(p *Phoneme) { p.Flags.IsTap = true },
	"trill":        func(p *Phoneme) { p.Flags.IsTrill = true },
	"copyAdjacent": func(p *Phoneme) { p.CopyAdjacent = true },
}

// parseTable decodes the TOML asset. Each entry is a flat table whose
// boolean keys are class flags and whose numeric keys are frame
// parameters; any other key is a defect in the asset.
func parseTable(src []byte) (Table, error) {
	var raw map[string]map[string]interface{}
	if err := toml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	tbl := make(Table, len(raw))
	for sym, fields := range raw {
		ph := &Phoneme{Params: make(map[string]float64)}
		for k, v := range fields {
			switch val := v.(type) {
			case bool:
				set, ok := flagSetters[k]
				if !ok || !val {
					return nil, fmt.Errorf("entry %q: unknown flag %q", sym, k)
				}
				set(ph)
			case float64:
				if !IsFrameParam(k) {
					return nil, fmt.Errorf("entry %q: unknown parameter %q", sym, k)
				}
				ph.Params[k] = val
			case int64:
				if !IsFrameParam(k) {
					return nil, fmt.Errorf("entry %q: unknown parameter %q", sym, k)
				}
				ph.Params[k] = float64(val)
			default:
				return nil, fmt.Errorf("entry %q: key %q has unsupported type %T", sym, k, v)
			}
		}
		tbl[sym] = ph
	}
	return tbl, nil
}
