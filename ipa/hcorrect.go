// Copyright (c) 2026, The NVSpeechPlayer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipa

// CorrectHPhonemes fills in the missing acoustic parameters of /h/-like
// records (including inserted aspirations) by copying from the next
// record when it exists and is not silence, otherwise from the previous
// record.
// The result is aspiration coarticulated with the adjacent vowel.
func CorrectHPhonemes(list []*Record) {
	last := len(list) - 1
	for i, cur := range list {
		if !cur.CopyAdjacent {
			continue
		}
		var prev, next *Record
		if i > 0 {
			prev = list[i-1]
		}
		if i < last {
			next = list[i+1]
		}
		adjacent := prev
		if next != nil && !next.Silence {
			adjacent = next
		}
		if adjacent == nil || adjacent.Params == nil {
			continue
		}
		for k, v := range adjacent.Params {
			if _, ok := cur.Params[k]; !ok {
				cur.Params[k] = v
			}
		}
	}
}
