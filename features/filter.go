// Copyright 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package features

import (
	"strings"

	"github.com/gatfieldlab/genomics-tools/codons"
)

// Filter drops words that cannot occur inside a coding sequence.  Amino acid
// words (recognised by a leading "*" word) containing a stop are dropped,
// nucleotide words are dropped when any of their codons is a stop codon, and
// for secondary structure words (a leading "Helix" word) the words containing
// a Turn are dropped.
func Filter(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	var filtered []string
	if strings.HasPrefix(words[0], codons.Stop) {
		for _, word := range words {
			if !strings.Contains(word, codons.Stop) {
				filtered = append(filtered, word)
			}
		}
	} else {
		for _, word := range words {
			if !hasStopCodon(word) {
				filtered = append(filtered, word)
			}
		}
	}
	if strings.HasPrefix(words[0], "Helix") {
		filtered = filtered[:0]
		for _, word := range words {
			if !strings.Contains(word, "Turn") {
				filtered = append(filtered, word)
			}
		}
	}
	return filtered
}

func hasStopCodon(word string) bool {
	for i := 0; i < len(word); i += codonSize {
		end := i + codonSize
		if end > len(word) {
			end = len(word)
		}
		if codons.IsStop(word[i:end]) {
			return true
		}
	}
	return false
}
