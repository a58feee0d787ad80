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

// Package features translates nucleic acid sequences into sequence features
// ("words") for RUST, peak calling and similar analyses.
//
// A feature Set describes how many letters of a sequence form one
// word, the list of words, and a Dictionary that maps a slice of the input
// sequence to the index of its word.
package features

import (
	"errors"
	"fmt"
)

var (
	// ErrTranslation is returned when a sequence cannot be translated with a
	// feature set.
	ErrTranslation = errors.New("translation failed")
	// ErrFeature is returned when a feature set cannot be built.
	ErrFeature = errors.New("invalid feature")
	// ErrUnknownFeature is returned by Setup for unregistered names.
	ErrUnknownFeature = errors.New("unknown feature")
)

// Dictionary maps slices of a sequence to word indices.
type Dictionary interface {
	// Index returns the word index of code and whether code is defined.
	Index(code string) (int, bool)
}

// Map is a Dictionary held entirely in memory.
type Map map[string]int

// Index implements Dictionary.
func (m Map) Index(code string) (int, bool) {
	i, ok := m[code]
	return i, ok
}

// Set is a feature set.
type Set struct {
	// WordSize is the number of sequence letters forming a word.
	WordSize int
	// Words lists the features, indexed by the values of Dict.
	Words []string
	// Dict maps sequence slices of WordSize letters to indices into Words.
	Dict Dictionary
}

// Translate translates seq with the feature set, stepping step letters at a
// time.  See Translate.
func (s *Set) Translate(seq string, step int) ([][]int, error) {
	return Translate(seq, s.Dict, s.WordSize, step)
}

// Translate converts seq into words of wordSize letters looked up in dict.
// The sequence is read in steps of step letters; when wordSize is not a
// multiple of step, every step yields one word per possible frame so each
// element of the result holds step+1-(wordSize mod step) indices.  Letters at
// the end of seq that cannot complete a step are not translated.
func Translate(seq string, dict Dictionary, wordSize, step int) ([][]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step size must be positive, got %d", ErrTranslation, step)
	}
	if wordSize < 0 {
		return nil, fmt.Errorf("%w: word size must not be negative, got %d", ErrTranslation, wordSize)
	}
	if dict == nil {
		return nil, fmt.Errorf("%w: no dictionary", ErrTranslation)
	}

	wordMod := wordSize % step
	if wordMod == 0 {
		wordMod = step
	}
	frames := step + 1 - wordMod

	extra := wordSize - step
	if extra < 0 {
		extra = 0
	}
	extra += len(seq) % step

	var translated [][]int
	for i := 0; i < len(seq)-extra; i += step {
		words := make([]int, frames)
		for frame := 0; frame < frames; frame++ {
			start, end := i+frame, i+frame+wordSize
			if end > len(seq) {
				return nil, fmt.Errorf("%w: incomplete word at position %d", ErrTranslation, start)
			}
			index, ok := dict.Index(seq[start:end])
			if !ok {
				return nil, fmt.Errorf("%w: %q at position %d is not defined by the feature set", ErrTranslation, seq[start:end], start)
			}
			words[frame] = index
		}
		translated = append(translated, words)
	}
	return translated, nil
}
