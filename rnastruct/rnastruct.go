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

// Package rnastruct provides tables for RNA secondary structures.
package rnastruct

import (
	"errors"
	"fmt"
	"strings"
)

// G-quadruplex letters.
const (
	GQuadN = "N"
	GQuadG = "G"
)

// ErrUndefinedTriplet is returned for triplets absent from the G-quadruplex
// table.  NGN is never expected in the input and reports this error.
var ErrUndefinedTriplet = errors.New("undefined G-quadruplex triplet")

// GQuadLetters lists the G-quadruplex alphabet.
var GQuadLetters = []string{GQuadN, GQuadG}

var gquadTable = map[string]string{
	"GGG": GQuadG,
	"GGN": GQuadG,
	"GNN": GQuadG,
	"NNN": GQuadN,
	"NNG": GQuadG,
	"NGG": GQuadG,
	"GNG": GQuadG,
}

// GQuadTable returns a copy of the G-quadruplex translation table.
func GQuadTable() map[string]string {
	out := make(map[string]string, len(gquadTable))
	for k, v := range gquadTable {
		out[k] = v
	}
	return out
}

// GQuad translates a triplet of G-quadruplex letters.
func GQuad(triplet string) (string, error) {
	letter, ok := gquadTable[triplet]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUndefinedTriplet, triplet)
	}
	return letter, nil
}

// TranslateGQuad translates seq, written in the G-quadruplex alphabet,
// triplet by triplet.  Trailing letters that do not form a triplet are ignored.
func TranslateGQuad(seq string) (string, error) {
	var b strings.Builder
	for i := 0; i+3 <= len(seq); i += 3 {
		letter, err := GQuad(seq[i : i+3])
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		b.WriteString(letter)
	}
	return b.String(), nil
}
