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

// Package codons provides the standard genetic code, side chain charges and
// codon usage related tables.
package codons

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Stop is the amino acid letter assigned to stop codons.
const Stop = "*"

// Side chain charge classes.
const (
	Neutral  = "U"
	Negative = "N"
	Positive = "P"
)

var (
	// ErrUnknownSpecies is returned when no table is defined for a species.
	ErrUnknownSpecies = errors.New("unknown species")
	// ErrUnknownCodon is returned when a sequence contains an undefined codon.
	ErrUnknownCodon = errors.New("unknown codon")
)

// Nucleotides lists the DNA alphabet in the order used to enumerate words.
var Nucleotides = []string{"A", "G", "C", "T"}

var table = map[string]string{
	"ATA": "I", "ATC": "I", "ATT": "I", "ATG": "M",
	"ACA": "T", "ACC": "T", "ACG": "T", "ACT": "T",
	"AAC": "N", "AAT": "N", "AAA": "K", "AAG": "K",
	"AGC": "S", "AGT": "S", "AGA": "R", "AGG": "R",
	"CTA": "L", "CTC": "L", "CTG": "L", "CTT": "L",
	"CCA": "P", "CCC": "P", "CCG": "P", "CCT": "P",
	"CAC": "H", "CAT": "H", "CAA": "Q", "CAG": "Q",
	"CGA": "R", "CGC": "R", "CGG": "R", "CGT": "R",
	"GTA": "V", "GTC": "V", "GTG": "V", "GTT": "V",
	"GCA": "A", "GCC": "A", "GCG": "A", "GCT": "A",
	"GAC": "D", "GAT": "D", "GAA": "E", "GAG": "E",
	"GGA": "G", "GGC": "G", "GGG": "G", "GGT": "G",
	"TCA": "S", "TCC": "S", "TCG": "S", "TCT": "S",
	"TTC": "F", "TTT": "F", "TTA": "L", "TTG": "L",
	"TAC": "Y", "TAT": "Y", "TAA": Stop, "TAG": Stop,
	"TGC": "C", "TGT": "C", "TGA": Stop, "TGG": "W",
}

var stopCodons = map[string]bool{"TAA": true, "TGA": true, "TAG": true}

var (
	positiveAA = map[string]bool{"K": true, "R": true, "H": true}
	negativeAA = map[string]bool{"D": true, "E": true}
)

var charge = map[string]int{Neutral: 0, Negative: -1, Positive: 1}

// Table returns a copy of the standard genetic code, codon to amino acid.
func Table() map[string]string {
	out := make(map[string]string, len(table))
	for codon, aa := range table {
		out[codon] = aa
	}
	return out
}

// AminoAcid returns the amino acid encoded by codon.
func AminoAcid(codon string) (string, bool) {
	aa, ok := table[codon]
	return aa, ok
}

// AminoAcids returns the sorted set of amino acid letters, including Stop.
func AminoAcids() []string {
	seen := make(map[string]bool)
	var aas []string
	for _, aa := range table {
		if !seen[aa] {
			seen[aa] = true
			aas = append(aas, aa)
		}
	}
	sort.Strings(aas)
	return aas
}

// SortedCodons returns the 64 codons in lexical order.
func SortedCodons() []string {
	codons := make([]string, 0, len(table))
	for codon := range table {
		codons = append(codons, codon)
	}
	sort.Strings(codons)
	return codons
}

// IsStop reports whether codon is a stop codon.
func IsStop(codon string) bool {
	return stopCodons[codon]
}

// ChargeClass returns the side chain charge class (Positive, Negative or
// Neutral) of the amino acid aa.  Letters outside the genetic code, including
// Stop, are neutral.
func ChargeClass(aa string) string {
	switch {
	case positiveAA[aa]:
		return Positive
	case negativeAA[aa]:
		return Negative
	}
	return Neutral
}

// ChargeTable returns the charge class of every amino acid of the code.
func ChargeTable() map[string]string {
	out := make(map[string]string)
	for _, aa := range table {
		out[aa] = ChargeClass(aa)
	}
	return out
}

// Charge returns the numeric charge of a charge class.
func Charge(class string) (int, bool) {
	v, ok := charge[class]
	return v, ok
}

// ChargeValues returns the numeric charges in the Neutral, Negative, Positive
// order.
func ChargeValues() []int {
	return []int{charge[Neutral], charge[Negative], charge[Positive]}
}

// Translate translates dna codon by codon.  Trailing bases that do not form a
// complete codon are ignored.
func Translate(dna string) (string, error) {
	var b strings.Builder
	for i := 0; i+3 <= len(dna); i += 3 {
		aa, ok := table[dna[i:i+3]]
		if !ok {
			return "", fmt.Errorf("position %d: %w %q", i, ErrUnknownCodon, dna[i:i+3])
		}
		b.WriteString(aa)
	}
	return b.String(), nil
}

// Usage returns the codon usage frequencies (per thousand) for species.
func Usage(species string) (map[string]float64, error) {
	return lookup(usage, "codon usage", species)
}

// TAI returns the tRNA adaptation indices for species.
func TAI(species string) (map[string]float64, error) {
	return lookup(tai, "tAI", species)
}

// STAI returns the species-specific tRNA adaptation indices for species.
func STAI(species string) (map[string]float64, error) {
	return lookup(stai, "stAI", species)
}

func lookup(tables map[string]map[string]float64, name, species string) (map[string]float64, error) {
	t, ok := tables[species]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", name, ErrUnknownSpecies, species)
	}
	out := make(map[string]float64, len(t))
	for codon, v := range t {
		out[codon] = v
	}
	return out, nil
}
