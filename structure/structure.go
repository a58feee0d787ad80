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

// Package structure defines protein structure related sequence alphabets.
//
// Each alphabet maps a three letter code, as found in structure annotated
// sequences, to the full name of the structural state.
package structure

import "sort"

// Unknown is the code shared by both alphabets for an unannotated residue.
const Unknown = "Unk"

var secondaryStructure = map[string]string{
	"Str":   "Strand",       // beta-strand
	"Hlx":   "Helix",        // alpha-helix
	"Trn":   "Turn",         // turn
	"Uns":   "Unstructured", // unstructured
	Unknown: "Unknown",
}

var topology = map[string]string{
	"Trm":   "Transmembrane",
	"Itm":   "Intramembrane",
	"Cyt":   "Cytoplasmic",
	"Ext":   "Extracellular",
	"Lum":   "Lumenal",
	"Mti":   "Mito-intermembrane",
	"Mtm":   "Mito-matrix",
	Unknown: "Unknown",
}

// SecondaryStructure returns a copy of the secondary structure alphabet.
func SecondaryStructure() map[string]string {
	return clone(secondaryStructure)
}

// Topology returns a copy of the membrane topology alphabet.
func Topology() map[string]string {
	return clone(topology)
}

// SecondaryStructureName returns the name of the secondary structure state
// identified by code.
func SecondaryStructureName(code string) (string, bool) {
	name, ok := secondaryStructure[code]
	return name, ok
}

// TopologyName returns the name of the topology state identified by code.
func TopologyName(code string) (string, bool) {
	name, ok := topology[code]
	return name, ok
}

// Codes returns the sorted codes of alphabet.
func Codes(alphabet map[string]string) []string {
	codes := make([]string, 0, len(alphabet))
	for code := range alphabet {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
