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
	"fmt"
	"sort"

	"github.com/gatfieldlab/genomics-tools/codons"
)

// Species whose codon metrics back the codon usage features.
const (
	usageSpecies = "mouse"
	taiSpecies   = "mouse"
	staiSpecies  = "mouse-liver"

	defaultUsageBins = 7
)

var builders = map[string]func() (*Set, error){
	"pass":                func() (*Set, error) { return Pass(), nil },
	"nucleotide":          func() (*Set, error) { return Nucleotide(1) },
	"dinucleotide":        func() (*Set, error) { return Nucleotide(2) },
	"codon":               func() (*Set, error) { return Nucleotide(3) },
	"6mer":                func() (*Set, error) { return Nucleotide(6) },
	"9mer":                func() (*Set, error) { return Nucleotide(9) },
	"aminoacid":           func() (*Set, error) { return AminoAcid(1) },
	"dipeptide":           func() (*Set, error) { return AminoAcid(2) },
	"tripeptide":          func() (*Set, error) { return AminoAcid(3) },
	"topology":            func() (*Set, error) { return Topology(), nil },
	"secondary_struct":    func() (*Set, error) { return SecondaryStructure(1) },
	"secondary_struct_2p": func() (*Set, error) { return SecondaryStructure(2) },
	"gc1":                 func() (*Set, error) { return GCContent(1) },
	"gc2":                 func() (*Set, error) { return GCContent(2) },
	"gc3":                 func() (*Set, error) { return GCContent(3) },
	"codon_usage":         usageBuilder(codons.Usage, usageSpecies, 1),
	"codon_usage2p":       usageBuilder(codons.Usage, usageSpecies, 2),
	"codon_stai":          usageBuilder(codons.STAI, staiSpecies, 1),
	"codon_stai_2p":       usageBuilder(codons.STAI, staiSpecies, 2),
	"codon_tai":           usageBuilder(codons.TAI, taiSpecies, 1),
	"codon_tai_2p":        usageBuilder(codons.TAI, taiSpecies, 2),
	"charge1a":            func() (*Set, error) { return Charge(1, false) },
	"charge2p":            func() (*Set, error) { return Charge(2, false) },
	"charge2p_mean":       func() (*Set, error) { return Charge(2, true) },
	"charge4p_mean":       func() (*Set, error) { return Charge(4, true) },
	"charge5p_mean":       func() (*Set, error) { return ChargeBins(5, 10) },
	"charge4p_aa":         func() (*Set, error) { return ChargeAA(4, 1) },
	"gquad":               func() (*Set, error) { return GQuad(), nil },
}

func usageBuilder(table func(string) (map[string]float64, error), species string, size int) func() (*Set, error) {
	return func() (*Set, error) {
		usage, err := table(species)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFeature, err)
		}
		return CodonUsageMean(size, usage, defaultUsageBins)
	}
}

// Setup builds the feature set registered under name.
func Setup(name string) (*Set, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFeature, name)
	}
	return build()
}

// Names returns the sorted names accepted by Setup.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
