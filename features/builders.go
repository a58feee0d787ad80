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
	"strings"

	"github.com/gatfieldlab/genomics-tools/codons"
	"github.com/gatfieldlab/genomics-tools/internal/cache"
	"github.com/gatfieldlab/genomics-tools/rnastruct"
	"github.com/gatfieldlab/genomics-tools/structure"
)

const (
	codonSize = 3

	// Dictionaries with more entries than this are built lazily.
	eagerLimit = 64 * 64 * 64

	// Capacity of lazily built dictionaries.
	lazyCapacity = 8000000
)

// Pass returns a feature set with 0-sized words and an empty dictionary.
func Pass() *Set {
	return &Set{Dict: Map{}}
}

// Nucleotide returns nucleotide words of size letters.
func Nucleotide(size int) (*Set, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: nucleotide word size must be positive, got %d", ErrFeature, size)
	}
	var words []string
	product(len(codons.Nucleotides), size, func(idx []int) {
		words = append(words, join(codons.Nucleotides, idx, ""))
	})
	sort.Strings(words)
	return &Set{WordSize: size, Words: words, Dict: indexOf(words)}, nil
}

// AminoAcid returns amino acid words of size residues.
func AminoAcid(size int) (*Set, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: amino acid word size must be positive, got %d", ErrFeature, size)
	}
	aas := codons.AminoAcids()
	var words []string
	product(len(aas), size, func(idx []int) {
		words = append(words, join(aas, idx, ""))
	})
	sort.Strings(words)
	index := indexOf(words)

	cs := codons.SortedCodons()
	dict := make(Map, pow(len(cs), size))
	product(len(cs), size, func(idx []int) {
		var code, peptide strings.Builder
		for _, i := range idx {
			aa, _ := codons.AminoAcid(cs[i])
			code.WriteString(cs[i])
			peptide.WriteString(aa)
		}
		dict[code.String()] = index[peptide.String()]
	})
	return &Set{WordSize: codonSize * size, Words: words, Dict: dict}, nil
}

// Topology returns membrane topology words.  The word size is fixed at one
// residue, a three letter topology code.
func Topology() *Set {
	alphabet := structure.Topology()
	words := sortedValues(alphabet)
	index := indexOf(words)
	dict := make(Map, len(alphabet))
	for code, name := range alphabet {
		dict[code] = index[name]
	}
	return &Set{WordSize: codonSize, Words: words, Dict: dict}
}

// SecondaryStructure returns secondary structure words of size residues.
func SecondaryStructure(size int) (*Set, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: secondary structure word size must be positive, got %d", ErrFeature, size)
	}
	alphabet := structure.SecondaryStructure()
	names := sortedValues(alphabet)
	var words []string
	product(len(names), size, func(idx []int) {
		words = append(words, join(names, idx, ""))
	})
	sort.Strings(words)
	index := indexOf(words)

	codes := structure.Codes(alphabet)
	dict := make(Map, pow(len(codes), size))
	product(len(codes), size, func(idx []int) {
		var code, word strings.Builder
		for _, i := range idx {
			code.WriteString(codes[i])
			word.WriteString(alphabet[codes[i]])
		}
		dict[code.String()] = index[word.String()]
	})
	return &Set{WordSize: codonSize * size, Words: words, Dict: dict}, nil
}

// GCContent returns words counting the G and C bases of size codons.
func GCContent(size int) (*Set, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: GC content word size must be positive, got %d", ErrFeature, size)
	}
	cs := codons.SortedCodons()
	counts := make(map[string]string, pow(len(cs), size))
	seen := make(map[string]bool)
	var words []string
	product(len(cs), size, func(idx []int) {
		code := join(cs, idx, "")
		gc := fmt.Sprint(strings.Count(code, "G") + strings.Count(code, "C"))
		counts[code] = gc
		if !seen[gc] {
			seen[gc] = true
			words = append(words, gc)
		}
	})
	sort.Strings(words)
	index := indexOf(words)
	dict := make(Map, len(counts))
	for code, gc := range counts {
		dict[code] = index[gc]
	}
	return &Set{WordSize: codonSize * size, Words: words, Dict: dict}, nil
}

// CodonUsageMean returns words ranking the mean usage metric of size codons
// into bins percentile classes named "1", "2", ...  usage maps codons to a
// usage metric such as codon usage, tAI or stAI; only codons present in usage
// are defined by the dictionary.
func CodonUsageMean(size int, usage map[string]float64, bins int) (*Set, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: codon usage word size must be positive, got %d", ErrFeature, size)
	}
	if bins < 1 {
		return nil, fmt.Errorf("%w: number of bins must be positive, got %d", ErrFeature, bins)
	}
	if len(usage) == 0 {
		return nil, fmt.Errorf("%w: empty usage index", ErrFeature)
	}
	cs := make([]string, 0, len(usage))
	for codon := range usage {
		cs = append(cs, codon)
	}
	sort.Strings(cs)

	means := make(map[string]float64, pow(len(cs), size))
	vals := make([]float64, 0, pow(len(cs), size))
	product(len(cs), size, func(idx []int) {
		var sum float64
		for _, i := range idx {
			sum += usage[cs[i]]
		}
		mean := sum / float64(size)
		means[join(cs, idx, "")] = mean
		vals = append(vals, mean)
	})
	sort.Float64s(vals)

	ranks := rank(vals, percentiles(vals, bins))
	classes := distinct(ranks)
	words := make([]string, len(classes))
	position := make(map[int]int, len(classes))
	for i, r := range classes {
		words[i] = fmt.Sprint(r + 1)
		position[r] = i
	}

	dict := make(Map, len(means))
	for code, mean := range means {
		dict[code] = position[ranks[sort.SearchFloat64s(vals, mean)]]
	}
	return &Set{WordSize: codonSize * size, Words: words, Dict: dict}, nil
}

// Charge returns side chain charge words of size residues.  With mean set the
// words are the mean charge of the stretch, otherwise its exact charge
// composition (e.g. "PUUN").  Only sizes up to 4 are supported, use
// ChargeBins for longer stretches.
func Charge(size int, mean bool) (*Set, error) {
	if size < 1 || size > 4 {
		return nil, fmt.Errorf("%w: charge word size must be within 1-4, got %d (use ChargeBins)", ErrFeature, size)
	}
	charge := func(aas string) string {
		if mean {
			return formatFloat(meanCharge(aas))
		}
		var b strings.Builder
		for _, aa := range aas {
			b.WriteString(codons.ChargeClass(string(aa)))
		}
		return b.String()
	}

	aas := codons.AminoAcids()
	if mean {
		values := make(map[float64]bool)
		product(len(aas), size, func(idx []int) {
			values[meanCharge(join(aas, idx, ""))] = true
		})
		var sorted []float64
		for v := range values {
			sorted = append(sorted, v)
		}
		sort.Float64s(sorted)
		words := make([]string, len(sorted))
		for i, v := range sorted {
			words[i] = formatFloat(v)
		}
		return chargeSet(size, words, charge), nil
	}

	seen := make(map[string]bool)
	var words []string
	product(len(aas), size, func(idx []int) {
		if c := charge(join(aas, idx, "")); !seen[c] {
			seen[c] = true
			words = append(words, c)
		}
	})
	sort.Strings(words)
	return chargeSet(size, words, charge), nil
}

func chargeSet(size int, words []string, charge func(aas string) string) *Set {
	index := indexOf(words)
	lookup := func(code string) (int, error) {
		aas, err := peptide(code, size)
		if err != nil {
			return 0, err
		}
		i, ok := index[charge(aas)]
		if !ok {
			return 0, fmt.Errorf("%w: no charge word for %q", ErrTranslation, code)
		}
		return i, nil
	}

	cs := codons.SortedCodons()
	if pow(len(cs), size) > eagerLimit {
		return &Set{WordSize: codonSize * size, Words: words, Dict: newLazy(lookup)}
	}
	dict := make(Map, pow(len(cs), size))
	product(len(cs), size, func(idx []int) {
		code := join(cs, idx, "")
		dict[code], _ = lookup(code)
	})
	return &Set{WordSize: codonSize * size, Words: words, Dict: dict}
}

// ChargeBins returns words classifying the mean side chain charge of size
// residues into bins percentile classes.  When bins is 0 or equals the number
// of possible mean charges the words are the mean charges themselves,
// otherwise they are inclusive intervals "[low, high]".  The dictionary is
// built lazily, which suits long stretches.
func ChargeBins(size, bins int) (*Set, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: charge word size must be positive, got %d", ErrFeature, size)
	}
	if bins < 0 {
		return nil, fmt.Errorf("%w: number of bins must not be negative, got %d", ErrFeature, bins)
	}

	vals := chargeMeans(size)
	if bins == 0 {
		bins = len(vals)
	}
	ranks := rank(vals, percentiles(vals, bins))

	var words []string
	if bins == len(vals) {
		for _, v := range vals {
			words = append(words, formatFloat(v))
		}
	} else {
		for _, r := range distinct(ranks) {
			low, high := -1, -1
			for i := range ranks {
				if ranks[i] == r {
					if low < 0 {
						low = i
					}
					high = i
				}
			}
			words = append(words, "["+formatFloat(vals[low])+", "+formatFloat(vals[high])+"]")
		}
	}
	position := make(map[int]int)
	for i, r := range distinct(ranks) {
		position[r] = i
	}
	byValue := make(map[float64]int, len(vals))
	for i, v := range vals {
		byValue[v] = position[ranks[i]]
	}

	dict := newLazy(func(code string) (int, error) {
		aas, err := peptide(code, size)
		if err != nil {
			return 0, err
		}
		return byValue[meanCharge(aas)], nil
	})
	return &Set{WordSize: codonSize * size, Words: words, Dict: dict}, nil
}

// chargeMeans returns the sorted distinct mean charges of every combination
// (with replacement) of size charge values.
func chargeMeans(size int) []float64 {
	values := codons.ChargeValues()
	seen := make(map[int]bool)
	var walk func(from, depth, sum int)
	walk = func(from, depth, sum int) {
		if depth == size {
			seen[sum] = true
			return
		}
		for i := from; i < len(values); i++ {
			walk(i, depth+1, sum+values[i])
		}
	}
	walk(0, 0, 0)

	sums := make([]int, 0, len(seen))
	for sum := range seen {
		sums = append(sums, sum)
	}
	sort.Ints(sums)
	means := make([]float64, len(sums))
	for i, sum := range sums {
		means[i] = float64(sum) / float64(size)
	}
	return means
}

// ChargeAA returns experimental words composed of the mean charge of
// chargeSize residues followed by the identity of the next aaSize residues,
// e.g. "0.5KD".  chargeSize values are not binned and aaSize should stay small
// as the number of words grows as 21^aaSize.
func ChargeAA(chargeSize, aaSize int) (*Set, error) {
	if chargeSize < 1 || aaSize < 1 {
		return nil, fmt.Errorf("%w: charge and amino acid sizes must be positive, got %d and %d", ErrFeature, chargeSize, aaSize)
	}
	var charges []string
	for k := -chargeSize; k <= chargeSize; k++ {
		charges = append(charges, formatFloat(float64(k)/float64(chargeSize)))
	}
	aas := codons.AminoAcids()
	var words []string
	for _, c := range charges {
		product(len(aas), aaSize, func(idx []int) {
			words = append(words, c+join(aas, idx, ""))
		})
	}
	sort.Strings(words)
	index := indexOf(words)

	dict := newLazy(func(code string) (int, error) {
		residues, err := peptide(code, chargeSize+aaSize)
		if err != nil {
			return 0, err
		}
		word := formatFloat(meanCharge(residues[:chargeSize])) + residues[chargeSize:]
		i, ok := index[word]
		if !ok {
			return 0, fmt.Errorf("%w: no word %q", ErrTranslation, word)
		}
		return i, nil
	})
	return &Set{WordSize: codonSize * (chargeSize + aaSize), Words: words, Dict: dict}, nil
}

// GQuad returns G-quadruplex words over sequences written in the G-quadruplex
// alphabet, one word per triplet.
func GQuad() *Set {
	words := append([]string(nil), rnastruct.GQuadLetters...)
	sort.Strings(words)
	index := indexOf(words)
	dict := make(Map)
	for triplet, letter := range rnastruct.GQuadTable() {
		dict[triplet] = index[letter]
	}
	return &Set{WordSize: codonSize, Words: words, Dict: dict}
}

// lazy is a Dictionary computing indices on demand.
type lazy struct {
	producer *cache.Producer[string, int]
}

func newLazy(lookup func(string) (int, error)) lazy {
	return lazy{cache.NewProducer(lookup, lazyCapacity)}
}

func (l lazy) Index(code string) (int, bool) {
	i, err := l.producer.Get(code)
	return i, err == nil
}

// peptide translates the first size codons of code.
func peptide(code string, size int) (string, error) {
	if len(code) != codonSize*size {
		return "", fmt.Errorf("%w: %q is not %d codons long", ErrTranslation, code, size)
	}
	var b strings.Builder
	for i := 0; i < len(code); i += codonSize {
		aa, ok := codons.AminoAcid(code[i : i+codonSize])
		if !ok {
			return "", fmt.Errorf("%w: unknown codon %q", ErrTranslation, code[i:i+codonSize])
		}
		b.WriteString(aa)
	}
	return b.String(), nil
}

func meanCharge(aas string) float64 {
	var sum int
	for _, aa := range aas {
		c, _ := codons.Charge(codons.ChargeClass(string(aa)))
		sum += c
	}
	return float64(sum) / float64(len(aas))
}
