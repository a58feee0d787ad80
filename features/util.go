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
	"sort"
	"strconv"
	"strings"
)

// product calls fn with every n-tuple of indices into an alphabet of k
// letters, the last index varying fastest.  fn must not retain idx.
func product(k, n int, fn func(idx []int)) {
	if k == 0 && n > 0 {
		return
	}
	idx := make([]int, n)
	for {
		fn(idx)
		i := n - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < k {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

func join(alphabet []string, idx []int, sep string) string {
	parts := make([]string, len(idx))
	for i, j := range idx {
		parts[i] = alphabet[j]
	}
	return strings.Join(parts, sep)
}

func indexOf(words []string) Map {
	m := make(Map, len(words))
	for i, w := range words {
		m[w] = i
	}
	return m
}

func sortedValues(m map[string]string) []string {
	seen := make(map[string]bool, len(m))
	var values []string
	for _, v := range m {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

func pow(base, exp int) int {
	n := 1
	for i := 0; i < exp; i++ {
		n *= base
	}
	return n
}

// formatFloat formats v with the shortest representation, always keeping a
// decimal point ("1.0", "-0.25").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// percentiles returns the lower limits of bins equally sized percentile
// classes of the sorted values, interpolating linearly between values.
func percentiles(sorted []float64, bins int) []float64 {
	step := 100 / float64(bins)
	limits := make([]float64, bins)
	for i := range limits {
		limits[i] = percentile(sorted, float64(i)*step)
	}
	return limits
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*frac
}

// rank returns, for every value, the index of the last limit not above it.
func rank(values, limits []float64) []int {
	ranks := make([]int, len(values))
	for i, v := range values {
		ranks[i] = sort.Search(len(limits), func(j int) bool { return limits[j] > v }) - 1
	}
	return ranks
}

// distinct returns the sorted distinct ranks.
func distinct(ranks []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range ranks {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	sort.Ints(out)
	return out
}
