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

// Package region defines and extracts regions of transcripts, such as the
// CDS or the UTRs, from compact region expressions.
//
// An expression is a list of terms separated by colons.  Every term is either
// a region name, a number, or a region name anchored at its start ("*cds") or
// end ("cds*") followed by an offset ("+50", "-20" or a percentage of the
// region length "+10%").  The limits of an expression are the smallest and
// largest positions of all of its terms, as a half-open interval:
//
//	cds                 = [cds_start, cds_end)
//	cds:3utr            = [cds_start, 3utr_end)
//	*cds-50:cds         = [cds_start-50, cds_end)
//	*cds-50:cds*+50     = [cds_start-50, cds_end+50)
//	transcript          = [0, transcript_end)
//	*transcript+10:transcript*-10 = [10, transcript_end-10)
package region

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gatfieldlab/genomics-tools/genomics"
)

// Region names.
const (
	FivePrimeUTR  = "5utr"
	CDS           = "cds"
	ThreePrimeUTR = "3utr"
	Whole         = "transcript"
	Custom        = "custom"
)

// Names lists the region names understood by Parse.
var Names = []string{FivePrimeUTR, CDS, ThreePrimeUTR, Whole, Custom}

// ErrRegion is returned for expressions that cannot be parsed or evaluated.
var ErrRegion = errors.New("invalid region")

var termRe = func() *regexp.Regexp {
	names := strings.Join(Names, "|")
	return regexp.MustCompile(`^(?:(?P<region>` + names + `)|(?P<number>\d+)|` +
		`(?P<star>\*(?:` + names + `)|(?:` + names + `)\*?)(?:(?P<op>[+-])(?P<offset>\d+%?))?)$`)
}()

// Region is a parsed region expression.
type Region struct {
	expr  string
	terms [][]string
}

// Parse parses a region expression.
func Parse(expr string) (*Region, error) {
	r := &Region{expr: expr}
	for _, term := range strings.Split(expr, ":") {
		match := termRe.FindStringSubmatch(term)
		if match == nil {
			return nil, fmt.Errorf("%w: %q does not match the region syntax", ErrRegion, term)
		}
		group := func(name string) string { return match[termRe.SubexpIndex(name)] }
		switch {
		case group("region") != "":
			r.terms = append(r.terms, []string{group("region")})
		case group("number") != "":
			r.terms = append(r.terms, []string{group("number")})
		case group("op") == "":
			r.terms = append(r.terms, []string{group("star")})
		default:
			r.terms = append(r.terms, []string{group("star"), group("op"), group("offset")})
		}
	}
	return r, nil
}

// MustParse is like Parse but panics on error.
func MustParse(expr string) *Region {
	r, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Region) String() string {
	return r.expr
}

// token is either an operator or a number.
type token struct {
	op byte
	n  int
}

// Limits calculates the limits of the region on tr.  With enforce set both
// limits are clamped into [0, tr.Length].
func (r *Region) Limits(tr genomics.Transcript, enforce bool) (genomics.Interval, error) {
	var (
		lmin, lmax int
		seen       bool
	)
	for _, term := range r.terms {
		tokens, err := termTokens(term, tr)
		if err != nil {
			return genomics.Interval{}, err
		}
		values, err := reduce(tokens)
		if err != nil {
			return genomics.Interval{}, fmt.Errorf("%w: term %q: %v", ErrRegion, strings.Join(term, ""), err)
		}
		for _, v := range values {
			if !seen || v < lmin {
				lmin = v
			}
			if !seen || v > lmax {
				lmax = v
			}
			seen = true
		}
	}
	if !seen {
		return genomics.Interval{}, fmt.Errorf("%w: empty expression %q", ErrRegion, r.expr)
	}
	if enforce {
		lmin = clamp(lmin, 0, tr.Length)
		lmax = clamp(lmax, 0, tr.Length)
	}
	return genomics.Interval{Start: lmin, End: lmax}, nil
}

func termTokens(term []string, tr genomics.Transcript) ([]token, error) {
	var (
		tokens  []token
		current *[2]int
	)
	for _, word := range term {
		switch {
		case isDigits(word):
			n, err := strconv.Atoi(word)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrRegion, err)
			}
			tokens = append(tokens, token{n: n})
		case strings.HasSuffix(word, "%") && isDigits(word[:len(word)-1]):
			if current == nil {
				return nil, fmt.Errorf("%w: percentage %q without a region", ErrRegion, word)
			}
			pct, err := strconv.Atoi(word[:len(word)-1])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrRegion, err)
			}
			tokens = append(tokens, token{n: floorDiv(current[1]-current[0], 100) * pct})
		case word == "+" || word == "-":
			tokens = append(tokens, token{op: word[0]})
		default:
			left, right := strings.HasPrefix(word, "*"), strings.HasSuffix(word, "*")
			name := strings.TrimSuffix(strings.TrimPrefix(word, "*"), "*")
			bounds, err := boundaries(name, tr)
			if err != nil {
				return nil, err
			}
			current = &bounds
			if left {
				tokens = append(tokens, token{n: bounds[0]})
			}
			if right {
				tokens = append(tokens, token{n: bounds[1]})
			}
			if !left && !right {
				tokens = append(tokens, token{n: bounds[0]}, token{n: bounds[1]})
			}
		}
	}
	return tokens, nil
}

// reduce applies the operators of tokens from left to right.
func reduce(tokens []token) ([]int, error) {
	for {
		i := -1
		for j, t := range tokens {
			if t.op != 0 {
				i = j
				break
			}
		}
		if i < 0 {
			break
		}
		if i == 0 || i+1 >= len(tokens) || tokens[i-1].op != 0 || tokens[i+1].op != 0 {
			return nil, fmt.Errorf("dangling operator %q", tokens[i].op)
		}
		result := tokens[i-1].n + tokens[i+1].n
		if tokens[i].op == '-' {
			result = tokens[i-1].n - tokens[i+1].n
		}
		reduced := append([]token(nil), tokens[:i-1]...)
		reduced = append(reduced, token{n: result})
		tokens = append(reduced, tokens[i+2:]...)
	}
	values := make([]int, len(tokens))
	for i, t := range tokens {
		values[i] = t.n
	}
	return values, nil
}

func boundaries(name string, tr genomics.Transcript) ([2]int, error) {
	switch name {
	case FivePrimeUTR:
		return [2]int{0, tr.CDSStart}, nil
	case CDS, Custom:
		return [2]int{tr.CDSStart, tr.CDSEnd}, nil
	case ThreePrimeUTR:
		return [2]int{tr.CDSEnd, tr.Length}, nil
	case Whole:
		return [2]int{0, tr.Length}, nil
	}
	return [2]int{}, fmt.Errorf("%w: unknown region name %q", ErrRegion, name)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
