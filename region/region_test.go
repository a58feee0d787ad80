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

package region

import (
	"errors"
	"testing"

	"github.com/gatfieldlab/genomics-tools/genomics"
)

var testTranscript = genomics.Transcript{CDSStart: 100, CDSEnd: 400, Length: 600}

func TestLimits(t *testing.T) {
	testCases := []struct {
		expr    string
		enforce bool
		want    genomics.Interval
	}{
		{"cds", true, genomics.Interval{Start: 100, End: 400}},
		{"custom", true, genomics.Interval{Start: 100, End: 400}},
		{"5utr", true, genomics.Interval{Start: 0, End: 100}},
		{"3utr", true, genomics.Interval{Start: 400, End: 600}},
		{"transcript", true, genomics.Interval{Start: 0, End: 600}},
		{"cds:3utr", true, genomics.Interval{Start: 100, End: 600}},
		{"*cds", true, genomics.Interval{Start: 100, End: 100}},
		{"*cds:cds*", true, genomics.Interval{Start: 100, End: 400}},
		{"*cds-50:cds", true, genomics.Interval{Start: 50, End: 400}},
		{"*cds-50:cds*+50", true, genomics.Interval{Start: 50, End: 450}},
		{"*cds+40:3utr*-20", true, genomics.Interval{Start: 140, End: 580}},
		{"*transcript+10:transcript*-10", true, genomics.Interval{Start: 10, End: 590}},
		{"10:3utr*-10", true, genomics.Interval{Start: 10, End: 590}},
		{"cds+10", true, genomics.Interval{Start: 100, End: 410}},
		{"*cds+10%", true, genomics.Interval{Start: 130, End: 130}},
		{"*cds-150:3utr*+100", false, genomics.Interval{Start: -50, End: 700}},
		{"*cds-150:3utr*+100", true, genomics.Interval{Start: 0, End: 600}},
		{"700", true, genomics.Interval{Start: 600, End: 600}},
	}

	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			r, err := Parse(tc.expr)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.expr, err)
			}
			got, err := r.Limits(testTranscript, tc.enforce)
			if err != nil {
				t.Fatalf("Limits returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Limits(%q) = %v, want %v", tc.expr, got, tc.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []string{
		"",
		"cds:",
		"utr",
		"cds**",
		"*cds*+1",
		"cds+",
		"cds+-1",
		"-10",
	}
	for _, expr := range testCases {
		t.Run(expr, func(t *testing.T) {
			if _, err := Parse(expr); !errors.Is(err, ErrRegion) {
				t.Fatalf("Parse(%q) error = %v, want %v", expr, err, ErrRegion)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	testCases := []struct{ a, b, want int }{
		{300, 100, 3},
		{350, 100, 3},
		{-50, 100, -1},
		{-100, 100, -1},
		{0, 100, 0},
	}
	for _, tc := range testCases {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	if got, want := MustParse("*cds-50:cds").String(), "*cds-50:cds"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (genomics.Interval{Start: 1, End: 5}).String(), "[1, 5)"; got != want {
		t.Errorf("Interval.String() = %q, want %q", got, want)
	}
}
