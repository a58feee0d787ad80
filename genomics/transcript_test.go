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

package genomics

import "testing"

func TestInterval(t *testing.T) {
	testCases := []struct {
		iv   Interval
		len  int
		text string
	}{
		{Interval{Start: 100, End: 400}, 300, "[100, 400)"},
		{Interval{Start: -40, End: 40}, 80, "[-40, 40)"},
		{Interval{Start: 10, End: 10}, 0, "[10, 10)"},
		{Interval{Start: 20, End: 10}, 0, "[20, 10)"},
	}
	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			if got, want := tc.iv.Len(), tc.len; got != want {
				t.Errorf("Wrong length: got %d, want %d", got, want)
			}
			if got, want := tc.iv.String(), tc.text; got != want {
				t.Errorf("Wrong string: got %q, want %q", got, want)
			}
		})
	}
}

func TestTranscript_String(t *testing.T) {
	tr := Transcript{CDSStart: 100, CDSEnd: 400, Length: 600}
	if got, want := tr.String(), "[cds_start:100, cds_end:400, length:600]"; got != want {
		t.Errorf("Wrong string: got %q, want %q", got, want)
	}
}
