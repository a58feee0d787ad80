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

package structure

import "testing"

func TestSecondaryStructureName(t *testing.T) {
	testCases := []struct {
		code, want string
		ok         bool
	}{
		{"Str", "Strand", true},
		{"Hlx", "Helix", true},
		{"Trn", "Turn", true},
		{"Uns", "Unstructured", true},
		{"Unk", "Unknown", true},
		{"Trm", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			got, ok := SecondaryStructureName(tc.code)
			if ok != tc.ok || got != tc.want {
				t.Errorf("SecondaryStructureName(%q) = %q, %v; want %q, %v", tc.code, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestTopologyCodes(t *testing.T) {
	want := []string{"Cyt", "Ext", "Itm", "Lum", "Mti", "Mtm", "Trm", "Unk"}
	got := Codes(Topology())
	if len(got) != len(want) {
		t.Fatalf("Wrong number of codes: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Code %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTablesAreCopies(t *testing.T) {
	table := Topology()
	table["Trm"] = "modified"
	if name, _ := TopologyName("Trm"); name != "Transmembrane" {
		t.Fatalf("Topology table was modified through a copy: %q", name)
	}
}
