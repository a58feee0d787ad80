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

package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func cdsRow(tr, length, start, end, flag string) string {
	return strings.Join([]string{"G", "x", tr, "ok", "x", "x", "x", "x", length, start, end, flag}, "\t")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	table := writeFile(t, dir, "prepared_cds.txt",
		cdsRow("T1", "600", "100", "400", "*"),
		cdsRow("T2", "50", "10", "40", "-"),
	)
	ids := writeFile(t, dir, "ids.txt", "T1", "T9")

	testCases := []struct {
		name       string
		args       []string
		code       int
		stdout     string
		stderrPart string
	}{
		{"single transcript", []string{"-c", table, "cds", "T1"}, 0, "T1: [100, 400)\n", ""},
		{"id file and argument", []string{"-c", table, "-t", ids, "*cds-50:cds*", "T2"}, 0,
			"T1: [50, 400)\nT2: [0, 40)\n", "Could not find 'T9' in DB"},
		{"not enforced", []string{"-c", table, "-n", "*cds-50:cds*", "T2"}, 0, "T2: [-40, 40)\n", ""},
		{"flagged rows only", []string{"-c", table, "-f", "cds", "T2"}, 0, "", "Could not find 'T2' in DB"},
		{"no transcripts", []string{"-c", table, "cds"}, 1, "", "No TR-IDs"},
		{"bad region", []string{"-c", table, "utr", "T1"}, 1, "", "invalid region"},
		{"missing table", []string{"-c", filepath.Join(dir, "missing.txt"), "cds", "T1"}, 1, "", "could not read the CDS info"},
		{"missing id file", []string{"-c", table, "-t", filepath.Join(dir, "missing.txt"), "cds"}, 1, "", "could not find the transcript ID file"},
		{"flags after positionals", []string{"cds", "T1", "-c", table}, 0, "T1: [100, 400)\n", ""},
		{"flags between positionals", []string{"*cds-50:cds*", "-c", table, "T2", "-n"}, 0, "T2: [-40, 40)\n", ""},
		{"too many positionals", []string{"cds", "T1", "-c", table, "T2"}, 2, "", "Expected a region"},
		{"unknown flag after positionals", []string{"cds", "T1", "-x"}, 2, "", "flag provided but not defined"},
		{"missing -c", []string{"cds", "T1"}, 2, "", "-c flag is required"},
		{"no region", []string{"-c", table}, 2, "", "Expected a region"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tc.args, &stdout, &stderr)
			if got, want := code, tc.code; got != want {
				t.Errorf("Wrong exit code: got %d, want %d (stderr: %s)", got, want, stderr.String())
			}
			if got, want := stdout.String(), tc.stdout; got != want {
				t.Errorf("Wrong output: got %q, want %q", got, want)
			}
			if !strings.Contains(stderr.String(), tc.stderrPart) {
				t.Errorf("Wrong error output: got %q, want it to contain %q", stderr.String(), tc.stderrPart)
			}
		})
	}
}

func TestParseInterspersed(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		positional []string
		cds        string
		noEnforce  bool
	}{
		{"flags first", []string{"-c", "a.txt", "cds", "T1"}, []string{"cds", "T1"}, "a.txt", false},
		{"flags last", []string{"cds", "T1", "-c", "a.txt", "-n"}, []string{"cds", "T1"}, "a.txt", true},
		{"flags between", []string{"cds", "-n", "T1"}, []string{"cds", "T1"}, "", true},
		{"terminator", []string{"-c", "a.txt", "--", "cds", "-n"}, []string{"cds", "-n"}, "a.txt", false},
		{"no positionals", []string{"-n"}, nil, "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flags := flag.NewFlagSet("test", flag.ContinueOnError)
			flags.SetOutput(io.Discard)
			cds := flags.String("c", "", "")
			noEnforce := flags.Bool("n", false, "")

			got, err := parseInterspersed(flags, tc.args)
			if err != nil {
				t.Fatalf("parseInterspersed returned error: %v", err)
			}
			if strings.Join(got, " ") != strings.Join(tc.positional, " ") || len(got) != len(tc.positional) {
				t.Errorf("Wrong positionals: got %q, want %q", got, tc.positional)
			}
			if *cds != tc.cds {
				t.Errorf("Wrong -c: got %q, want %q", *cds, tc.cds)
			}
			if *noEnforce != tc.noEnforce {
				t.Errorf("Wrong -n: got %v, want %v", *noEnforce, tc.noEnforce)
			}
		})
	}
}
