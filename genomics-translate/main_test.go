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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatfieldlab/genomics-tools/features"
)

func TestRun_Translate(t *testing.T) {
	in := strings.NewReader("s1\tATGAAATA\n\ns2\tacgt\n")
	var out bytes.Buffer
	opts := options{feature: "codon", step: 3, workers: 2}
	require.NoError(t, run(context.Background(), opts, in, &out))
	assert.Equal(t, "s1\t14 0\ns2\t6\n", out.String())
}

func TestRun_Frames(t *testing.T) {
	in := strings.NewReader("s1\tACGT\n")
	var out bytes.Buffer
	opts := options{feature: "nucleotide", step: 3, workers: 1}
	require.NoError(t, run(context.Background(), opts, in, &out))
	assert.Equal(t, "s1\t0,1,2\n", out.String())
}

func TestRun_Words(t *testing.T) {
	var out bytes.Buffer
	opts := options{feature: "aminoacid", words: true, filter: true}
	require.NoError(t, run(context.Background(), opts, nil, &out))
	words := strings.Fields(out.String())
	assert.Len(t, words, 20)
	assert.NotContains(t, words, "*")
}

func TestRun_Wig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codons.wig")
	in := strings.NewReader("s1\tATGAAA\n")
	opts := options{feature: "codon", step: 3, workers: 1, wigPath: path}
	require.NoError(t, run(context.Background(), opts, in, &bytes.Buffer{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "track name=codon "), lines[0])
	assert.Equal(t, []string{"variableStep chrom=s1 span=3", "1 14.0", "4 0.0"}, lines[1:])
}

func TestRun_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		opts  options
		input string
		want  error
	}{
		{"unknown feature", options{feature: "hexamer", step: 3}, "", features.ErrUnknownFeature},
		{"missing tab", options{feature: "codon", step: 3}, "s1 ATG\n", errInput},
		{"unknown codon", options{feature: "codon", step: 3}, "s1\tNNN\n", features.ErrTranslation},
		{"bad step", options{feature: "codon", step: 0}, "s1\tATG\n", features.ErrTranslation},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(context.Background(), tc.opts, strings.NewReader(tc.input), &bytes.Buffer{})
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
