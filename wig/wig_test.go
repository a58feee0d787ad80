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

package wig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTrack = "track color=255,0,0 maxHeightPixels=80:60 graphType=bar windowingFunction=mean coords=1 scaleType=linear type=wiggle_0 featureVisibilityWindow=-1 gffTags=off autoScale=on\n"

func TestWriter_VariableStep(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	require.NoError(t, w.WriteTrackInfo())
	require.NoError(t, w.WriteChrom(Chrom{Name: "ENSMUST01", Step: VariableStep}))
	require.NoError(t, w.WriteValue(1.5))
	require.NoError(t, w.WriteValues([]float64{2, 3}, 0))
	require.NoError(t, w.WriteValues([]float64{4}, 10))
	require.NoError(t, w.WritePoints([]int{20, 25}, []float64{0.25, -1}))
	require.NoError(t, w.Flush())

	want := defaultTrack +
		"variableStep chrom=ENSMUST01\n" +
		"1 1.5\n" +
		"2 2.0\n" +
		"3 3.0\n" +
		"11 4.0\n" +
		"20 0.25\n" +
		"25 -1.0\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 25, w.LastPosition())
}

func TestWriter_FixedStep(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, TrackInfo{{"type", TrackType}, {"name", "gc"}})
	require.NoError(t, w.WriteTrackInfo())
	require.NoError(t, w.WriteChrom(Chrom{Name: "chr1", Step: FixedStep, Start: 100, Interval: 3, Span: 3}))
	require.NoError(t, w.WriteValues([]float64{0.5, 0.75}, 0))
	require.NoError(t, w.Flush())

	want := "track type=wiggle_0 name=gc\n" +
		"fixedStep chrom=chr1 start=100 step=3 span=3\n" +
		"0.5\n" +
		"0.75\n"
	assert.Equal(t, want, buf.String())

	err := w.WritePoints([]int{1}, []float64{1})
	assert.True(t, errors.Is(err, ErrInvalid), "got %v, want ErrInvalid", err)
}

func TestWriter_TrackInfo(t *testing.T) {
	t.Run("written twice", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, nil)
		require.NoError(t, w.WriteTrackInfo())
		require.NoError(t, w.WriteTrackInfo())
		require.NoError(t, w.Flush())
		assert.Equal(t, defaultTrack, buf.String())
	})
	t.Run("missing type", func(t *testing.T) {
		w := NewWriter(&bytes.Buffer{}, TrackInfo{{"color", "0,0,0"}})
		assert.ErrorIs(t, w.WriteTrackInfo(), ErrInvalid)
		assert.False(t, w.TrackInfoWritten())
	})
	t.Run("written before chrom", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, nil)
		require.NoError(t, w.WriteChrom(Chrom{Name: "tr", Step: VariableStep, Span: 2}))
		require.NoError(t, w.Flush())
		assert.True(t, w.TrackInfoWritten())
		assert.Equal(t, defaultTrack+"variableStep chrom=tr span=2\n", buf.String())
	})
}

func TestWriter_Errors(t *testing.T) {
	testCases := []struct {
		name string
		run  func(w *Writer) error
	}{
		{"no chrom", func(w *Writer) error { return w.WriteValue(1) }},
		{"empty name", func(w *Writer) error { return w.WriteChrom(Chrom{Step: VariableStep}) }},
		{"bad step type", func(w *Writer) error { return w.WriteChrom(Chrom{Name: "c", Step: "stepwise"}) }},
		{"fixed without start", func(w *Writer) error { return w.WriteChrom(Chrom{Name: "c", Step: FixedStep, Interval: 1}) }},
		{"fixed without step", func(w *Writer) error { return w.WriteChrom(Chrom{Name: "c", Step: FixedStep, Start: 1}) }},
		{"negative span", func(w *Writer) error { return w.WriteChrom(Chrom{Name: "c", Step: VariableStep, Span: -1}) }},
		{"mismatched points", func(w *Writer) error {
			if err := w.WriteChrom(Chrom{Name: "c", Step: VariableStep}); err != nil {
				return err
			}
			return w.WritePoints([]int{1, 2}, []float64{1})
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter(&bytes.Buffer{}, nil)
			if err := tc.run(w); !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v, want ErrInvalid", err)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	testCases := []struct {
		v    float64
		want string
	}{
		{1, "1.0"},
		{-1, "-1.0"},
		{0, "0.0"},
		{0.25, "0.25"},
		{1e21, "1000000000000000000000.0"},
		{1.5e-7, "0.00000015"},
	}
	for _, tc := range testCases {
		if got := formatValue(tc.v); got != tc.want {
			t.Errorf("formatValue(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestWriter_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)
	require.NoError(t, w.WriteChrom(Chrom{Name: "c", Step: VariableStep}))
	require.NoError(t, w.WriteValues(nil, 0))
	require.NoError(t, w.WritePoints(nil, nil))
	require.NoError(t, w.Flush())
	assert.Equal(t, defaultTrack+"variableStep chrom=c\n", buf.String())
	assert.Equal(t, 0, w.LastPosition())
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.wig")

	f, err := Create(path, nil)
	require.NoError(t, err)
	require.NoError(t, f.WriteChrom(Chrom{Name: "c", Step: VariableStep}))
	require.NoError(t, f.WriteValue(7))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file visible before Close: %v", err)

	require.NoError(t, f.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultTrack+"variableStep chrom=c\n1 7.0\n", string(data))

	assert.ErrorIs(t, f.Close(), ErrClosed)
	assert.ErrorIs(t, f.WriteValue(1), ErrClosed)
}

func TestCreate_Abort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.wig")

	f, err := Create(path, nil)
	require.NoError(t, err)
	require.NoError(t, f.WriteTrackInfo())
	require.NoError(t, f.Abort())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "aborted file exists: %v", err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
