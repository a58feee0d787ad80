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

package cds

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/gatfieldlab/genomics-tools/genomics"
	"github.com/gatfieldlab/genomics-tools/internal/source"
)

func writeTable(t *testing.T, path string, rows ...string) {
	t.Helper()
	var data string
	for _, r := range rows {
		data += r + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestDatabase_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prepared_cds.txt")
	writeTable(t, path, row("G1", "T1", "ok", "600", "100", "400", "*"))

	db := NewDatabase(source.NewOpener(nil), path, Options{})
	require.NoError(t, db.Load(context.Background()))

	tr, ok := db.Lookup("T1")
	require.True(t, ok)
	assert.Equal(t, genomics.Transcript{CDSStart: 100, CDSEnd: 400, Length: 600}, tr)
	assert.Equal(t, 1, db.Len())
	assert.False(t, db.Loaded().IsZero())

	writeTable(t, path, "broken")
	assert.ErrorIs(t, db.Load(context.Background()), ErrParse)
	_, ok = db.Lookup("T1")
	assert.True(t, ok, "failed reload must keep the previous transcripts")
}

func TestDatabase_LoadMissing(t *testing.T) {
	db := NewDatabase(source.NewOpener(nil), filepath.Join(t.TempDir(), "missing.txt"), Options{})
	err := db.Load(context.Background())
	assert.True(t, errors.Is(err, source.ErrNotFound), "got %v", err)
}

func TestDatabase_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "prepared_cds.txt")
	writeTable(t, path, row("G1", "T1", "ok", "600", "100", "400", "*"))

	db := NewDatabase(source.NewOpener(nil), path, Options{})
	require.NoError(t, db.Load(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- db.Watch(ctx) }()

	assert.Eventually(t, func() bool {
		writeTable(t, path,
			row("G1", "T1", "ok", "600", "100", "400", "*"),
			row("G2", "T2", "ok", "500", "50", "450", "*"))
		_, ok := db.Lookup("T2")
		return ok
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestDatabase_WatchRemote(t *testing.T) {
	db := NewDatabase(source.NewOpener(nil), "gs://bucket/cds.txt", Options{})
	assert.ErrorIs(t, db.Watch(context.Background()), ErrNotWatchable)
}
