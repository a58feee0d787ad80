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
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/gatfieldlab/genomics-tools/genomics"
	gtlog "github.com/gatfieldlab/genomics-tools/internal/log"
	"github.com/gatfieldlab/genomics-tools/internal/source"
)

// ErrNotWatchable is returned by Watch for remote locations.
var ErrNotWatchable = errors.New("only local CDS files can be watched")

// Database holds the transcripts of a prepared_cds table and can reload them.
// A Database is safe for concurrent use.  Must be created with NewDatabase.
type Database struct {
	opener   *source.Opener
	location string
	opts     Options
	logger   zerolog.Logger

	mu          sync.RWMutex
	transcripts map[string]genomics.Transcript
	loaded      time.Time
}

// NewDatabase returns an empty Database reading location with opener.
func NewDatabase(opener *source.Opener, location string, opts Options) *Database {
	return &Database{
		opener:      opener,
		location:    location,
		opts:        opts,
		logger:      gtlog.WithComponent("cds").With().Str("location", location).Logger(),
		transcripts: make(map[string]genomics.Transcript),
	}
}

// Load reads the table and replaces the transcripts of the database.  On
// error the previous transcripts are kept.
func (db *Database) Load(ctx context.Context) error {
	r, err := db.opener.Open(ctx, db.location)
	if err != nil {
		return fmt.Errorf("could not read the CDS info %s: %w", db.location, err)
	}
	defer r.Close()

	transcripts, err := Parse(r, db.opts)
	if err != nil {
		return fmt.Errorf("%s: %w", db.location, err)
	}

	db.mu.Lock()
	db.transcripts = transcripts
	db.loaded = time.Now()
	db.mu.Unlock()

	db.logger.Info().Int("transcripts", len(transcripts)).Msg("Loaded CDS database")
	return nil
}

// Lookup returns the transcript with the given ID.
func (db *Database) Lookup(id string) (genomics.Transcript, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	tr, ok := db.transcripts[id]
	return tr, ok
}

// Len returns the number of transcripts.
func (db *Database) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.transcripts)
}

// Loaded returns the time of the last successful load.
func (db *Database) Loaded() time.Time {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.loaded
}

// Watch reloads the database whenever its local file is written or
// replaced, until ctx is done.  Failed reloads are logged and keep the
// previous transcripts.
func (db *Database) Watch(ctx context.Context) error {
	if source.IsRemote(db.location) {
		return ErrNotWatchable
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %v", err)
	}
	defer watcher.Close()

	// The directory is watched so that files replaced by a rename are seen.
	path := filepath.Clean(db.location)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %v", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := db.Load(ctx); err != nil {
				db.logger.Warn().Err(err).Msg("Failed to reload CDS database")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			db.logger.Warn().Err(err).Msg("CDS watcher error")
		}
	}
}
