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
	"fmt"

	"github.com/google/renameio/v2"
)

// File is a Writer backed by a file that only replaces its destination when
// closed successfully.
type File struct {
	*Writer
	pending *renameio.PendingFile
}

// Create returns a File writing a track to path.
func Create(path string, info TrackInfo) (*File, error) {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return nil, fmt.Errorf("creating pending wig file: %v", err)
	}
	return &File{NewWriter(pending, info), pending}, nil
}

// Close flushes the track and atomically replaces the destination file.
func (f *File) Close() error {
	if f.closed {
		return ErrClosed
	}
	f.closed = true
	if err := f.Writer.Flush(); err != nil {
		f.pending.Cleanup()
		return err
	}
	if err := f.pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing wig file: %v", err)
	}
	return nil
}

// Abort discards the track, leaving the destination untouched.
func (f *File) Abort() error {
	f.closed = true
	return f.pending.Cleanup()
}
