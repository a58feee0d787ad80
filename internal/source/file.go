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

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileClient is a Client for the local file system.  Buckets are
// directories, relative to Root when it is set.
type FileClient struct {
	Root string
}

// NewObjectHandle returns a handle to the file object inside bucket.
func (c FileClient) NewObjectHandle(bucket, object string) ObjectHandle {
	return fileHandle{filepath.Join(c.Root, bucket, object)}
}

type fileHandle struct {
	path string
}

// fileRangeReader reads a portion of a file and closes it when done.
type fileRangeReader struct {
	io.Reader
	file *os.File
}

func (r fileRangeReader) Close() error {
	return r.file.Close()
}

func (h fileHandle) NewRangeReader(_ context.Context, offset, length int64) (io.ReadCloser, error) {
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, h.path)
		}
		if errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, h.path)
		}
		return nil, err
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("seeking to %d: %v", offset, err)
	}
	r := io.Reader(f)
	if length >= 0 {
		r = io.LimitReader(f, length)
	}
	return fileRangeReader{r, f}, nil
}
