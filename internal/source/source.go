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

// Package source opens annotation files stored locally or in Google Cloud
// Storage.
//
// Locations are either local paths or URLs of the form gs://bucket/object.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

const gcsScheme = "gs://"

var (
	// ErrInvalidLocation is returned for malformed locations.
	ErrInvalidLocation = errors.New("invalid or unspecified location")
	// ErrNotFound is returned when the object does not exist.
	ErrNotFound = errors.New("object does not exist")
	// ErrPermissionDenied is returned when access to the object is refused.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidAuthentication is returned when the credentials are rejected.
	ErrInvalidAuthentication = errors.New("invalid authentication")
)

// Client is an interface to the storage engine.
type Client interface {
	// NewObjectHandle returns a handle to a specified object in
	// the storage engine.
	NewObjectHandle(bucket, object string) ObjectHandle
}

// ObjectHandle is an interface to the actual storage engine in use.
type ObjectHandle interface {
	// NewRangeReader returns a reader that reads from a specified
	// range. Length of -1 means to capture everything until the
	// end.
	NewRangeReader(ctx context.Context, offset, length int64) (io.ReadCloser, error)
}

// NewClientFunc is the type of function that constructs the storage client
// used for remote locations.
type NewClientFunc func(ctx context.Context) (Client, error)

// IsRemote reports whether location refers to Google Cloud Storage.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, gcsScheme)
}

// ParseLocation splits a gs://bucket/object location into its bucket and
// object.
func ParseLocation(location string) (string, string, error) {
	if !IsRemote(location) {
		return "", "", fmt.Errorf("%w: %q is not a %s URL", ErrInvalidLocation, location, gcsScheme)
	}
	if parts := strings.SplitN(location[len(gcsScheme):], "/", 2); len(parts) == 2 {
		if parts[0] != "" && parts[1] != "" {
			return parts[0], parts[1], nil
		}
	}
	return "", "", fmt.Errorf("%w: %q", ErrInvalidLocation, location)
}

// Opener opens locations with the local file system or a lazily created
// remote client.  Must be created with NewOpener.
type Opener struct {
	local     Client
	newRemote NewClientFunc

	mu     sync.Mutex
	remote Client
}

// NewOpener returns an Opener reading remote locations with the client
// returned by newRemote.  If newRemote is nil only local locations can be
// opened.
func NewOpener(newRemote NewClientFunc) *Opener {
	return &Opener{local: FileClient{}, newRemote: newRemote}
}

// Open returns a reader over the whole object at location.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if location == "" {
		return nil, ErrInvalidLocation
	}
	if !IsRemote(location) {
		return o.local.NewObjectHandle("", location).NewRangeReader(ctx, 0, -1)
	}

	bucket, object, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}
	client, err := o.remoteClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	r, err := client.NewObjectHandle(bucket, object).NewRangeReader(ctx, 0, -1)
	if err != nil {
		return nil, newStorageError(err)
	}
	return r, nil
}

func (o *Opener) remoteClient(ctx context.Context) (Client, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.remote != nil {
		return o.remote, nil
	}
	if o.newRemote == nil {
		return nil, errors.New("remote locations are not supported")
	}
	client, err := o.newRemote(ctx)
	if err != nil {
		return nil, err
	}
	o.remote = client
	return client, nil
}
