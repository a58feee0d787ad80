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

// Package genomics contains definitions related to transcript annotations.
package genomics

import "fmt"

// Transcript holds the coding sequence boundaries of a transcript.  All
// positions are 0-based offsets into the transcript; the CDS spans the open
// range [CDSStart, CDSEnd).  A custom "box" of interest can be described with
// the same type, with CDSStart and CDSEnd holding the box limits.
type Transcript struct {
	CDSStart int `json:"cds_start"`
	CDSEnd   int `json:"cds_end"`
	Length   int `json:"length"`
}

func (tr Transcript) String() string {
	return fmt.Sprintf("[cds_start:%d, cds_end:%d, length:%d]", tr.CDSStart, tr.CDSEnd, tr.Length)
}

// Interval is a 0-based, half-open range [Start, End) on a transcript.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of positions covered by the interval.
func (iv Interval) Len() int {
	if iv.End < iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}
