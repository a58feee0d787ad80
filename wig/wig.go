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

// Package wig writes genome browser tracks in the wiggle (wiggle_0) format.
package wig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	gtlog "github.com/gatfieldlab/genomics-tools/internal/log"
)

// TrackType is the only track type written by this package.
const TrackType = "wiggle_0"

var (
	// ErrInvalid is returned for invalid track settings or data.
	ErrInvalid = errors.New("invalid wig data")
	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = errors.New("wig writer is closed")
)

// Attr is a single key=value setting of the track line.
type Attr struct {
	Key, Value string
}

// TrackInfo holds the settings of the track line, in output order.
type TrackInfo []Attr

// DefaultTrackInfo is used when no track info is provided.
var DefaultTrackInfo = TrackInfo{
	{"color", "255,0,0"},
	{"maxHeightPixels", "80:60"},
	{"graphType", "bar"},
	{"windowingFunction", "mean"},
	{"coords", "1"},
	{"scaleType", "linear"},
	{"type", TrackType},
	{"featureVisibilityWindow", "-1"},
	{"gffTags", "off"},
	{"autoScale", "on"},
}

// Get returns the value of key.
func (ti TrackInfo) Get(key string) (string, bool) {
	for _, a := range ti {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Valid reports whether the track info meets the minimal requirements.
func (ti TrackInfo) Valid() bool {
	v, ok := ti.Get("type")
	return ok && v == TrackType
}

func (ti TrackInfo) String() string {
	parts := make([]string, 0, len(ti)+1)
	parts = append(parts, "track")
	for _, a := range ti {
		parts = append(parts, a.Key+"="+a.Value)
	}
	return strings.Join(parts, " ")
}

// StepType selects the layout of the data lines of a chromosome.
type StepType string

// Step types.
const (
	FixedStep    StepType = "fixed"
	VariableStep StepType = "variable"
)

// Chrom describes a chromosome (or transcript) section of the track.
type Chrom struct {
	Name string
	Step StepType
	// Start and Interval are required for FixedStep.
	Start, Interval int
	// Span is optional, zero leaves it unset.
	Span int
}

func (c Chrom) line() (string, error) {
	if c.Name == "" {
		return "", fmt.Errorf("%w: chrom name has to be a non-empty string", ErrInvalid)
	}
	if c.Span < 0 {
		return "", fmt.Errorf("%w: span, if set, has to be a positive integer", ErrInvalid)
	}
	var line string
	switch c.Step {
	case FixedStep:
		if c.Start < 1 || c.Interval < 1 {
			return "", fmt.Errorf("%w: start and step have to be positive for fixedStep", ErrInvalid)
		}
		line = fmt.Sprintf("fixedStep chrom=%s start=%d step=%d", c.Name, c.Start, c.Interval)
	case VariableStep:
		line = fmt.Sprintf("variableStep chrom=%s", c.Name)
	default:
		return "", fmt.Errorf("%w: step type must be either %q or %q, got %q", ErrInvalid, FixedStep, VariableStep, c.Step)
	}
	if c.Span > 0 {
		line += fmt.Sprintf(" span=%d", c.Span)
	}
	return line, nil
}

// Writer writes a wig track.  Must be created with NewWriter.
type Writer struct {
	w      *bufio.Writer
	info   TrackInfo
	logger zerolog.Logger

	infoWritten bool
	step        StepType
	lastPos     int
	closed      bool
}

// NewWriter returns a Writer writing to w.  A nil info uses DefaultTrackInfo.
func NewWriter(w io.Writer, info TrackInfo) *Writer {
	if info == nil {
		info = DefaultTrackInfo
	}
	return &Writer{
		w:      bufio.NewWriter(w),
		info:   info,
		logger: gtlog.WithComponent("wig"),
	}
}

// TrackInfo returns the track info of the writer.
func (w *Writer) TrackInfo() TrackInfo {
	return w.info
}

// TrackInfoWritten reports whether the track line was written.
func (w *Writer) TrackInfoWritten() bool {
	return w.infoWritten
}

// LastPosition returns the position of the last data value written in the
// current chromosome.
func (w *Writer) LastPosition() int {
	return w.lastPos
}

// WriteTrackInfo writes the track line.  It must be the first line of the
// track; writing it again only logs a warning.
func (w *Writer) WriteTrackInfo() error {
	if w.infoWritten {
		w.logger.Warn().Msg("Track info line has already been written")
		return nil
	}
	if !w.info.Valid() {
		return fmt.Errorf("%w: minimal track info requirements are not met (type=%s)", ErrInvalid, TrackType)
	}
	if err := w.writeln(w.info.String()); err != nil {
		return err
	}
	w.infoWritten = true
	return nil
}

// WriteChrom starts a new chromosome section.  Data written afterwards uses
// its step type.  The track line is written first if needed.
func (w *Writer) WriteChrom(c Chrom) error {
	line, err := c.line()
	if err != nil {
		return err
	}
	if !w.infoWritten {
		w.logger.Warn().Str("chrom", c.Name).Msg("Chromosome declared before the track info, writing the track info first")
		if err := w.WriteTrackInfo(); err != nil {
			return err
		}
	}
	if err := w.writeln(line); err != nil {
		return err
	}
	w.step = c.Step
	w.lastPos = 0
	return nil
}

// WriteValue writes a single value following the last position.
func (w *Writer) WriteValue(v float64) error {
	return w.WriteValues([]float64{v}, 0)
}

// WriteValues writes a continuous series of values.  The positions start
// right after start, or after the last position when start is 0.  For
// fixedStep sections only the values are written.
func (w *Writer) WriteValues(values []float64, start int) error {
	if len(values) == 0 {
		return nil
	}
	from := w.lastPos
	if start != 0 {
		from = start
	}
	positions := make([]int, len(values))
	for i := range positions {
		positions[i] = from + i + 1
	}
	return w.write(positions, values)
}

// WritePoints writes values at explicit positions.  Only variableStep
// sections accept points.
func (w *Writer) WritePoints(positions []int, values []float64) error {
	if len(positions) != len(values) {
		return fmt.Errorf("%w: %d positions for %d values", ErrInvalid, len(positions), len(values))
	}
	if w.step == FixedStep {
		return fmt.Errorf("%w: points can only be written for variableStep", ErrInvalid)
	}
	if len(values) == 0 {
		return nil
	}
	return w.write(positions, values)
}

func (w *Writer) write(positions []int, values []float64) error {
	if w.step == "" {
		return fmt.Errorf("%w: no chromosome declared", ErrInvalid)
	}
	for i, v := range values {
		line := formatValue(v)
		if w.step == VariableStep {
			line = strconv.Itoa(positions[i]) + " " + line
		}
		if err := w.writeln(line); err != nil {
			return err
		}
	}
	w.lastPos = positions[len(positions)-1]
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) writeln(line string) error {
	if w.closed {
		return ErrClosed
	}
	if _, err := w.w.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("writing wig line: %v", err)
	}
	return nil
}

// formatValue writes v in plain decimal notation, always with a fractional
// part.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
