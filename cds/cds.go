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

// Package cds parses the "prepared_cds" annotation format, a tab separated
// table holding one transcript per line, and lists of transcript IDs.
//
// The columns used are:
//
//	0   gene ID
//	2   transcript ID
//	3   status, "composite" rows are skipped
//	8   transcript length
//	9   CDS start
//	10  CDS end
//	11  flag, "*" marks rows to use when flags are honoured
package cds

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gatfieldlab/genomics-tools/genomics"
)

const (
	geneColumn       = 0
	transcriptColumn = 2
	statusColumn     = 3
	lengthColumn     = 8
	cdsStartColumn   = 9
	cdsEndColumn     = 10
	flagColumn       = 11

	compositeStatus = "composite"
	usableFlag      = "*"
	idSeparator     = "|"
)

// ErrParse is returned for rows that cannot be parsed.
var ErrParse = errors.New("could not parse the CDS info")

// Options controls how rows are selected and identified.
type Options struct {
	// UseFlag skips rows whose flag column is not "*".
	UseFlag bool
	// TranscriptColumns are joined with "|" to form the transcript ID.  It
	// defaults to the transcript ID column.
	TranscriptColumns []int
}

func (o Options) transcriptColumns() []int {
	if len(o.TranscriptColumns) == 0 {
		return []int{transcriptColumn}
	}
	return o.TranscriptColumns
}

// Parse reads a prepared_cds table and returns the transcripts indexed by ID.
func Parse(r io.Reader, opts Options) (map[string]genomics.Transcript, error) {
	db := make(map[string]genomics.Transcript)
	err := scan(r, opts, func(_ string, id string, tr genomics.Transcript) {
		db[id] = tr
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// ParseGenes is like Parse but groups the transcripts by gene ID.
func ParseGenes(r io.Reader, opts Options) (map[string]map[string]genomics.Transcript, error) {
	db := make(map[string]map[string]genomics.Transcript)
	err := scan(r, opts, func(gene string, id string, tr genomics.Transcript) {
		if db[gene] == nil {
			db[gene] = make(map[string]genomics.Transcript)
		}
		db[gene][id] = tr
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func scan(r io.Reader, opts Options, fn func(gene, id string, tr genomics.Transcript)) error {
	columns := opts.transcriptColumns()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")

		required := statusColumn
		for _, c := range columns {
			if c > required {
				required = c
			}
		}
		if len(fields) <= required {
			return columnError(line, len(fields), required)
		}
		if fields[statusColumn] == compositeStatus {
			continue
		}
		if opts.UseFlag {
			if len(fields) <= flagColumn {
				return columnError(line, len(fields), flagColumn)
			}
			if fields[flagColumn] != usableFlag {
				continue
			}
		}
		if len(fields) <= cdsEndColumn {
			return columnError(line, len(fields), cdsEndColumn)
		}

		var tr genomics.Transcript
		for _, p := range []struct {
			column int
			dst    *int
		}{
			{cdsStartColumn, &tr.CDSStart},
			{cdsEndColumn, &tr.CDSEnd},
			{lengthColumn, &tr.Length},
		} {
			n, err := strconv.Atoi(fields[p.column])
			if err != nil {
				return fmt.Errorf("%w: line %d: column %d: %v", ErrParse, line, p.column, err)
			}
			*p.dst = n
		}

		ids := make([]string, len(columns))
		for i, c := range columns {
			ids[i] = fields[c]
		}
		fn(fields[geneColumn], strings.Join(ids, idSeparator), tr)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading CDS info: %v", err)
	}
	return nil
}

func columnError(line, got, column int) error {
	return fmt.Errorf("%w: line %d: %d columns, want at least %d", ErrParse, line, got, column+1)
}

// ReadTranscriptIDs returns the white space separated transcript IDs of r.
func ReadTranscriptIDs(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		ids = append(ids, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript IDs: %v", err)
	}
	return ids, nil
}
