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

// This binary prints the limits of a region expression for transcripts of a
// prepared_cds table.
//
// Usage:
//
//	genomics-region -c prepared_cds.txt [-t ids.txt] [-f] [-n] REGION [TRANSCRIPT]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gatfieldlab/genomics-tools/cds"
	gtlog "github.com/gatfieldlab/genomics-tools/internal/log"
	"github.com/gatfieldlab/genomics-tools/internal/source"
	"github.com/gatfieldlab/genomics-tools/region"
)

func main() {
	gtlog.Configure(gtlog.Config{Console: true, Service: "genomics-region"})
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("genomics-region", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		idsPath   = flags.String("t", "", "a file with transcript IDs")
		cdsPath   = flags.String("c", "", "prepared_cds table (local path or gs://bucket/object)")
		useFlag   = flags.Bool("f", false, "use the flag column of the CDS table")
		noEnforce = flags.Bool("n", false, "do not enforce the limits to be within 0 - transcript length")
		token     = flags.String("token", "", "OAuth2 access token for gs:// locations")
	)
	positional, err := parseInterspersed(flags, args)
	if err != nil {
		return 2
	}
	if len(positional) < 1 || len(positional) > 2 {
		fmt.Fprintln(stderr, "Expected a region and an optional transcript ID")
		flags.Usage()
		return 2
	}
	if *cdsPath == "" {
		fmt.Fprintln(stderr, "The -c flag is required")
		return 2
	}

	newRemote := source.NewDefaultClient
	if *token != "" {
		newRemote = source.NewClientFromToken(*token)
	}
	opener := source.NewOpener(newRemote)

	ids, err := transcriptIDs(ctx, opener, *idsPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(positional) == 2 {
		ids = append(ids, positional[1])
	}
	if len(ids) == 0 {
		fmt.Fprintln(stderr, "No TR-IDs were given to extract the region from")
		return 1
	}

	db := cds.NewDatabase(opener, *cdsPath, cds.Options{UseFlag: *useFlag})
	if err := db.Load(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	expr, err := region.Parse(positional[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	for _, id := range ids {
		tr, ok := db.Lookup(id)
		if !ok {
			fmt.Fprintf(stderr, "Could not find '%s' in DB\n", id)
			continue
		}
		limits, err := expr.Limits(tr, !*noEnforce)
		if err != nil {
			fmt.Fprintf(stderr, "Could not extract limits for %s: %v\n", id, err)
			continue
		}
		fmt.Fprintf(stdout, "%s: %s\n", id, limits)
	}
	return 0
}

// parseInterspersed parses flags placed before, between or after the
// positional arguments and returns the positional arguments in order.
// Arguments following "--" are all positional.
func parseInterspersed(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			return nil, err
		}
		rest := flags.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func transcriptIDs(ctx context.Context, opener *source.Opener, location string) ([]string, error) {
	if location == "" {
		return nil, nil
	}
	r, err := opener.Open(ctx, location)
	if errors.Is(err, source.ErrNotFound) {
		return nil, fmt.Errorf("could not find the transcript ID file %s", location)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read the transcript ID file %s: %w", location, err)
	}
	defer r.Close()
	return cds.ReadTranscriptIDs(r)
}
