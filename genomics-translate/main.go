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

// This binary translates sequences into the words of a feature set.
//
// Input lines hold a sequence ID and a sequence separated by a tab.  Every
// output line holds the ID followed by the word indices of each step; the
// indices of the frames of a step are separated by commas.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	"github.com/gatfieldlab/genomics-tools/features"
	gtlog "github.com/gatfieldlab/genomics-tools/internal/log"
	"github.com/gatfieldlab/genomics-tools/wig"
)

var errInput = errors.New("invalid input")

type options struct {
	feature string
	step    int
	workers int
	words   bool
	filter  bool
	wigPath string
	input   string
}

func main() {
	os.Exit(translate())
}

func translate() int {
	gtlog.Configure(gtlog.Config{Console: true, Service: "genomics-translate"})

	var (
		opts       options
		cpuprofile = flag.String("cpuprofile", "", "write a CPU profile into this directory")
	)
	flag.StringVar(&opts.feature, "feature", "codon", "feature set, one of: "+strings.Join(features.Names(), ", "))
	flag.IntVar(&opts.step, "step", 3, "step size in letters")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of concurrent translations")
	flag.BoolVar(&opts.words, "words", false, "list the words of the feature set and exit")
	flag.BoolVar(&opts.filter, "filter", false, "drop stop and incompatible words from the listed words")
	flag.StringVar(&opts.wigPath, "wig", "", "also write the first word index of every step as a wig track")
	flag.StringVar(&opts.input, "i", "", "input file (default: standard input)")
	flag.Parse()

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile), profile.NoShutdownHook).Stop()
	}

	logger := gtlog.WithComponent("main")
	in := io.Reader(os.Stdin)
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to open input")
			return 1
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(os.Stdout)
	err := run(context.Background(), opts, in, out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		logger.Error().Err(err).Str("feature", opts.feature).Msg("Translation failed")
		return 1
	}
	return 0
}

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	set, err := features.Setup(opts.feature)
	if err != nil {
		return err
	}

	if opts.words {
		words := set.Words
		if opts.filter {
			words = features.Filter(words)
		}
		for _, word := range words {
			if _, err := fmt.Fprintln(out, word); err != nil {
				return err
			}
		}
		return nil
	}

	ids, seqs, err := readSequences(in)
	if err != nil {
		return err
	}
	results, err := features.TranslateAll(ctx, set, seqs, opts.step, opts.workers)
	if err != nil {
		return err
	}

	for i, id := range ids {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", id, formatWords(results[i])); err != nil {
			return err
		}
	}

	if opts.wigPath != "" {
		return writeWig(opts.wigPath, opts.feature, opts.step, ids, results)
	}
	return nil
}

func readSequences(r io.Reader) ([]string, []string, error) {
	var ids, seqs []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		id, seq, ok := strings.Cut(text, "\t")
		if !ok || id == "" {
			return nil, nil, fmt.Errorf("%w: line %d is not ID<TAB>sequence", errInput, line)
		}
		ids = append(ids, id)
		seqs = append(seqs, strings.ToUpper(seq))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading sequences: %v", err)
	}
	return ids, seqs, nil
}

func formatWords(steps [][]int) string {
	parts := make([]string, len(steps))
	for i, frames := range steps {
		indices := make([]string, len(frames))
		for j, index := range frames {
			indices[j] = strconv.Itoa(index)
		}
		parts[i] = strings.Join(indices, ",")
	}
	return strings.Join(parts, " ")
}

func writeWig(path, feature string, step int, ids []string, results [][][]int) error {
	info := append(wig.TrackInfo{{Key: "name", Value: feature}}, wig.DefaultTrackInfo...)
	f, err := wig.Create(path, info)
	if err != nil {
		return err
	}
	if err := f.WriteTrackInfo(); err != nil {
		f.Abort()
		return err
	}
	for i, id := range ids {
		if err := f.WriteChrom(wig.Chrom{Name: id, Step: wig.VariableStep, Span: step}); err != nil {
			f.Abort()
			return err
		}
		positions := make([]int, len(results[i]))
		values := make([]float64, len(results[i]))
		for j, frames := range results[i] {
			positions[j] = j*step + 1
			values[j] = float64(frames[0])
		}
		if err := f.WritePoints(positions, values); err != nil {
			f.Abort()
			return err
		}
	}
	return f.Close()
}
