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

package features

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// TranslateAll translates every sequence of seqs with set using at most
// workers goroutines.  Results are returned in the order of seqs.  The first
// error cancels the remaining translations.
func TranslateAll(ctx context.Context, set *Set, seqs []string, step, workers int) ([][][]int, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([][][]int, len(seqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range seqs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			translated, err := set.Translate(seqs[i], step)
			if err != nil {
				return fmt.Errorf("sequence %d: %w", i, err)
			}
			results[i] = translated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
