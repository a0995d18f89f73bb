package facts

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/boredom-mcp/internal/logging"
)

// ComboFallback is returned by Combo when no fetcher succeeded.
const ComboFallback = "Everything's broken today. Maybe being bored isn't so bad after all?"

// ComboSeparator joins the facts in a combo.
const ComboSeparator = "\n\n"

// Aggregator runs several fetchers concurrently and merges their facts.
type Aggregator struct {
	fetchers []Fetcher
	logger   logging.Logger

	// shuffle permutes the surviving results. Replaceable in tests.
	shuffle func(n int, swap func(i, j int))
}

// NewAggregator creates an Aggregator over fetchers.
func NewAggregator(fetchers []Fetcher, logger logging.Logger) *Aggregator {
	return &Aggregator{
		fetchers: fetchers,
		logger:   logging.Component(logger, "aggregator"),
		shuffle:  rand.Shuffle,
	}
}

// FetchAll runs every fetcher concurrently and waits for all of them.
// Results are in fetcher order. A fetcher that panics yields a KindCrashed
// result instead of taking the others down.
func (a *Aggregator) FetchAll(ctx context.Context) []Result {
	results := make([]Result, len(a.fetchers))

	var g errgroup.Group
	for i, f := range a.fetchers {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					results[i] = Result{
						Provider: f.Name(),
						Kind:     KindCrashed,
						Text:     "Error getting " + f.Name() + ": fetcher crashed",
						Err:      fmt.Errorf("fetcher %s panicked: %v", f.Name(), r),
					}
				}
			}()
			results[i] = f.Fetch(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Combo fetches from every provider and returns the successful facts in
// random order separated by a blank line, or ComboFallback if none succeeded.
func (a *Aggregator) Combo(ctx context.Context) string {
	var texts []string
	for _, res := range a.FetchAll(ctx) {
		if !res.OK() {
			a.logger.Debug("dropping failed fetch from combo", "provider", res.Provider, "kind", res.Kind.String())
			continue
		}
		texts = append(texts, res.Text)
	}

	if len(texts) == 0 {
		return ComboFallback
	}

	a.shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})

	return strings.Join(texts, ComboSeparator)
}
