// Package favorites keeps the user's saved quotes, jokes, advice and trivia
// for the lifetime of the process.
package favorites

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the four favorite buckets.
type Category int

const (
	Quote Category = iota
	Joke
	Advice
	Trivia
)

// Categories lists every category in display order.
var Categories = []Category{Quote, Joke, Advice, Trivia}

// ErrUnknownCategory is returned for input outside the allow-list.
var ErrUnknownCategory = errors.New("unknown category")

type categoryNames struct {
	singular string
	key      string
}

// names is the only place singular and storage-key spellings are defined.
// "advice" and "trivia" are invariant.
var names = map[Category]categoryNames{
	Quote:  {singular: "quote", key: "quotes"},
	Joke:   {singular: "joke", key: "jokes"},
	Advice: {singular: "advice", key: "advice"},
	Trivia: {singular: "trivia", key: "trivia"},
}

var lookup = func() map[string]Category {
	m := make(map[string]Category, 2*len(names))
	for c, n := range names {
		m[n.singular] = c
		m[n.key] = c
	}
	return m
}()

// ParseCategory maps user input to a Category. Matching ignores case and
// surrounding whitespace and accepts both "joke" and "jokes".
func ParseCategory(s string) (Category, error) {
	c, ok := lookup[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Singular returns the singular name, e.g. "quote".
func (c Category) Singular() string {
	return names[c].singular
}

// Key returns the storage key, e.g. "quotes".
func (c Category) Key() string {
	return names[c].key
}

func (c Category) String() string {
	return c.Key()
}
