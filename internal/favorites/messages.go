package favorites

import (
	"fmt"
	"strings"
)

// Fixed replies.
const (
	NoFavoritesMessage = "You don't have any favorites saved yet."
	ClearedAllMessage  = "All favorites cleared!"
	allHeader          = "Your Favorites:\n\n"
)

// UnknownCategoryMessage is the rejection for input outside the allow-list.
func UnknownCategoryMessage(input string) string {
	return fmt.Sprintf("Unknown category: %s. Please use 'quote', 'joke', 'advice', or 'trivia'.", input)
}

// SaveFavorite saves content under category and returns the reply for the
// client.
func (s *Store) SaveFavorite(category, content string) string {
	c, err := ParseCategory(category)
	if err != nil {
		return UnknownCategoryMessage(category)
	}

	if !s.Add(c, content) {
		return fmt.Sprintf("This %s is already in your favorites!", c.Singular())
	}
	return fmt.Sprintf("Added to your favorite %s!", c.Key())
}

// GetFavorites renders one category, or every non-empty category when
// category is empty, as numbered lists. Whitespace-only input is not empty.
func (s *Store) GetFavorites(category string) string {
	if category == "" {
		return s.renderAll()
	}

	c, err := ParseCategory(category)
	if err != nil {
		return UnknownCategoryMessage(category)
	}

	items := s.Items(c)
	if len(items) == 0 {
		return fmt.Sprintf("You don't have any favorite %s saved yet.", c.Key())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your Favorite %s:\n\n", strings.ToUpper(c.Key()))
	writeNumbered(&b, items)
	return b.String()
}

// ClearFavorites empties one category, or all of them when category is empty.
func (s *Store) ClearFavorites(category string) string {
	if category == "" {
		s.ClearAll()
		return ClearedAllMessage
	}

	c, err := ParseCategory(category)
	if err != nil {
		return UnknownCategoryMessage(category)
	}

	s.Clear(c)
	return fmt.Sprintf("Your favorite %s have been cleared!", c.Key())
}

func (s *Store) renderAll() string {
	snap := s.Snapshot()
	if len(snap) == 0 {
		return NoFavoritesMessage
	}

	var b strings.Builder
	b.WriteString(allHeader)
	for _, c := range Categories {
		items, ok := snap[c]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "--- %s ---\n", strings.ToUpper(c.Key()))
		writeNumbered(&b, items)
		b.WriteString("\n")
	}
	return b.String()
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}
