// Package facts fetches quotes, jokes, advice and number trivia from public
// HTTP APIs and aggregates them.
//
// Every fetch yields a Result. Failures never surface as Go errors or panics:
// they become a Result with a non-OK Kind and a user-facing Text.
package facts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Provider names.
const (
	Kanye  = "kanye"
	Chuck  = "chuck"
	Advice = "advice"
	Trivia = "trivia"
)

// Default provider endpoints.
const (
	KanyeURL  = "https://api.kanye.rest/"
	ChuckURL  = "https://api.chucknorris.io/jokes/random"
	AdviceURL = "https://api.adviceslip.com/advice"
	TriviaURL = "http://numbersapi.com/random/trivia"
)

var (
	// ErrBadStatus wraps non-2xx provider responses.
	ErrBadStatus = errors.New("unexpected status")

	// ErrMalformed wraps bodies that cannot be decoded or lack the expected field.
	ErrMalformed = errors.New("malformed response")
)

// Provider describes one upstream fact API and how to read its response.
type Provider struct {
	Name string

	// Label prefixes a successful result: "<Label>: <text>".
	Label string

	URL string

	// Accept is sent as the Accept header.
	Accept string

	// Apology is returned verbatim when the provider is unreachable or
	// answers with a non-2xx status.
	Apology string

	// ErrorPrefix prefixes parse failures: "<ErrorPrefix>: <detail>".
	ErrorPrefix string

	// Progress is the notification sent to the client before fetching.
	Progress string

	// Extract pulls the displayable text out of a 2xx body.
	Extract func(body []byte) (string, error)
}

// DefaultProviders returns the four built-in providers in a fixed order.
func DefaultProviders() []Provider {
	return []Provider{
		{
			Name:        Kanye,
			Label:       "Kanye says",
			URL:         KanyeURL,
			Accept:      "application/json",
			Apology:     "Sorry, I couldn't get a Kanye quote right now.",
			ErrorPrefix: "Error getting a Kanye quote",
			Progress:    "Finding you a Kanye West quote...",
			Extract:     extractKanye,
		},
		{
			Name:        Chuck,
			Label:       "Joke",
			URL:         ChuckURL,
			Accept:      "application/json",
			Apology:     "Chuck Norris is too busy right now for jokes.",
			ErrorPrefix: "Error getting a joke",
			Progress:    "Finding a Chuck Norris joke...",
			Extract:     extractChuck,
		},
		{
			Name:        Advice,
			Label:       "Advice",
			URL:         AdviceURL,
			Accept:      "application/json",
			Apology:     "The advice guru is meditating. Try again later.",
			ErrorPrefix: "Error getting advice",
			Progress:    "Finding some wisdom for you...",
			Extract:     extractAdvice,
		},
		{
			Name:        Trivia,
			Label:       "Trivia",
			URL:         TriviaURL,
			Accept:      "text/plain",
			Apology:     "The numbers aren't adding up right now. Try again later.",
			ErrorPrefix: "Error getting number trivia",
			Progress:    "Finding a cool number fact...",
			Extract:     extractText,
		},
	}
}

// Progress returns the progress message for a default provider, or "".
func Progress(name string) string {
	for _, p := range DefaultProviders() {
		if p.Name == name {
			return p.Progress
		}
	}
	return ""
}

// External DTOs. They never leave this package.

type kanyeResponse struct {
	Quote string `json:"quote"`
}

type chuckResponse struct {
	Value string `json:"value"`
}

type adviceResponse struct {
	Slip struct {
		Advice string `json:"advice"`
	} `json:"slip"`
}

func extractKanye(body []byte) (string, error) {
	var r kanyeResponse
	if err := decode(body, &r); err != nil {
		return "", err
	}
	return requireField("quote", r.Quote)
}

func extractChuck(body []byte) (string, error) {
	var r chuckResponse
	if err := decode(body, &r); err != nil {
		return "", err
	}
	return requireField("value", r.Value)
}

func extractAdvice(body []byte) (string, error) {
	var r adviceResponse
	if err := decode(body, &r); err != nil {
		return "", err
	}
	return requireField("slip.advice", r.Slip.Advice)
}

func extractText(body []byte) (string, error) {
	return requireField("body", string(body))
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func requireField(name, value string) (string, error) {
	value = singleParagraph(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s missing or empty", ErrMalformed, name)
	}
	return value, nil
}

// singleParagraph joins the non-blank lines of s with a space, so a fact
// never contains the blank line that separates combo entries.
func singleParagraph(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}
