// Package state keeps the viewer's country/year selection in a shareable
// link form and persists the last viewed selection between sessions.
package state

import (
	"fmt"
	"net/url"
	"strconv"
)

// Scheme is the link scheme for shareable viewer state.
const Scheme = "popviz"

// Link is a shareable pointer to a chart: a country and an optional year.
// A zero Year means "first available year".
type Link struct {
	Country string `yaml:"country"`
	Year    int    `yaml:"year,omitempty"`
}

// ParseLink reads a shareable link. It accepts the full form
// "popviz://view?country=Algeria&year=2023" as well as a bare query string
// ("country=Algeria&year=2023", with or without a leading "?").
func ParseLink(raw string) (Link, error) {
	if raw == "" {
		return Link{}, nil
	}

	query := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme == Scheme {
		query = u.RawQuery
	}
	query = trimLeadingQuestion(query)

	values, err := url.ParseQuery(query)
	if err != nil {
		return Link{}, fmt.Errorf("parse link %q: %w", raw, err)
	}

	l := Link{Country: values.Get("country")}
	if y := values.Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return Link{}, fmt.Errorf("parse link %q: bad year %q", raw, y)
		}
		l.Year = year
	}
	return l, nil
}

// String renders the canonical shareable form of the link.
func (l Link) String() string {
	values := url.Values{}
	if l.Country != "" {
		values.Set("country", l.Country)
	}
	if l.Year != 0 {
		values.Set("year", strconv.Itoa(l.Year))
	}
	return Scheme + "://view?" + values.Encode()
}

func trimLeadingQuestion(s string) string {
	if len(s) > 0 && s[0] == '?' {
		return s[1:]
	}
	return s
}
