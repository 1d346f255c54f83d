package dataset

import (
	"regexp"
	"strings"
)

// AgeBand is one row of a raw country document: a five-year age group with
// male and female population counts.
type AgeBand struct {
	AgeGroup string  `json:"ageGroup"`
	Male     float64 `json:"male"`
	Female   float64 `json:"female"`
}

// Document is a per-country dataset as stored in data/<country>_pyramid.json.
// Bands appear in source order, youngest group first.
type Document struct {
	Country    string    `json:"country"`
	Population int64     `json:"population,omitempty"`
	Year       int       `json:"year"`
	Data       []AgeBand `json:"data"`
}

// Series is one rendered year of a country's age profile, in display order
// (index 0 is the topmost band). AgeGroups, Male and Female always have
// equal lengths.
type Series struct {
	Year      int       `json:"year"`
	Country   string    `json:"country"`
	AgeGroups []string  `json:"ageGroups"`
	Male      []float64 `json:"male"`
	Female    []float64 `json:"female"`
}

// Validate checks the length invariant shared by the three parallel slices.
func (s Series) Validate() error {
	if len(s.Male) != len(s.AgeGroups) || len(s.Female) != len(s.AgeGroups) {
		return &RenderError{
			Country: s.Country,
			Year:    s.Year,
			Err:     ErrLengthMismatch,
		}
	}
	return nil
}

// TotalMale sums the male counts across all bands.
func (s Series) TotalMale() float64 {
	var t float64
	for _, v := range s.Male {
		t += v
	}
	return t
}

// TotalFemale sums the female counts across all bands.
func (s Series) TotalFemale() float64 {
	var t float64
	for _, v := range s.Female {
		t += v
	}
	return t
}

// Total is the combined population of the series.
func (s Series) Total() float64 {
	return s.TotalMale() + s.TotalFemale()
}

// Max returns the largest single band count in either gender, the value the
// renderer scales both halves of the chart against.
func (s Series) Max() float64 {
	var m float64
	for _, v := range s.Male {
		if v > m {
			m = v
		}
	}
	for _, v := range s.Female {
		if v > m {
			m = v
		}
	}
	return m
}

var fileNameStrip = regexp.MustCompile(`[^\w\s]`)

// FileName maps a country name to its dataset file name, matching the
// convention of the data generator: punctuation is stripped and spaces
// become underscores ("Cote d'Ivoire" -> "Cote_dIvoire_pyramid.json").
func FileName(country string) string {
	clean := fileNameStrip.ReplaceAllString(country, "")
	return strings.ReplaceAll(clean, " ", "_") + "_pyramid.json"
}
