package dataset

import "fmt"

// Normalize converts a raw document into render-ready series. Band order is
// reversed so that the youngest group ends up at the bottom of the chart,
// and the input document is left untouched. The result is a single-element
// slice: the slice shape keeps the interface uniform with sources that ship
// several years per document.
func Normalize(doc Document) []Series {
	n := len(doc.Data)
	s := Series{
		Year:      doc.Year,
		Country:   doc.Country,
		AgeGroups: make([]string, n),
		Male:      make([]float64, n),
		Female:    make([]float64, n),
	}
	for i, band := range doc.Data {
		j := n - 1 - i
		s.AgeGroups[j] = band.AgeGroup
		s.Male[j] = band.Male
		s.Female[j] = band.Female
	}
	return []Series{s}
}

// FindYear locates the series with an exact year match. Callers degrade to
// index 0 with a user-visible warning when the year is absent.
func FindYear(all []Series, year int) (int, error) {
	for i, s := range all {
		if s.Year == year {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrYearNotFound, year)
}

// Years lists the year of each series in order.
func Years(all []Series) []int {
	ys := make([]int, len(all))
	for i, s := range all {
		ys[i] = s.Year
	}
	return ys
}
