package dataset

import (
	"errors"
	"fmt"
)

// Domain errors for dataset loading and rendering.
var (
	// ErrYearNotFound indicates a requested year is absent from the loaded data.
	ErrYearNotFound = errors.New("dataset: requested year not present")

	// ErrLengthMismatch indicates the age group and count slices disagree.
	ErrLengthMismatch = errors.New("dataset: age group and count lengths differ")

	// ErrEmptySeries indicates a document with no age bands at all.
	ErrEmptySeries = errors.New("dataset: no age bands in document")
)

// FetchError reports a failed catalog or dataset retrieval. Status is the
// HTTP status code when the source is remote, zero for local files.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RenderError reports malformed normalized data reaching the renderer.
type RenderError struct {
	Country string
	Year    int
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s/%d: %v", e.Country, e.Year, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
