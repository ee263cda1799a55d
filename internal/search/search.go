package search

import (
	"strings"

	"github.com/eugenenazirov/minigrep/internal/document"
)

type exactFilter struct{}

type foldFilter struct{}

// New returns a case-insensitive filter when ignoreCase is set and an exact one otherwise.
func New(ignoreCase bool) Filter {
	if ignoreCase {
		return &foldFilter{}
	}
	return &exactFilter{}
}

func (f *exactFilter) Filter(query string, lines []string) []string {
	results := make([]string, 0)
	for _, line := range lines {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

func (f *foldFilter) Filter(query string, lines []string) []string {
	query = strings.ToLower(query)

	results := make([]string, 0)
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Search returns the lines of contents containing query exactly.
func Search(query, contents string) []string {
	return New(false).Filter(query, document.SplitLines(contents))
}

// SearchCaseInsensitive returns the lines of contents containing query, ignoring letter case.
func SearchCaseInsensitive(query, contents string) []string {
	return New(true).Filter(query, document.SplitLines(contents))
}
