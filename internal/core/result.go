// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import "lgpd-scan/internal/detector"

// CategoryMatches holds every occurrence of one category, in the order found.
type CategoryMatches struct {
	Name    string
	Matches []detector.Match
}

// Count returns the number of occurrences, duplicates included.
func (c CategoryMatches) Count() int {
	return len(c.Matches)
}

// Values returns the matched substrings in the order found.
func (c CategoryMatches) Values() []string {
	values := make([]string, len(c.Matches))
	for i, m := range c.Matches {
		values[i] = m.Text
	}
	return values
}

// MatchResult groups matches by category. Categories appear in pattern table
// order and categories without matches are absent.
type MatchResult struct {
	Categories []CategoryMatches
}

// Get returns the group for name, if it has any matches.
func (r MatchResult) Get(name string) (CategoryMatches, bool) {
	for _, c := range r.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryMatches{}, false
}

// ScanSummary is derived from a MatchResult.
type ScanSummary struct {
	Total      int
	HasMatches bool
}

// GroupMatches builds a MatchResult from a flat match slice. order lists the
// category names in report order; matches whose type is not in order are
// appended after them in first-seen order.
func GroupMatches(matches []detector.Match, order []string) MatchResult {
	byName := make(map[string][]detector.Match)
	var extra []string
	known := make(map[string]bool, len(order))
	for _, name := range order {
		known[name] = true
	}

	for _, m := range matches {
		if _, seen := byName[m.Type]; !seen && !known[m.Type] {
			extra = append(extra, m.Type)
		}
		byName[m.Type] = append(byName[m.Type], m)
	}

	var result MatchResult
	for _, name := range append(append([]string{}, order...), extra...) {
		if group := byName[name]; len(group) > 0 {
			result.Categories = append(result.Categories, CategoryMatches{Name: name, Matches: group})
		}
	}
	return result
}

// Summarize counts all occurrences across categories.
func Summarize(result MatchResult) ScanSummary {
	total := 0
	for _, c := range result.Categories {
		total += c.Count()
	}
	return ScanSummary{Total: total, HasMatches: total > 0}
}
