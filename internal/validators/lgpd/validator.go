// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lgpd

import (
	"fmt"
	"sort"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/observability"
	"lgpd-scan/internal/security"
)

// ValidatorName is stamped on every match this package creates.
const ValidatorName = "LGPD"

// Validator implements the detector.Validator interface for the fixed table
// of Brazilian personal-data patterns.
type Validator struct {
	patterns []PatternEntry

	// Observability
	observer *observability.StandardObserver
}

// NewValidator creates a Validator over the built-in pattern table.
func NewValidator() *Validator {
	return &Validator{patterns: Patterns()}
}

// SetObserver sets the observability component
func (v *Validator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

func (v *Validator) Name() string {
	return ValidatorName
}

// ValidateContent applies every pattern to content, one pattern at a time in
// table order. Within a pattern, matches are non-overlapping and reported
// left to right, so the returned slice is grouped by category.
func (v *Validator) ValidateContent(content string, originalPath string) ([]detector.Match, error) {
	var finishTiming func(bool, map[string]interface{})
	var finishStep func(bool, string)
	if v.observer != nil {
		finishTiming = v.observer.StartTiming("lgpd_validator", "validate_content", originalPath)
		if v.observer.DebugObserver != nil {
			finishStep = v.observer.DebugObserver.StartStep(v.Name(), "find_matches", originalPath)
		}
	}

	lines := newLineIndex(content)
	var matches []detector.Match

	for _, entry := range v.patterns {
		locs := entry.Pattern.FindAllStringIndex(content, -1)
		if v.observer != nil && v.observer.DebugObserver != nil {
			v.observer.DebugObserver.LogCategoryCount(entry.Name, len(locs))
		}
		for _, loc := range locs {
			text := content[loc[0]:loc[1]]
			matches = append(matches, detector.Match{
				Text:       text,
				SecureText: security.NewSecureString(text),
				LineNumber: lines.lineOf(loc[0]),
				Offset:     loc[0],
				Type:       entry.Name,
				Filename:   originalPath,
				Validator:  ValidatorName,
			})
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"match_count": len(matches), "content_length": len(content)})
	}
	if finishStep != nil {
		finishStep(true, fmt.Sprintf("%d matches", len(matches)))
	}
	return matches, nil
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex []int

func newLineIndex(content string) lineIndex {
	starts := lineIndex{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (li lineIndex) lineOf(offset int) int {
	// number of line starts at or before offset
	return sort.Search(len(li), func(i int) bool { return li[i] > offset })
}
