// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"lgpd-scan/internal/security"
)

// Validator interface defines methods for finding sensitive data in loaded text
type Validator interface {
	// Name returns the validator identifier stamped on every match it creates
	Name() string

	// ValidateContent scans already-loaded content. originalPath is only
	// used to label the resulting matches.
	ValidateContent(content string, originalPath string) ([]Match, error)
}

// Match represents a detected sensitive data occurrence
type Match struct {
	Text       string
	SecureText *security.SecureString // Secure version of Text
	LineNumber int
	Offset     int // Byte offset of the match in the scanned content
	Type       string
	Filename   string // Path to the file where the match was found
	Validator  string // Name of the validator that created this match
}

// Clear securely wipes sensitive data from memory
func (m *Match) Clear() {
	m.Text = ""
	if m.SecureText != nil {
		m.SecureText.Clear()
		m.SecureText = nil
	}
}

// ClearAll wipes every match in the slice.
func ClearAll(matches []Match) {
	for i := range matches {
		matches[i].Clear()
	}
}
