// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"testing"

	"lgpd-scan/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestMatch_Clear(t *testing.T) {
	m := Match{
		Text:       "111.222.333-44",
		SecureText: security.NewSecureString("111.222.333-44"),
		Type:       "CPF",
		LineNumber: 3,
	}

	m.Clear()

	assert.Empty(t, m.Text)
	assert.Nil(t, m.SecureText)
	assert.Equal(t, "CPF", m.Type, "category is not sensitive and survives Clear")
	assert.Equal(t, 3, m.LineNumber)
}

func TestClearAll(t *testing.T) {
	matches := []Match{
		{Text: "Ateu", SecureText: security.NewSecureString("Ateu")},
		{Text: "01310-100"},
	}

	ClearAll(matches)

	for _, m := range matches {
		assert.Empty(t, m.Text)
		assert.Nil(t, m.SecureText)
	}
}
