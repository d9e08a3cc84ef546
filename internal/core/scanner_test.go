// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/observability"
	"lgpd-scan/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curriculo.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadText_ReadsContent(t *testing.T) {
	path := writeFile(t, "Nome: Maria\nCPF: 111.222.333-44\n")
	text, err := LoadText(path)
	require.NoError(t, err)
	assert.Equal(t, "Nome: Maria\nCPF: 111.222.333-44\n", text)
}

func TestLoadText_Missing(t *testing.T) {
	_, err := LoadText(filepath.Join(t.TempDir(), "nao-existe.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrFileUnreadable))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "open", loadErr.Op)
}

func TestLoadText_Directory(t *testing.T) {
	_, err := LoadText(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileUnreadable))
}

func TestLoadText_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "Cat\xf3lico")
	_, err := LoadText(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
	assert.Contains(t, err.Error(), "decode")
}

func TestGroupMatches_OrderAndOmission(t *testing.T) {
	matches := []detector.Match{
		{Type: "CEP", Text: "01310-100"},
		{Type: "CPF", Text: "111.222.333-44"},
		{Type: "CEP", Text: "04538-132"},
		{Type: "OUTRO", Text: "x"},
	}
	result := GroupMatches(matches, []string{"CPF", "RG", "CEP"})

	require.Len(t, result.Categories, 3)
	assert.Equal(t, "CPF", result.Categories[0].Name)
	assert.Equal(t, "CEP", result.Categories[1].Name)
	assert.Equal(t, []string{"01310-100", "04538-132"}, result.Categories[1].Values())
	assert.Equal(t, "OUTRO", result.Categories[2].Name)

	_, ok := result.Get("RG")
	assert.False(t, ok, "empty categories are omitted")
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, ScanSummary{}, Summarize(MatchResult{}))

	result := MatchResult{Categories: []CategoryMatches{
		{Name: "CPF", Matches: make([]detector.Match, 2)},
		{Name: "CEP", Matches: make([]detector.Match, 5)},
	}}
	assert.Equal(t, ScanSummary{Total: 7, HasMatches: true}, Summarize(result))
}

func TestScanFile_SingleCPF(t *testing.T) {
	path := writeFile(t, "CPF do candidato: 111.222.333-44")
	res, err := ScanFile(ScanConfig{FilePath: path})
	require.NoError(t, err)

	cpf, ok := res.Result.Get("CPF")
	require.True(t, ok)
	assert.Equal(t, 1, cpf.Count())
	assert.Equal(t, []string{"111.222.333-44"}, cpf.Values())
	assert.Equal(t, path, res.FilePath)
}

func TestScanFile_TotalEqualsSumOfCategories(t *testing.T) {
	content := strings.Join([]string{
		"CPF: 111.222.333-44",
		"Telefone: (11) 98765-4321",
		"Endereço: CEP 01310-100",
		"Religião: católico, CATÓLICO",
		"Saúde: Diabético",
	}, "\n")
	res, err := ScanFile(ScanConfig{FilePath: writeFile(t, content)})
	require.NoError(t, err)

	sum := 0
	for _, c := range res.Result.Categories {
		sum += c.Count()
	}
	assert.Equal(t, sum, res.Summary.Total)
	assert.Equal(t, len(res.Matches), res.Summary.Total)
	assert.True(t, res.Summary.HasMatches)

	health, ok := res.Result.Get("SAÚDE/RELIGIÃO")
	require.True(t, ok)
	assert.Equal(t, []string{"católico", "CATÓLICO", "Diabético"}, health.Values())
}

func TestScanFile_EmptyFile(t *testing.T) {
	res, err := ScanFile(ScanConfig{FilePath: writeFile(t, "")})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Summary.Total)
	assert.False(t, res.Summary.HasMatches)
	assert.Empty(t, res.Result.Categories)
}

func TestScanFile_MissingFile(t *testing.T) {
	res, err := ScanFile(ScanConfig{FilePath: filepath.Join(t.TempDir(), "nope.txt"), LogWriter: &bytes.Buffer{}})
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestScanFile_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	_, err := ScanFile(ScanConfig{FilePath: writeFile(t, "Ateu"), Debug: true, LogWriter: &logs})
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "▸ scanner.scan_file")
	assert.Contains(t, out, "· scanner: loaded 4 bytes, applying LGPD patterns")
	assert.Contains(t, out, `"operation":"load_text"`)
	assert.Contains(t, out, "1 matches in 1 categories")
}

func TestNewValidator_UsesLGPDTable(t *testing.T) {
	v := newValidator(observability.NewObserver(false, &bytes.Buffer{}))
	assert.Equal(t, "LGPD", v.Name())

	matches, err := v.ValidateContent("CEP 01310-100", "cv.txt")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "LGPD", matches[0].Validator)
}

func TestScanResult_Clear(t *testing.T) {
	m := detector.Match{Type: "CPF", Text: "111.222.333-44", SecureText: security.NewSecureString("111.222.333-44")}
	res := &ScanResult{
		Matches: []detector.Match{m},
		Result:  MatchResult{Categories: []CategoryMatches{{Name: "CPF", Matches: []detector.Match{m}}}},
	}

	res.Clear()

	assert.Empty(t, res.Matches[0].Text)
	assert.Empty(t, res.Result.Categories[0].Matches[0].Text)
}
