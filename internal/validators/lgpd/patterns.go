// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lgpd

import "regexp"

// Category names as they appear in the risk report.
const (
	CategoryCPF    = "CPF"
	CategoryRG     = "RG"
	CategoryPhone  = "TELEFONE"
	CategoryHealth = "SAÚDE/RELIGIÃO"
	CategoryCEP    = "CEP"
)

// PatternEntry is one named sensitive-data category.
type PatternEntry struct {
	Name    string
	Pattern *regexp.Regexp
}

// RE2 classes are ASCII-only, so digits and whitespace are spelled with
// Unicode classes. Text pasted from office documents often carries NBSP or
// fullwidth digits.
const (
	digit = `\p{Nd}`
	space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`
)

// The table is ordered; report lines follow this order.
var patternTable = []PatternEntry{
	// XXX.XXX.XXX-XX
	{Name: CategoryCPF, Pattern: compile(digit + `{3}\.` + digit + `{3}\.` + digit + `{3}-` + digit + `{2}`)},
	// XX.XXX.XXX-X
	{Name: CategoryRG, Pattern: compile(digit + `{2}\.` + digit + `{3}\.` + digit + `{3}-` + digit + `{1}`)},
	// (XX) XXXXX-XXXX or (XX) XXXX-XXXX, space and hyphen optional
	{Name: CategoryPhone, Pattern: compile(`\(` + digit + `{2}\)` + space + `?` + digit + `{4,5}-?` + digit + `{4}`)},
	{Name: CategoryHealth, Pattern: compile(`(Católico|Evangélico|Ateu|Diabético|Alérgico|Pressão Alta)`)},
	// XXXXX-XXX
	{Name: CategoryCEP, Pattern: compile(digit + `{5}-` + digit + `{3}`)},
}

// Patterns returns a copy of the pattern table in declaration order.
func Patterns() []PatternEntry {
	out := make([]PatternEntry, len(patternTable))
	copy(out, patternTable)
	return out
}

// CategoryNames lists the category names in table order.
func CategoryNames() []string {
	names := make([]string, len(patternTable))
	for i, p := range patternTable {
		names[i] = p.Name
	}
	return names
}

// compile builds a case-insensitive pattern (DESIGN.md: table is compiled with (?i)).
func compile(expr string) *regexp.Regexp { return regexp.MustCompile("(?i)" + expr) }
