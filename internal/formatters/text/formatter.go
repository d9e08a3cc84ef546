// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"lgpd-scan/internal/core"
	"lgpd-scan/internal/formatters"

	"github.com/fatih/color"
)

// MaxListedValues is how many values each category line shows.
const MaxListedValues = 3

// Formatter renders the LGPD risk report
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green": color.New(color.FgGreen, color.Bold),
			"red":   color.New(color.FgRed, color.Bold),
			"cyan":  color.New(color.FgCyan),
			"white": color.New(color.FgWhite, color.Bold),
		},
	}
}

func init() {
	formatters.Register(NewFormatter())
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable LGPD risk report"
}

// Format writes the risk report. An empty result yields the low-risk
// message; otherwise each category gets one line with its count and at most
// MaxListedValues values.
func (f *Formatter) Format(scan *core.ScanResult, options formatters.FormatterOptions) (string, error) {
	if scan == nil {
		return "", fmt.Errorf("no scan result to format")
	}

	var builder strings.Builder
	summary := scan.Summary

	builder.WriteString("\n")
	f.writeColored(&builder, "white", options, "--- Relatório de Risco LGPD ---\n")

	if summary.Total == 0 {
		f.writeColored(&builder, "green", options, "✅ Baixo Risco: Nenhum dado sensível de formato conhecido foi detectado.\n")
		fmt.Fprintf(&builder, "Total de detecções: %d\n", summary.Total)
	} else {
		f.writeColored(&builder, "red", options, fmt.Sprintf("🚨 ALERTA DE ALTO RISCO: %d dados sensíveis detectados!\n", summary.Total))
		builder.WriteString("Recomendação: Revise e remova estes dados antes de armazenar.\n")

		builder.WriteString("\nDetalhes das Detecções:\n")
		for _, category := range scan.Result.Categories {
			f.appendCategoryLine(&builder, category, options)
		}
	}

	builder.WriteString("\n")
	f.writeColored(&builder, "white", options, "--- Fim da Análise ---\n")

	return builder.String(), nil
}

// appendCategoryLine writes "- **NAME** (N ocorrência(s)): v1, v2, v3..."
// The ellipsis is written whether or not values were elided.
func (f *Formatter) appendCategoryLine(builder *strings.Builder, category core.CategoryMatches, options formatters.FormatterOptions) {
	values := category.Values()
	if len(values) > MaxListedValues {
		values = values[:MaxListedValues]
	}

	name := "**" + category.Name + "**"
	if !options.NoColor {
		name = f.colors["cyan"].Sprint(name)
	}

	fmt.Fprintf(builder, "- %s (%d ocorrência(s)): %s...\n", name, category.Count(), strings.Join(values, ", "))
}

func (f *Formatter) writeColored(builder *strings.Builder, colorName string, options formatters.FormatterOptions, s string) {
	if options.NoColor {
		builder.WriteString(s)
		return
	}
	// Keep the newline outside the escape sequence.
	trimmed := strings.TrimSuffix(s, "\n")
	builder.WriteString(f.colors[colorName].Sprint(trimmed))
	if len(trimmed) != len(s) {
		builder.WriteString("\n")
	}
}
