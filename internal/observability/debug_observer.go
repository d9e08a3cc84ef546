// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver prints a nested trace of the scan stages: file load, pattern
// matching and per-category counts.
type DebugObserver struct {
	*StandardObserver
	depth int
}

// NewDebugObserver creates a debug observer writing its trace to writer
func NewDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
	}
}

// NewObserver builds the observer used by a scan. With debug off it returns a
// metrics-level observer that stays silent.
func NewObserver(debug bool, writer io.Writer) *StandardObserver {
	if !debug {
		return NewStandardObserver(ObservabilityMetrics, writer)
	}
	debugObs := NewDebugObserver(writer)
	observer := debugObs.StandardObserver
	observer.DebugObserver = debugObs
	return observer
}

func (d *DebugObserver) prefix() string {
	return strings.Repeat("  ", d.depth)
}

// StartStep opens a stage for filePath. The returned func closes it with the
// outcome and a short summary such as "3 matches in 2 categories".
func (d *DebugObserver) StartStep(component, step, filePath string) func(success bool, summary string) {
	start := time.Now()
	fmt.Fprintf(d.writer, "%s▸ %s.%s [%s]\n", d.prefix(), component, step, filePath)
	d.depth++

	return func(success bool, summary string) {
		d.depth--
		mark := "✔"
		if !success {
			mark = "✘"
		}
		line := fmt.Sprintf("%s%s %s.%s %dms", d.prefix(), mark, component, step, time.Since(start).Milliseconds())
		if summary != "" {
			line += " · " + summary
		}
		fmt.Fprintln(d.writer, line)
	}
}

// LogDetail notes a fact about the current stage, e.g. how much text was loaded
func (d *DebugObserver) LogDetail(component, detail string) {
	fmt.Fprintf(d.writer, "%s· %s: %s\n", d.prefix(), component, detail)
}

// LogCategoryCount records how many occurrences one category produced
func (d *DebugObserver) LogCategoryCount(category string, count int) {
	fmt.Fprintf(d.writer, "%s· %-16s %d ocorrência(s)\n", d.prefix(), category, count)
}
