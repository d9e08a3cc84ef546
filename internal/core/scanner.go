// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"io"
	"os"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/observability"
	"lgpd-scan/internal/validators/lgpd"
)

// ScanConfig holds configuration for scanning operations.
type ScanConfig struct {
	FilePath string
	Debug    bool
	// LogWriter receives debug output. Defaults to os.Stderr.
	LogWriter io.Writer
}

// ScanResult holds the results of a scanning operation.
type ScanResult struct {
	FilePath string
	Matches  []detector.Match
	Result   MatchResult
	Summary  ScanSummary
}

// Clear wipes every matched value held by the result.
func (r *ScanResult) Clear() {
	detector.ClearAll(r.Matches)
	for i := range r.Result.Categories {
		detector.ClearAll(r.Result.Categories[i].Matches)
	}
}

// ScanFile loads the file, applies the pattern table and summarizes the
// matches. A load failure is returned as a *LoadError and no result is built.
func ScanFile(scanConfig ScanConfig) (*ScanResult, error) {
	logWriter := scanConfig.LogWriter
	if logWriter == nil {
		logWriter = os.Stderr
	}
	observer := observability.NewObserver(scanConfig.Debug, logWriter)

	var finishStep func(bool, string)
	if observer.DebugObserver != nil {
		finishStep = observer.DebugObserver.StartStep("scanner", "scan_file", scanConfig.FilePath)
	}

	finishLoad := observer.StartTiming("scanner", "load_text", scanConfig.FilePath)
	text, err := LoadText(scanConfig.FilePath)
	if err != nil {
		finishLoad(false, map[string]interface{}{"error": err.Error()})
		if finishStep != nil {
			finishStep(false, err.Error())
		}
		return nil, err
	}
	finishLoad(true, map[string]interface{}{"content_length": len(text)})

	validator := newValidator(observer)
	if observer.DebugObserver != nil {
		observer.DebugObserver.LogDetail("scanner", fmt.Sprintf("loaded %d bytes, applying %s patterns", len(text), validator.Name()))
	}

	matches, err := validator.ValidateContent(text, scanConfig.FilePath)
	if err != nil {
		if finishStep != nil {
			finishStep(false, err.Error())
		}
		return nil, fmt.Errorf("pattern matching failed: %w", err)
	}

	result := GroupMatches(matches, lgpd.CategoryNames())
	summary := Summarize(result)

	if finishStep != nil {
		finishStep(true, fmt.Sprintf("%d matches in %d categories", summary.Total, len(result.Categories)))
	}

	return &ScanResult{
		FilePath: scanConfig.FilePath,
		Matches:  matches,
		Result:   result,
		Summary:  summary,
	}, nil
}

func newValidator(observer *observability.StandardObserver) detector.Validator {
	v := lgpd.NewValidator()
	v.SetObserver(observer)
	return v
}
