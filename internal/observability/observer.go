// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// StandardObserver records timing for each stage of a scan
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	runID         string
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer. All records emitted by one observer
// share a run ID so a single invocation can be picked out of a log stream.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
		runID:  uuid.NewString(),
	}
}

// RunID returns the identifier attached to every record of this observer
func (o *StandardObserver) RunID() string {
	return o.runID
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		data := StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}
		if n, ok := metadata["match_count"].(int); ok {
			data.MatchCount = n
		}
		if n, ok := metadata["content_length"].(int); ok {
			data.ContentLength = n
		}
		if e, ok := metadata["error"].(string); ok {
			data.Error = e
		}

		o.LogOperation(data)
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data.RequestID = o.runID

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		_ = json.NewEncoder(o.writer).Encode(data)
	}
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component     string                 `json:"component"`
	Operation     string                 `json:"operation"`
	RequestID     string                 `json:"request_id"`
	FilePath      string                 `json:"file_path,omitempty"`
	DurationMs    int64                  `json:"duration_ms"`
	Success       bool                   `json:"success"`
	Error         string                 `json:"error,omitempty"`
	ContentLength int                    `json:"content_length,omitempty"`
	MatchCount    int                    `json:"match_count,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}
