// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"sort"
	"strings"

	"lgpd-scan/internal/core"
)

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	NoColor bool // Whether to disable colored output
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders the result of one scan
	Format(scan *core.ScanResult, options FormatterOptions) (string, error)

	// Name returns the name of the formatter
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders scan with the named formatter from the default registry
func Export(format string, scan *core.ScanResult, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(scan, options)
}
