// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileUnreadable covers permission failures, directories and I/O errors.
	ErrFileUnreadable = errors.New("file cannot be read")

	// ErrInvalidEncoding is returned when the content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")
)

// LoadError describes why an input file could not be turned into text.
type LoadError struct {
	Path string
	Op   string
	Kind error // one of the Err* sentinels above
	Err  error // underlying cause, may be nil
}

func (le *LoadError) Error() string {
	if le.Err != nil {
		return fmt.Sprintf("%s %s: %v: %v", le.Op, le.Path, le.Kind, le.Err)
	}
	return fmt.Sprintf("%s %s: %v", le.Op, le.Path, le.Kind)
}

// Is lets errors.Is match the sentinel kind as well as the wrapped cause.
func (le *LoadError) Is(target error) bool {
	return target == le.Kind
}

func (le *LoadError) Unwrap() error {
	return le.Err
}
