// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// LoadText reads the whole file at path as UTF-8 text. The file handle is
// released before LoadText returns, on success and on failure alike.
func LoadText(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &LoadError{Path: path, Op: "open", Kind: ErrFileNotFound, Err: err}
		}
		return "", &LoadError{Path: path, Op: "open", Kind: ErrFileUnreadable, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &LoadError{Path: path, Op: "read", Kind: ErrFileUnreadable, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &LoadError{Path: path, Op: "decode", Kind: ErrInvalidEncoding}
	}

	return string(data), nil
}
