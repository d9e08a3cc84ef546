// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package security

// SecureString holds a matched CPF, RG or similar value in a mutable buffer
// so the report stage can wipe it once the output has been written.
//
// The wipe is best effort. The Go runtime may have copied the bytes, and every
// call to String allocates a new immutable string that Clear cannot reach.
type SecureString struct {
	data []byte
}

// NewSecureString copies s into a buffer owned by the returned value.
func NewSecureString(s string) *SecureString {
	data := make([]byte, len(s))
	copy(data, s)
	return &SecureString{data: data}
}

// String returns a copy of the held value, or "" after Clear.
func (ss *SecureString) String() string {
	if ss == nil {
		return ""
	}
	return string(ss.data)
}

// Clear zeroes the buffer and drops it. Safe to call more than once.
func (ss *SecureString) Clear() {
	if ss == nil || ss.data == nil {
		return
	}
	for i := range ss.data {
		ss.data[i] = 0
	}
	ss.data = nil
}
