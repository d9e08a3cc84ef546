// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, info, "lgpd-scan "+Version)
	assert.Contains(t, info, runtime.Version())
	assert.Contains(t, info, runtime.GOOS+"/"+runtime.GOARCH)
}
