// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSName(t *testing.T) {
	name := osName("SomeKernel")
	assert.NotEmpty(t, name)

	switch runtime.GOOS {
	case "linux":
		assert.Equal(t, "GNU/Linux", name)
	case "darwin":
		assert.Equal(t, "Darwin", name)
	case "freebsd":
		assert.Equal(t, "FreeBSD", name)
	case "windows":
		// the windows collector does not use osName
		assert.Equal(t, "SomeKernel", name)
	}
}
