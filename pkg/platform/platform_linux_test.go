// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package platform

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	info, err := Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Linux", info.Sysname)
	assert.Equal(t, "GNU/Linux", info.OSName)
	assert.NotEmpty(t, info.Release)
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Machine)

	hostname, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, hostname, info.Nodename)

	// ByteSliceToString must have stripped the padding
	for _, s := range []string{info.Sysname, info.Nodename, info.Release, info.Version, info.Machine, info.Domainname} {
		assert.NotContains(t, s, "\x00")
	}
}
