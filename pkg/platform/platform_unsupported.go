// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build !unix && !windows

package platform

import (
	"context"
	"fmt"
	"runtime"
)

// Collect always fails: this platform has no utsname equivalent to read.
func Collect(_ context.Context) (*Identity, error) {
	return nil, fmt.Errorf("platform information is not collectable on %s/%s", runtime.GOOS, runtime.GOARCH)
}
