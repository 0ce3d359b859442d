// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package platform

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

// Collect queries Windows for the host identification strings. The
// registry/WMI backed values from gopsutil are mapped onto the
// utsname-shaped fields; the sysname is the conventional "Windows_NT".
func Collect(ctx context.Context) (*Identity, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}

	return &Identity{
		Sysname:  "Windows_NT",
		Nodename: info.Hostname,
		Release:  info.PlatformVersion,
		Version:  info.KernelVersion,
		Machine:  info.KernelArch,
		OSName:   info.Platform,
	}, nil
}
