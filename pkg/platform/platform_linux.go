// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package platform

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// Collect queries the kernel for the host identification strings via
// uname(2). The utsname byte arrays are converted up to their first NUL.
func Collect(_ context.Context) (*Identity, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, fmt.Errorf("uname syscall: %w", err)
	}

	sysname := unix.ByteSliceToString(uts.Sysname[:])
	return &Identity{
		Sysname:    sysname,
		Nodename:   unix.ByteSliceToString(uts.Nodename[:]),
		Release:    unix.ByteSliceToString(uts.Release[:]),
		Version:    unix.ByteSliceToString(uts.Version[:]),
		Machine:    unix.ByteSliceToString(uts.Machine[:]),
		Domainname: unix.ByteSliceToString(uts.Domainname[:]),
		OSName:     osName(sysname),
	}, nil
}
