// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package platform collects host identification strings from the operating
// system. Collection happens in one shot; the returned Identity is a plain
// value that is never mutated afterwards.
package platform

import "runtime"

// Identity holds the fixed set of identification strings reported by the
// operating system.
type Identity struct {
	// Sysname is the kernel or implementation name, such as "Linux".
	Sysname string
	// Nodename is the network node hostname.
	Nodename string
	// Release is the kernel release, such as "6.5.0-14-generic".
	Release string
	// Version is the kernel version/build string.
	Version string
	// Machine is the hardware architecture, such as "x86_64".
	Machine string
	// Domainname is the NIS or YP domain name, on systems that report one.
	Domainname string
	// OSName is the operating system display name, such as "GNU/Linux".
	OSName string
}

// osName returns the display name for the running operating system, the
// value `uname -o` prints. A GOOS without a conventional display name falls
// back to the kernel sysname.
func osName(sysname string) string {
	switch runtime.GOOS {
	case "linux":
		return "GNU/Linux"
	case "android":
		return "Android"
	case "darwin", "ios":
		return "Darwin"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "dragonfly":
		return "DragonFly"
	case "solaris":
		return "Solaris"
	case "illumos":
		return "illumos"
	case "aix":
		return "AIX"
	default:
		return sysname
	}
}
