// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package uname implements the selection and formatting rules of the uname
// command: which identity fields appear in the output, and in what order.
package uname

import (
	"strings"

	"github.com/DataDog/uname/pkg/platform"
)

// unknown is printed for the processor and hardware-platform fields on
// every system. Detecting them was never portable; the constant output is
// long-standing behavior that scripts depend on.
const unknown = "unknown"

// Options selects the identity fields to report. The zero value selects
// nothing, which Format treats as "kernel name only".
type Options struct {
	All              bool
	KernelName       bool
	Nodename         bool
	KernelRelease    bool
	KernelVersion    bool
	Machine          bool
	OperatingSystem  bool
	Processor        bool
	HardwarePlatform bool
}

// none reports whether no field was selected at all.
func (o Options) none() bool {
	return !(o.All || o.KernelName || o.Nodename || o.KernelRelease ||
		o.KernelVersion || o.Machine || o.OperatingSystem ||
		o.Processor || o.HardwarePlatform)
}

// Format renders the selected fields of info in the canonical order:
// kernel name, nodename, kernel release, kernel version, machine,
// operating system, processor, hardware platform. The order never depends
// on the order the options were set. All selects the first six fields;
// processor and hardware platform are printed only when asked for
// explicitly, and always as "unknown". Fields are joined by single spaces
// with no surrounding whitespace; the caller appends the final newline.
func Format(opts Options, info *platform.Identity) string {
	none := opts.none()

	var fields []string
	if opts.KernelName || opts.All || none {
		fields = append(fields, info.Sysname)
	}
	if opts.Nodename || opts.All {
		// some kernels NUL-pad the nodename; never let that reach output
		fields = append(fields, strings.TrimRight(info.Nodename, "\x00"))
	}
	if opts.KernelRelease || opts.All {
		fields = append(fields, info.Release)
	}
	if opts.KernelVersion || opts.All {
		fields = append(fields, info.Version)
	}
	if opts.Machine || opts.All {
		fields = append(fields, info.Machine)
	}
	if opts.OperatingSystem || opts.All {
		fields = append(fields, info.OSName)
	}
	if opts.Processor {
		fields = append(fields, unknown)
	}
	if opts.HardwarePlatform {
		fields = append(fields, unknown)
	}

	return strings.TrimSpace(strings.Join(fields, " "))
}
