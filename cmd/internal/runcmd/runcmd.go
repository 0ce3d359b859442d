// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package runcmd provides support for running cobra commands from a main
// function, mapping errors onto the process exit code.
package runcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/dig"
)

// Run executes cmd and returns the exit code for the process: 0 on
// success, nonzero otherwise. Errors are displayed here rather than left
// to cobra.
func Run(cmd *cobra.Command) int {
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err != nil {
		displayError(err, os.Stderr)
		return -1
	}
	return 0
}

// displayError writes err for human consumption. fx wraps construction
// failures in deep chains with dependency traces; show only the root
// cause.
func displayError(err error, w io.Writer) {
	err = dig.RootCause(err)
	fmt.Fprintln(w, color.RedString("Error: %v", err))
}
