// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package version defines the version of the uname tool
package version

import "fmt"

// Version contains the version of the tool.
// It is populated at build time using build flags.
var Version string

// Commit is populated with the short commit hash from which the tool was built
var Commit string

var versionDefault = "1.0.0"

func init() {
	if Version == "" {
		Version = versionDefault
	}
}

// Full returns the version string shown to users, including the commit hash
// when one was recorded at build time.
func Full() string {
	if Commit != "" {
		return fmt.Sprintf("%s - Commit: %s", Version, Commit)
	}
	return Version
}
