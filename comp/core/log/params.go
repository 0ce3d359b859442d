// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

// Params defines the parameters for the log component.
type Params struct {
	loggerName      string
	defaultLogLevel string
	overrideFromEnv bool
}

// ForOneShot returns logging parameters for a one-shot command: records go
// to stderr at defaultLogLevel, with loggerName embedded in every line.
// With overrideFromEnv, a log_level setting from the config component
// takes precedence over defaultLogLevel.
func ForOneShot(loggerName, defaultLogLevel string, overrideFromEnv bool) Params {
	return Params{
		loggerName:      loggerName,
		defaultLogLevel: defaultLogLevel,
		overrideFromEnv: overrideFromEnv,
	}
}
