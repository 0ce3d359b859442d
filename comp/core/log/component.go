// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package log implements a component to handle logging. Records go to
// stderr through pkg/util/log, keeping stdout reserved for the tool's
// output; the default one-shot level is "off" so a normal run prints
// nothing but its result.
package log

// team: agent-shared-components

// Component is the component type.
type Component interface {
	// Trace logs at the trace level.
	Trace(v ...interface{})

	// Tracef logs with format at the trace level.
	Tracef(format string, params ...interface{})

	// Debug logs at the debug level.
	Debug(v ...interface{})

	// Debugf logs with format at the debug level.
	Debugf(format string, params ...interface{})

	// Info logs at the info level.
	Info(v ...interface{})

	// Infof logs with format at the info level.
	Infof(format string, params ...interface{})

	// Warn logs at the warn level and returns an error containing the
	// formatted message.
	Warn(v ...interface{}) error

	// Warnf logs with format at the warn level and returns an error
	// containing the formatted message.
	Warnf(format string, params ...interface{}) error

	// Error logs at the error level and returns an error containing the
	// formatted message.
	Error(v ...interface{}) error

	// Errorf logs with format at the error level and returns an error
	// containing the formatted message.
	Errorf(format string, params ...interface{}) error

	// Critical logs at the critical level and returns an error containing
	// the formatted message.
	Critical(v ...interface{}) error

	// Criticalf logs with format at the critical level and returns an
	// error containing the formatted message.
	Criticalf(format string, params ...interface{}) error

	// Flush flushes the underlying logger.
	Flush()
}
