// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package log implements logging for the uname tool on top of seelog. It
// keeps a single process-wide logger; calls made before SetupLogger runs
// are buffered and replayed once a logger exists, so early diagnostics are
// not lost.
package log

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cihub/seelog"
)

// wrappedLogger pairs a seelog logger with the minimum level it accepts.
type wrappedLogger struct {
	inner seelog.LoggerInterface
	level seelog.LogLevel
	l     sync.RWMutex
}

func (w *wrappedLogger) shouldLog(level seelog.LogLevel) bool {
	w.l.RLock()
	defer w.l.RUnlock()
	return level >= w.level
}

var (
	logger      *wrappedLogger
	loggerMutex sync.RWMutex

	// logsBuffer holds calls made before the logger was set up.
	logsBuffer  []func()
	bufferMutex sync.Mutex
)

// SetupLogger installs l as the process-wide logger, gating it at the given
// level, then replays any buffered lines. Unknown level names fall back to
// "info".
func SetupLogger(l seelog.LoggerInterface, level string) {
	lvl, ok := seelog.LogLevelFromString(strings.ToLower(level))
	if !ok {
		lvl = seelog.InfoLvl
	}
	_ = l.SetAdditionalStackDepth(defaultStackDepth)

	loggerMutex.Lock()
	logger = &wrappedLogger{inner: l, level: lvl}
	loggerMutex.Unlock()

	bufferMutex.Lock()
	buffered := logsBuffer
	logsBuffer = nil
	bufferMutex.Unlock()
	for _, line := range buffered {
		line()
	}
}

// defaultStackDepth makes seelog report the caller of the package-level
// functions below instead of this file.
const defaultStackDepth = 3

// logLine routes one call: drop it when below the level, buffer it when no
// logger exists yet, emit it otherwise.
func logLine(level seelog.LogLevel, buffered func(), do func(seelog.LoggerInterface)) {
	loggerMutex.RLock()
	l := logger
	loggerMutex.RUnlock()

	if l == nil {
		bufferMutex.Lock()
		logsBuffer = append(logsBuffer, buffered)
		bufferMutex.Unlock()
		return
	}
	if l.shouldLog(level) {
		l.l.RLock()
		do(l.inner)
		l.l.RUnlock()
	}
}

// Trace logs at the trace level.
func Trace(v ...interface{}) {
	logLine(seelog.TraceLvl, func() { Trace(v...) }, func(i seelog.LoggerInterface) { i.Trace(v...) })
}

// Tracef logs with format at the trace level.
func Tracef(format string, params ...interface{}) {
	logLine(seelog.TraceLvl, func() { Tracef(format, params...) }, func(i seelog.LoggerInterface) { i.Tracef(format, params...) })
}

// Debug logs at the debug level.
func Debug(v ...interface{}) {
	logLine(seelog.DebugLvl, func() { Debug(v...) }, func(i seelog.LoggerInterface) { i.Debug(v...) })
}

// Debugf logs with format at the debug level.
func Debugf(format string, params ...interface{}) {
	logLine(seelog.DebugLvl, func() { Debugf(format, params...) }, func(i seelog.LoggerInterface) { i.Debugf(format, params...) })
}

// Info logs at the info level.
func Info(v ...interface{}) {
	logLine(seelog.InfoLvl, func() { Info(v...) }, func(i seelog.LoggerInterface) { i.Info(v...) })
}

// Infof logs with format at the info level.
func Infof(format string, params ...interface{}) {
	logLine(seelog.InfoLvl, func() { Infof(format, params...) }, func(i seelog.LoggerInterface) { i.Infof(format, params...) })
}

// Warn logs at the warn level and returns an error containing the formatted
// message, so call sites can both log and propagate.
func Warn(v ...interface{}) error {
	err := errors.New(fmt.Sprint(v...))
	logLine(seelog.WarnLvl, func() { _ = Warn(v...) }, func(i seelog.LoggerInterface) { _ = i.Warn(err.Error()) })
	return err
}

// Warnf logs with format at the warn level and returns an error containing
// the formatted message.
func Warnf(format string, params ...interface{}) error {
	err := fmt.Errorf(format, params...)
	logLine(seelog.WarnLvl, func() { _ = Warnf(format, params...) }, func(i seelog.LoggerInterface) { _ = i.Warn(err.Error()) })
	return err
}

// Error logs at the error level and returns an error containing the
// formatted message.
func Error(v ...interface{}) error {
	err := errors.New(fmt.Sprint(v...))
	logLine(seelog.ErrorLvl, func() { _ = Error(v...) }, func(i seelog.LoggerInterface) { _ = i.Error(err.Error()) })
	return err
}

// Errorf logs with format at the error level and returns an error
// containing the formatted message.
func Errorf(format string, params ...interface{}) error {
	err := fmt.Errorf(format, params...)
	logLine(seelog.ErrorLvl, func() { _ = Errorf(format, params...) }, func(i seelog.LoggerInterface) { _ = i.Error(err.Error()) })
	return err
}

// Critical logs at the critical level and returns an error containing the
// formatted message.
func Critical(v ...interface{}) error {
	err := errors.New(fmt.Sprint(v...))
	logLine(seelog.CriticalLvl, func() { _ = Critical(v...) }, func(i seelog.LoggerInterface) { _ = i.Critical(err.Error()) })
	return err
}

// Criticalf logs with format at the critical level and returns an error
// containing the formatted message.
func Criticalf(format string, params ...interface{}) error {
	err := fmt.Errorf(format, params...)
	logLine(seelog.CriticalLvl, func() { _ = Criticalf(format, params...) }, func(i seelog.LoggerInterface) { _ = i.Critical(err.Error()) })
	return err
}

// Flush flushes the underlying logger, blocking until buffered output is
// written.
func Flush() {
	loggerMutex.RLock()
	l := logger
	loggerMutex.RUnlock()
	if l != nil {
		l.l.RLock()
		l.inner.Flush()
		l.l.RUnlock()
	}
}
