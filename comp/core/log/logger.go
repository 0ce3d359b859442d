// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"context"
	"os"

	"go.uber.org/fx"

	"github.com/DataDog/uname/comp/core/config"
	"github.com/DataDog/uname/pkg/util/fxutil"
	pkglog "github.com/DataDog/uname/pkg/util/log"
)

// Module defines the fx options for this component.
func Module() fx.Option {
	return fxutil.Component(
		fx.Provide(newLogger),
	)
}

type dependencies struct {
	fx.In

	Lc     fx.Lifecycle
	Params Params
	Config config.Component
}

// logger delegates to the process-wide logger that its constructor set up.
type logger struct{}

func newLogger(deps dependencies) (Component, error) {
	level := deps.Params.defaultLogLevel
	if deps.Params.overrideFromEnv {
		if envLevel := deps.Config.GetString("log_level"); envLevel != "" {
			level = envLevel
		}
	}

	inner, err := pkglog.BuildLogger(os.Stderr, deps.Params.loggerName, level)
	if err != nil {
		return nil, err
	}
	pkglog.SetupLogger(inner, level)

	l := &logger{}
	deps.Lc.Append(fx.Hook{OnStop: func(context.Context) error {
		l.Flush()
		return nil
	}})
	return l, nil
}

func (*logger) Trace(v ...interface{})                          { pkglog.Trace(v...) }
func (*logger) Tracef(format string, params ...interface{})     { pkglog.Tracef(format, params...) }
func (*logger) Debug(v ...interface{})                          { pkglog.Debug(v...) }
func (*logger) Debugf(format string, params ...interface{})     { pkglog.Debugf(format, params...) }
func (*logger) Info(v ...interface{})                           { pkglog.Info(v...) }
func (*logger) Infof(format string, params ...interface{})      { pkglog.Infof(format, params...) }
func (*logger) Warn(v ...interface{}) error                     { return pkglog.Warn(v...) }
func (*logger) Warnf(format string, params ...interface{}) error { return pkglog.Warnf(format, params...) }
func (*logger) Error(v ...interface{}) error                    { return pkglog.Error(v...) }
func (*logger) Errorf(format string, params ...interface{}) error {
	return pkglog.Errorf(format, params...)
}
func (*logger) Critical(v ...interface{}) error { return pkglog.Critical(v...) }
func (*logger) Criticalf(format string, params ...interface{}) error {
	return pkglog.Criticalf(format, params...)
}
func (*logger) Flush() { pkglog.Flush() }
