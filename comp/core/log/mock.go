// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/fx"

	"github.com/DataDog/uname/pkg/util/fxutil"
)

// NewMock returns a Component sending every record through t.Log, so test
// output carries the tool's diagnostics.
func NewMock(t testing.TB) Component {
	return &mock{t: t}
}

// MockModule defines the fx options for the mock component. Supply a
// testing.TB (fx.Supply(fx.Annotate(t, fx.As(new(testing.TB))))) to use it.
func MockModule() fx.Option {
	return fxutil.Component(
		fx.Provide(func(t testing.TB) Component { return NewMock(t) }),
	)
}

type mock struct {
	t testing.TB
}

func (m *mock) Trace(v ...interface{})                      { m.t.Log(v...) }
func (m *mock) Tracef(format string, params ...interface{}) { m.t.Logf(format, params...) }
func (m *mock) Debug(v ...interface{})                      { m.t.Log(v...) }
func (m *mock) Debugf(format string, params ...interface{}) { m.t.Logf(format, params...) }
func (m *mock) Info(v ...interface{})                       { m.t.Log(v...) }
func (m *mock) Infof(format string, params ...interface{})  { m.t.Logf(format, params...) }

func (m *mock) Warn(v ...interface{}) error {
	m.t.Log(v...)
	return errors.New(fmt.Sprint(v...))
}

func (m *mock) Warnf(format string, params ...interface{}) error {
	m.t.Logf(format, params...)
	return fmt.Errorf(format, params...)
}

func (m *mock) Error(v ...interface{}) error {
	m.t.Log(v...)
	return errors.New(fmt.Sprint(v...))
}

func (m *mock) Errorf(format string, params ...interface{}) error {
	m.t.Logf(format, params...)
	return fmt.Errorf(format, params...)
}

func (m *mock) Critical(v ...interface{}) error {
	m.t.Log(v...)
	return errors.New(fmt.Sprint(v...))
}

func (m *mock) Criticalf(format string, params ...interface{}) error {
	m.t.Logf(format, params...)
	return fmt.Errorf(format, params...)
}

func (m *mock) Flush() {}
