// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/DataDog/uname/comp/core/config"
	"github.com/DataDog/uname/pkg/util/fxutil"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Supply(config.NewParams("UNAME")),
		config.Module(),
		Module(),
	)
}

func TestLoggerConstructsAtDefaultLevel(t *testing.T) {
	log := fxutil.Test[Component](t, fx.Options(
		fx.Supply(ForOneShot("TEST", "off", false)),
		coreOptions(),
	))
	// no output expected at "off"; just exercise the full surface
	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	require.Error(t, log.Warnf("warn %d", 3))
	require.Error(t, log.Errorf("error %d", 4))
	log.Flush()
}

func TestLoggerHonorsEnvOverride(t *testing.T) {
	t.Setenv("UNAME_LOG_LEVEL", "debug")

	log := fxutil.Test[Component](t, fx.Options(
		fx.Supply(ForOneShot("TEST", "off", true)),
		coreOptions(),
	))
	log.Debug("reachable at debug")
	log.Flush()
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	err := fxutil.OneShot(func(_ Component) error { return nil },
		fx.Supply(ForOneShot("TEST", "chatty", false)),
		coreOptions(),
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown log level")
}

func TestMockReturnsErrors(t *testing.T) {
	log := NewMock(t)
	log.Infof("hello %s", "tests")
	require.EqualError(t, log.Errorf("boom %d", 7), "boom 7")
	require.EqualError(t, log.Warn("careful"), "careful")
	log.Flush()
}
