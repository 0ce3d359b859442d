// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package fxutil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestOneShotRunsFunction(t *testing.T) {
	var got string
	err := OneShot(func(str string) error {
		got = str
		return nil
	}, fx.Provide(func() string { return "from the app" }))
	require.NoError(t, err)
	require.Equal(t, "from the app", got)
}

func TestOneShotReturnsFunctionError(t *testing.T) {
	err := OneShot(func() error {
		return errors.New("uhoh")
	})
	require.ErrorContains(t, err, "uhoh")
}

func TestOneShotMissingDependency(t *testing.T) {
	err := OneShot(func(str string) error { return nil })
	require.Error(t, err)
}

func TestOneShotRunsOnStopHooks(t *testing.T) {
	stopped := false
	err := OneShot(func() error { return nil },
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStop: func(context.Context) error {
				stopped = true
				return nil
			}})
		}))
	require.NoError(t, err)
	require.True(t, stopped)
}
