// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package fxutil

import (
	"io"
	"reflect"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Test constructs a component of type T from the given fx options, failing
// t on any graph error. The app is stopped when the test ends.
func Test[T any](t testing.TB, opts ...fx.Option) T {
	var result T
	app := fxtest.New(t,
		FxDefaults(),
		fx.Options(opts...),
		fx.Populate(&result),
	)
	app.RequireStart()
	t.Cleanup(func() { app.RequireStop() })
	return result
}

// TestOneShotCommand runs a cobra command that is expected to reach
// fxutil.OneShot with expectedOneShotFunc, without starting the app. The fx
// options the command assembled are validated by building them in an fxtest
// app and invoking verifyFn, which may take any provided type.
func TestOneShotCommand(t *testing.T, cmd *cobra.Command, commandline []string, expectedOneShotFunc interface{}, verifyFn interface{}) {
	t.Helper()

	var oneShotRan bool
	fxAppTestOverride = func(oneShotFunc interface{}, opts []fx.Option) error {
		oneShotRan = true
		require.Equal(t,
			reflect.ValueOf(expectedOneShotFunc).Pointer(),
			reflect.ValueOf(oneShotFunc).Pointer(),
			"OneShot was called with an unexpected function")

		app := fxtest.New(t,
			FxDefaults(),
			fx.Options(opts...),
			fx.Invoke(verifyFn),
		)
		defer app.RequireStart().RequireStop()
		return nil
	}
	defer func() { fxAppTestOverride = nil }()

	cmd.SetArgs(commandline)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	require.NoError(t, cmd.Execute())
	require.True(t, oneShotRan, "the command did not reach OneShot")
}

// TestBundle validates that a bundle's components can be constructed, given
// extra options (typically an fx.Supply of the bundle params and an
// fx.Invoke naming the components under test).
func TestBundle(t *testing.T, bundle BundleOptions, extraOptions ...fx.Option) {
	t.Helper()
	opts := append([]fx.Option{bundle, FxDefaults()}, extraOptions...)
	require.NoError(t, fx.ValidateApp(opts...))
}
