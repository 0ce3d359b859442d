// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package fxutil

import (
	"context"

	"go.uber.org/fx"
)

// OneShot runs oneShotFunc by means of a short-lived fx app: the app is
// built from the given options, started, oneShotFunc is called with
// arguments supplied by the app, and the app is stopped again (running any
// registered OnStop hooks, such as the log flush).
//
// This is the entrypoint for commands that do one thing and exit, as
// opposed to long-running processes.
func OneShot(oneShotFunc interface{}, opts ...fx.Option) error {
	if fxAppTestOverride != nil {
		return fxAppTestOverride(oneShotFunc, opts)
	}

	delayed := newDelayedFxInvocation(oneShotFunc)
	opts = append(opts, delayed.option(), FxDefaults())
	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	err := delayed.call()

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}
