// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package fxutil

import "go.uber.org/fx"

// BundleOptions groups the fx options of a bundle's components. It is a
// distinct type so signatures can tell bundles apart from plain options.
type BundleOptions struct {
	fx.Option
}

// Bundle defines the fx options of a bundle of components.
func Bundle(opts ...fx.Option) BundleOptions {
	return BundleOptions{Option: fx.Options(opts...)}
}

// Component defines the fx options of a single component.
func Component(opts ...fx.Option) fx.Option {
	return fx.Options(opts...)
}

// FxDefaults returns the fx options shared by every app in this repository.
// fx's own event log is disabled: stderr belongs to the tool's diagnostics,
// stdout to its output.
func FxDefaults() fx.Option {
	return fx.Options(
		fx.NopLogger,
	)
}
