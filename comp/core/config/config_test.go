// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/DataDog/uname/pkg/util/fxutil"
)

func TestConfigReadsPrefixedEnv(t *testing.T) {
	t.Setenv("UNAME_LOG_LEVEL", "debug")

	config := fxutil.Test[Component](t, fx.Options(
		fx.Supply(NewParams("UNAME")),
		Module(),
	))
	require.Equal(t, "debug", config.GetString("log_level"))
	require.True(t, config.IsSet("log_level"))
}

func TestConfigUnsetKey(t *testing.T) {
	config := fxutil.Test[Component](t, fx.Options(
		fx.Supply(NewParams("UNAME")),
		Module(),
	))
	require.False(t, config.IsSet("surely_never_set"))
	require.Equal(t, "", config.GetString("surely_never_set"))
}

func TestMockConfig(t *testing.T) {
	t.Setenv("UNAME_LOG_LEVEL", "debug")

	config := fxutil.Test[Component](t, MockModule())

	// the mock ignores the environment...
	require.False(t, config.IsSet("log_level"))

	// ...and is driven by Set
	config.(Mock).Set("log_level", "trace")
	require.Equal(t, "trace", config.GetString("log_level"))
	config.(Mock).Set("fancy", true)
	require.True(t, config.GetBool("fancy"))
}
