// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package core implements the "core" bundle, providing the services every
// command needs: configuration, logging, and the platform identity
// provider.
//
// The constituent components serve as utilities and are mostly independent
// of one another. This bundle does not depend on any other bundles.
package core

import (
	"go.uber.org/fx"

	"github.com/DataDog/uname/comp/core/config"
	"github.com/DataDog/uname/comp/core/log"
	"github.com/DataDog/uname/comp/core/platforminfo"
	"github.com/DataDog/uname/pkg/util/fxutil"
)

// team: agent-shared-components

// Bundle defines the fx options for this bundle.
func Bundle() fxutil.BundleOptions {
	return fxutil.Bundle(
		// As config.Module expects config.Params, define how to get it from BundleParams.
		fx.Provide(func(params BundleParams) config.Params { return params.ConfigParams }),
		config.Module(),
		fx.Provide(func(params BundleParams) log.Params { return params.LogParams }),
		log.Module(),
		platforminfo.Module(),
	)
}
