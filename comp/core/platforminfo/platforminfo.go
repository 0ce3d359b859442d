// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package platforminfo

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/DataDog/uname/comp/core/log"
	"github.com/DataDog/uname/pkg/platform"
	"github.com/DataDog/uname/pkg/util/fxutil"
)

// Module defines the fx options for this component.
func Module() fx.Option {
	return fxutil.Component(
		fx.Provide(newProvider),
	)
}

type dependencies struct {
	fx.In

	Log log.Component
}

type provider struct {
	log log.Component
}

func newProvider(deps dependencies) Component {
	return &provider{log: deps.Log}
}

// Get collects the identity from the operating system. Every call collects
// fresh; the command calls it exactly once per run.
func (p *provider) Get(ctx context.Context) (*platform.Identity, error) {
	start := time.Now()
	info, err := platform.Collect(ctx)
	if err != nil {
		return nil, err
	}
	p.log.Debugf("collected platform identity for %s/%s in %s", info.Sysname, info.Machine, time.Since(start))
	return info, nil
}
