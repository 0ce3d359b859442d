// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package platforminfo

import (
	"context"

	"go.uber.org/fx"

	"github.com/DataDog/uname/pkg/platform"
	"github.com/DataDog/uname/pkg/util/fxutil"
)

// MockParams defines the parameters for the mock component.
type MockParams struct {
	// Identity is what Get returns.
	Identity *platform.Identity
	// Err, when non-nil, makes Get fail with it instead.
	Err error
}

// NewMock returns a Component pinned to the given identity or error.
func NewMock(params MockParams) Component {
	return &mock{params: params}
}

// MockModule defines the fx options for the mock component. Supply a
// MockParams to pick what it returns.
func MockModule() fx.Option {
	return fxutil.Component(
		fx.Provide(NewMock),
	)
}

type mock struct {
	params MockParams
}

func (m *mock) Get(context.Context) (*platform.Identity, error) {
	if m.params.Err != nil {
		return nil, m.params.Err
	}
	return m.params.Identity, nil
}
