// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package platforminfo implements a component providing the host's
// platform identity. The interface is deliberately narrow so commands can
// be tested without touching the operating system.
package platforminfo

import (
	"context"

	"github.com/DataDog/uname/pkg/platform"
)

// team: agent-shared-components

// Component is the component type.
type Component interface {
	// Get returns the host's platform identity.
	Get(ctx context.Context) (*platform.Identity, error)
}
