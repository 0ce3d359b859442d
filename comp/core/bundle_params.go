// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package core

import (
	"github.com/DataDog/uname/comp/core/config"
	"github.com/DataDog/uname/comp/core/log"
)

// BundleParams defines the parameters for this bundle.
type BundleParams struct {
	ConfigParams config.Params
	LogParams    log.Params
}
