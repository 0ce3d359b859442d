// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package config

// Params defines the parameters for the config component.
type Params struct {
	envPrefix string
}

// NewParams creates a new instance of Params. Settings are read from
// environment variables named <envPrefix>_<KEY>, with dots in keys mapped
// to underscores.
func NewParams(envPrefix string) Params {
	return Params{envPrefix: envPrefix}
}
