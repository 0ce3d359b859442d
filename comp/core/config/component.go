// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package config implements a component supplying runtime settings to the
// rest of the tool. Settings come from the process environment only; the
// tool keeps no configuration files.
package config

// team: agent-shared-components

// Component is the component type.
type Component interface {
	// GetString returns the setting as a string, or "" when unset.
	GetString(key string) string

	// GetBool returns the setting as a boolean.
	GetBool(key string) bool

	// IsSet reports whether the setting has a value.
	IsSet(key string) bool
}

// Mock implements mock-specific methods.
type Mock interface {
	Component

	// Set sets a setting for the duration of a test.
	Set(key string, value interface{})
}
