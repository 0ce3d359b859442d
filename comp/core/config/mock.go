// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package config

import (
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/DataDog/uname/pkg/util/fxutil"
)

// MockModule defines the fx options for the mock component. The mock reads
// no environment, so tests control every setting through Set.
func MockModule() fx.Option {
	return fxutil.Component(
		fx.Provide(newMock),
	)
}

type mockConfig struct {
	l sync.RWMutex
	v *viper.Viper
}

func newMock() Component {
	return &mockConfig{v: viper.New()}
}

func (c *mockConfig) GetString(key string) string {
	c.l.RLock()
	defer c.l.RUnlock()
	return c.v.GetString(key)
}

func (c *mockConfig) GetBool(key string) bool {
	c.l.RLock()
	defer c.l.RUnlock()
	return c.v.GetBool(key)
}

func (c *mockConfig) IsSet(key string) bool {
	c.l.RLock()
	defer c.l.RUnlock()
	return c.v.IsSet(key)
}

func (c *mockConfig) Set(key string, value interface{}) {
	c.l.Lock()
	defer c.l.Unlock()
	c.v.Set(key, value)
}
