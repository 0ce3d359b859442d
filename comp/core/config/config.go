// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/DataDog/uname/pkg/util/fxutil"
)

// Module defines the fx options for this component.
func Module() fx.Option {
	return fxutil.Component(
		fx.Provide(newConfig),
	)
}

// cfg implements the Component over a viper instance. Reads are guarded so
// the component can be shared freely.
type cfg struct {
	l sync.RWMutex
	v *viper.Viper
}

func newConfig(params Params) Component {
	v := viper.New()
	v.SetEnvPrefix(params.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &cfg{v: v}
}

func (c *cfg) GetString(key string) string {
	c.l.RLock()
	defer c.l.RUnlock()
	return c.v.GetString(key)
}

func (c *cfg) GetBool(key string) bool {
	c.l.RLock()
	defer c.l.RUnlock()
	return c.v.GetBool(key)
}

func (c *cfg) IsSet(key string) bool {
	c.l.RLock()
	defer c.l.RUnlock()
	return c.v.IsSet(key)
}
