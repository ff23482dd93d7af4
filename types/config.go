/*
 * Copyright 2023 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config holds the handlers and runtime options a Registry is
// constructed with.
type Config struct {
	// ViolationHandler is invoked when Validate finds an object
	// invalid. Defaults to DefaultViolationHandler.
	ViolationHandler ViolationHandler
	// SpatialHandler is invoked when AssertSpatial's condition is
	// false. Defaults to DefaultSpatialHandler.
	SpatialHandler SpatialHandler
	// MetricsEnabled controls whether the Registry registers and
	// updates Prometheus collectors. Off by default so ad-hoc use
	// never pays for metrics it doesn't scrape.
	MetricsEnabled bool
}

// NewConfig creates a Config with default handlers and applies opts in
// order.
func NewConfig(opts ...Option) Config {
	c := &Config{
		ViolationHandler: DefaultViolationHandler,
		SpatialHandler:   DefaultSpatialHandler,
	}
	for _, opt := range opts {
		_ = opt(c)
	}
	if c.ViolationHandler == nil {
		c.ViolationHandler = DefaultViolationHandler
	}
	if c.SpatialHandler == nil {
		c.SpatialHandler = DefaultSpatialHandler
	}
	return *c
}

// ConfigFromMap decodes a loose configuration map into a Config. Only
// scalar options are representable this way; handlers are functions
// and must be set with WithViolationHandler/WithSpatialHandler after.
//
//	cfg, err := types.ConfigFromMap(map[string]any{"metrics_enabled": true})
func ConfigFromMap(m map[string]any) (Config, error) {
	var raw struct {
		MetricsEnabled bool `mapstructure:"metrics_enabled"`
	}
	if err := mapstructure.Decode(m, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return NewConfig(WithMetrics(raw.MetricsEnabled)), nil
}
