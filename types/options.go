/*
 * Copyright 2024 The RuleGo Authors.
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

// Option is a function that modifies a Config. It follows the
// functional options pattern:
//
//	cfg := NewConfig(
//	    WithViolationHandler(myHandler),
//	    WithMetrics(true),
//	)
type Option func(*Config) error

// WithViolationHandler sets the handler invoked by Validate when an
// object is found invalid. Passing nil restores
// DefaultViolationHandler.
func WithViolationHandler(h ViolationHandler) Option {
	return func(c *Config) error {
		c.ViolationHandler = h
		return nil
	}
}

// WithSpatialHandler sets the handler invoked by AssertSpatial on
// failure. Passing nil restores DefaultSpatialHandler.
func WithSpatialHandler(h SpatialHandler) Option {
	return func(c *Config) error {
		c.SpatialHandler = h
		return nil
	}
}

// WithMetrics enables or disables Prometheus instrumentation on the
// Registry.
func WithMetrics(enabled bool) Option {
	return func(c *Config) error {
		c.MetricsEnabled = enabled
		return nil
	}
}
