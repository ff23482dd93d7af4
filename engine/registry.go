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

// Package engine implements the process-wide dependency graph: the
// Registry that records existence and content dependencies between
// tracked objects, propagates invalidation when a dependency is
// modified or destroyed, and answers validation queries.
//
// The Registry is not safe for concurrent use. Single-threaded,
// cooperative access is assumed throughout, matching the discipline
// its wrapper-layer callers (reference and inner-reference types, not
// part of this package) are expected to observe.
package engine

import (
	"sync/atomic"

	"github.com/corrado-dev/depsafe/types"
)

// Registry is the process-wide map from object Handle to Object
// record. It owns the lifecycle of every Object and Dependency it
// creates.
type Registry struct {
	initialized int32
	objects     map[types.Handle]*object
	cfg         types.Config
	metrics     *metricsSet
}

// NewRegistry constructs a Registry and marks it initialized. Every
// public method is a no-op before construction completes or after
// Shutdown, so that static-duration callers torn down after the
// registry do not crash.
func NewRegistry(opts ...types.Option) *Registry {
	r := &Registry{
		objects: make(map[types.Handle]*object),
		cfg:     types.NewConfig(opts...),
	}
	if r.cfg.MetricsEnabled {
		r.metrics = newMetricsSet()
	}
	atomic.StoreInt32(&r.initialized, 1)
	return r
}

// Shutdown tears the Registry down: the initialized flag is cleared
// first so any operation already in flight or arriving afterward
// observes it and no-ops, then the object map is released.
func (r *Registry) Shutdown() {
	atomic.StoreInt32(&r.initialized, 0)
	r.objects = nil
}

func (r *Registry) active() bool {
	return atomic.LoadInt32(&r.initialized) == 1
}

// lookup returns the existing Object record for h, if any. It never
// creates one.
func (r *Registry) lookup(h types.Handle) (*object, bool) {
	obj, ok := r.objects[h]
	return obj, ok
}

// lookupOrCreate returns h's Object record, creating a default (valid,
// edge-free) one if this is the first operation to mention h.
func (r *Registry) lookupOrCreate(h types.Handle) *object {
	obj, ok := r.objects[h]
	if !ok {
		obj = newObject()
		r.objects[h] = obj
		r.metricObjectRegistered()
	}
	return obj
}

var defaultRegistry atomic.Pointer[Registry]

// Default returns the package-level singleton Registry, constructing
// it lazily on first use with default options.
func Default() *Registry {
	if r := defaultRegistry.Load(); r != nil {
		return r
	}
	r := NewRegistry()
	defaultRegistry.Store(r)
	return r
}
