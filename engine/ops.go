package engine

import "github.com/corrado-dev/depsafe/types"

// AddDependency records that source depends on the existence of
// target: source becomes invalid when target is destroyed.
func (r *Registry) AddDependency(source, target types.Handle) {
	r.insertEdge(source, target, KindExistence)
}

// AddContentDependency records that source depends on the unchanged
// content of target: source becomes invalid when target is destroyed
// or modified.
func (r *Registry) AddContentDependency(source, target types.Handle) {
	r.insertEdge(source, target, KindContent)
}

func (r *Registry) insertEdge(a, b types.Handle, kind Kind) {
	if !r.active() {
		return
	}
	if src, ok := r.lookup(a); ok && !src.valid {
		// Invalid sources do not acquire new dependencies.
		return
	}
	if kind == KindContent {
		if tgt, ok := r.lookup(b); ok && !tgt.valid {
			r.invalidateObject(r.lookupOrCreate(a), true)
			return
		}
	}

	aObj := r.lookupOrCreate(a)
	root, found := splayFind(aObj.outgoing, b)
	aObj.outgoing = root
	if found != nil {
		if found.kind == KindExistence && kind == KindContent {
			bObj := r.lookupOrCreate(b)
			found.unlinkFromList()
			found.kind = KindContent
			bObj.incomingContent.prepend(found)
			r.metricEdgeUpgraded()
		}
		return
	}

	bObj := r.lookupOrCreate(b)
	d := &Dependency{source: a, target: b, kind: kind}
	aObj.outgoing = splayInsert(aObj.outgoing, d)
	if kind == KindExistence {
		bObj.incomingExist.prepend(d)
	} else {
		bObj.incomingContent.prepend(d)
	}
	r.metricEdgeCreated(kind)
}

// MarkModified cascades content-only invalidation through target's
// content-incoming list. target itself remains valid and its own
// outgoing edges are untouched.
func (r *Registry) MarkModified(target types.Handle) {
	if !r.active() {
		return
	}
	obj, ok := r.lookup(target)
	if !ok {
		return
	}
	var queue []cascadeItem
	obj.incomingContent.drain(func(d *Dependency) {
		if src, ok := r.lookup(d.source); ok {
			queue = append(queue, cascadeItem{src, true})
		}
	})
	r.runCascade(queue)
	r.metricCascade("modified")
}

// MarkDestroyed cascades full invalidation through both of target's
// incoming lists, then removes target from the registry. Idempotent:
// a second call on an already-destroyed handle is a no-op (I3/R3).
func (r *Registry) MarkDestroyed(target types.Handle) {
	if !r.active() {
		return
	}
	obj, ok := r.lookup(target)
	if !ok {
		return
	}
	if obj.valid {
		r.invalidateObject(obj, true)
	} else {
		// Existence edges may target an already-invalid object; its
		// incoming lists still hold those dependents.
		var queue []cascadeItem
		enqueue := func(d *Dependency) {
			if src, ok := r.lookup(d.source); ok {
				queue = append(queue, cascadeItem{src, true})
			}
		}
		obj.incomingContent.drain(enqueue)
		obj.incomingExist.drain(enqueue)
		r.runCascade(queue)
	}
	r.dropOutgoing(obj) // no-op if invalidateObject already drained it
	delete(r.objects, target)
	r.metricObjectDestroyed()
	r.metricCascade("destroyed")
}

// Reset drops all of source's outgoing edges and marks it valid again.
// source's incoming edges, and hence its dependents, are untouched. A
// no-op if source was never registered.
func (r *Registry) Reset(source types.Handle) {
	if !r.active() {
		return
	}
	obj, ok := r.lookup(source)
	if !ok {
		return
	}
	r.dropOutgoing(obj)
	obj.valid = true
}

// PropagateInvalid invalidates a if b exists and is currently invalid;
// otherwise it is a no-op. Used by copy operations that should inherit
// an already-broken state without acquiring any new edges.
func (r *Registry) PropagateInvalid(a, b types.Handle) {
	if !r.active() {
		return
	}
	bObj, ok := r.lookup(b)
	if !ok || bObj.valid {
		return
	}
	r.invalidateObject(r.lookupOrCreate(a), true)
}

// PropagateContent behaves like PropagateInvalid, and additionally
// re-issues each of b's outgoing content edges with a as the source,
// so that a depends on the content of everything b depended on the
// content of at the time of the call.
func (r *Registry) PropagateContent(a, b types.Handle) {
	if !r.active() {
		return
	}
	bObj, ok := r.lookup(b)
	if !ok {
		return
	}
	if !bObj.valid {
		r.invalidateObject(r.lookupOrCreate(a), true)
	}
	for _, d := range collectOutgoing(bObj.outgoing) {
		if d.kind == KindContent {
			r.insertEdge(a, d.target, KindContent)
		}
	}
}

// Validate reports a temporal violation to the installed
// ViolationHandler if target is registered and invalid. A no-op for
// unregistered or valid handles.
func (r *Registry) Validate(target types.Handle) {
	if !r.active() {
		return
	}
	obj, ok := r.lookup(target)
	if !ok || obj.valid {
		return
	}
	r.metricViolation()
	r.cfg.ViolationHandler(target)
}

// SetViolationHandler installs h as the sink for temporal violations,
// or restores DefaultViolationHandler if h is nil.
func (r *Registry) SetViolationHandler(h types.ViolationHandler) {
	if !r.active() {
		return
	}
	if h == nil {
		h = types.DefaultViolationHandler
	}
	r.cfg.ViolationHandler = h
}

// AssertSpatial invokes the installed SpatialHandler if cond is false.
func (r *Registry) AssertSpatial(cond bool) {
	if !r.active() {
		return
	}
	if cond {
		return
	}
	r.cfg.SpatialHandler()
}

// invalidateObject is the parameterized "invalidate X" procedure: if
// obj was valid, mark it invalid, cascade through its content-incoming
// list (always), through its existence-incoming list (only when full),
// then drop its own outgoing edges. Already-invalid objects are a
// no-op, which both bounds cascades on cyclic graphs and makes the
// operation safe to call more than once.
func (r *Registry) invalidateObject(obj *object, full bool) {
	r.runCascade([]cascadeItem{{obj, full}})
}

// cascadeItem is one pending entry in an invalidation work list: an
// Object still to be invalidated, and whether its existence-incoming
// list should be cascaded through as well as its content-incoming one.
type cascadeItem struct {
	obj  *object
	full bool
}

// runCascade drains queue breadth-first instead of recursing: each
// dependent discovered while invalidating one object is appended to
// queue rather than invalidated via a nested call, so a long chain or
// diamond of dependencies invalidates in a flat loop instead of
// growing the Go call stack one frame per link. Already-invalid
// entries are skipped, which both bounds the loop on cyclic graphs and
// tolerates the same object being enqueued more than once.
func (r *Registry) runCascade(queue []cascadeItem) {
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		obj := it.obj
		if !obj.valid {
			continue
		}
		obj.valid = false
		obj.incomingContent.drain(func(d *Dependency) {
			if src, ok := r.lookup(d.source); ok {
				queue = append(queue, cascadeItem{src, true})
			}
		})
		if it.full {
			obj.incomingExist.drain(func(d *Dependency) {
				if src, ok := r.lookup(d.source); ok {
					queue = append(queue, cascadeItem{src, true})
				}
			})
		}
		r.dropOutgoing(obj)
	}
}

// dropOutgoing releases every Dependency sourced at obj: each is
// removed from obj's splay tree and unlinked from its target's
// incoming list.
func (r *Registry) dropOutgoing(obj *object) {
	for obj.outgoing != nil {
		d := obj.outgoing
		obj.outgoing = splayRemove(obj.outgoing, d)
		d.unlinkFromList()
		r.metricEdgeDropped()
	}
}
