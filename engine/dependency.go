package engine

import "github.com/corrado-dev/depsafe/types"

// Dependency is the intrusive edge record from a source object to a
// target object. It participates in two structures at once: the
// source's outgoing splay tree (parent/left/right, keyed by target)
// and the target's incoming list for its kind (prev/next).
type Dependency struct {
	source, target types.Handle
	kind            Kind

	parent, left, right *Dependency
	prev, next           *Dependency
}
