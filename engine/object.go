package engine

// object is the per-registered-Handle state the Registry maintains:
// the validity flag, the root of its outgoing dependency tree, and the
// two heads of its incoming dependency lists (one per kind).
type object struct {
	valid bool

	// outgoing is the root of the splay tree of Dependency records
	// sourced at this object, keyed by target Handle. Invariant: if
	// !valid, outgoing is nil.
	outgoing *Dependency

	incomingExist   *incomingList
	incomingContent *incomingList
}

func newObject() *object {
	return &object{
		valid:           true,
		incomingExist:   newIncomingList(),
		incomingContent: newIncomingList(),
	}
}
