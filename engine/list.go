package engine

// incomingList is an intrusive doubly linked list of *Dependency nodes
// sharing one incoming slot (kind) on some object. Sentinel head/tail
// nodes mean link and unlink never special-case the ends, the way
// namecache's cacheEntry list does for LRU ordering.
type incomingList struct {
	head *Dependency
	tail *Dependency
}

func newIncomingList() *incomingList {
	head := &Dependency{}
	tail := &Dependency{}
	head.next = tail
	tail.prev = head
	return &incomingList{head: head, tail: tail}
}

// prepend links d as the first real entry of the list. d must not
// already belong to a list.
func (l *incomingList) prepend(d *Dependency) {
	d.prev = l.head
	d.next = l.head.next
	l.head.next.prev = d
	l.head.next = d
}

// unlinkFromList removes d from whatever incomingList currently holds
// it. It is a no-op if d is not linked into any list, so callers may
// unlink a node more than once (a cascade that drains the same list a
// node already left is safe).
func (d *Dependency) unlinkFromList() {
	if d.prev == nil && d.next == nil {
		return
	}
	d.prev.next = d.next
	d.next.prev = d.prev
	d.prev = nil
	d.next = nil
}

func (l *incomingList) empty() bool {
	return l.head.next == l.tail
}

func (l *incomingList) len() int {
	n := 0
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		n++
	}
	return n
}

// drain calls fn once for every real node currently in the list, in
// head-to-tail order. Each node is unlinked before fn runs, so a
// cascade that re-enters this same list (directly or transitively)
// never reprocesses an already-invalidated node. The next node is
// re-read from the head on every iteration rather than cached ahead
// of fn: fn can itself unlink arbitrary nodes from this same list (a
// re-entrant cascade through a diamond or chain of dependencies), and
// a cached successor could be one of them, left dangling.
func (l *incomingList) drain(fn func(*Dependency)) {
	for !l.empty() {
		n := l.head.next
		n.unlinkFromList()
		fn(n)
	}
}
