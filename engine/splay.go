package engine

import "github.com/corrado-dev/depsafe/types"

// splayFind searches the tree rooted at root for key. Whether or not a
// match is found, the last node visited on the search path is splayed
// to the root. Returns the new root and the matching node, or nil if
// key is absent.
func splayFind(root *Dependency, key types.Handle) (*Dependency, *Dependency) {
	if root == nil {
		return nil, nil
	}
	var last *Dependency
	node := root
	for node != nil {
		last = node
		switch c := key.Compare(node.target); {
		case c == 0:
			node = nil
		case c < 0:
			node = node.left
		default:
			node = node.right
		}
	}
	newRoot := splay(last)
	if key.Compare(last.target) == 0 {
		return newRoot, last
	}
	return newRoot, nil
}

// splayInsert inserts d, whose target is not yet present in the tree
// rooted at root, at its BST position and splays it to the root.
func splayInsert(root *Dependency, d *Dependency) *Dependency {
	if root == nil {
		return d
	}
	node := root
	for {
		if d.target.Compare(node.target) < 0 {
			if node.left == nil {
				node.left = d
				d.parent = node
				break
			}
			node = node.left
		} else {
			if node.right == nil {
				node.right = d
				d.parent = node
				break
			}
			node = node.right
		}
	}
	return splay(d)
}

// splayRemove detaches d from the tree rooted at root and returns the
// new root. d must belong to this tree.
func splayRemove(root *Dependency, d *Dependency) *Dependency {
	root = splay(d)
	left, right := root.left, root.right
	if left != nil {
		left.parent = nil
	}
	if right != nil {
		right.parent = nil
	}
	root.left, root.right, root.parent = nil, nil, nil
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	default:
		maxLeft := left
		for maxLeft.right != nil {
			maxLeft = maxLeft.right
		}
		left = splay(maxLeft)
		left.right = right
		right.parent = left
		return left
	}
}

// splay rotates n to the root of its tree using zig, zig-zig and
// zig-zag steps, and returns n.
func splay(n *Dependency) *Dependency {
	if n == nil {
		return nil
	}
	for n.parent != nil {
		p := n.parent
		g := p.parent
		switch {
		case g == nil:
			if p.left == n {
				rotateRight(p)
			} else {
				rotateLeft(p)
			}
		case g.left == p && p.left == n:
			rotateRight(g)
			rotateRight(p)
		case g.right == p && p.right == n:
			rotateLeft(g)
			rotateLeft(p)
		case g.left == p && p.right == n:
			rotateLeft(p)
			rotateRight(g)
		default:
			rotateRight(p)
			rotateLeft(g)
		}
	}
	return n
}

func rotateLeft(x *Dependency) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	reparent(x, y)
	y.left = x
	x.parent = y
}

func rotateRight(x *Dependency) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	reparent(x, y)
	y.right = x
	x.parent = y
}

// reparent gives y the parent x currently has, fixing up that
// grandparent's child pointer.
func reparent(x, y *Dependency) {
	y.parent = x.parent
	if x.parent != nil {
		if x.parent.left == x {
			x.parent.left = y
		} else {
			x.parent.right = y
		}
	}
}

// collectOutgoing returns every Dependency in the tree rooted at root,
// in no particular order. Used by PropagateContent to snapshot an
// object's outgoing edges before re-issuing copies elsewhere, and by
// Query to report an object's out-degree. Walks with an explicit stack
// rather than recursing: a splay tree built by a long chain of
// one-sided inserts can be as deep as it has nodes, and order here
// carries no meaning to unwind safely.
func collectOutgoing(root *Dependency) []*Dependency {
	var out []*Dependency
	if root == nil {
		return out
	}
	stack := []*Dependency{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	return out
}
