package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrado-dev/depsafe/types"
)

func TestSplayInsertAndFind(t *testing.T) {
	var root *Dependency
	handles := make([]types.Handle, 8)
	for i := range handles {
		handles[i] = types.NewHandle()
	}

	for _, h := range handles {
		d := &Dependency{target: h}
		root = splayInsert(root, d)
		assert.Equal(t, h, root.target, "the just-inserted node should be splayed to the root")
	}

	for _, h := range handles {
		var found *Dependency
		root, found = splayFind(root, h)
		require.NotNil(t, found)
		assert.Equal(t, h, root.target, "a found node should be splayed to the root")
	}
}

func TestSplayFindMissing(t *testing.T) {
	var root *Dependency
	present := types.NewHandle()
	missing := types.NewHandle()
	root = splayInsert(root, &Dependency{target: present})

	_, found := splayFind(root, missing)
	assert.Nil(t, found)
}

func TestSplayRemove(t *testing.T) {
	var root *Dependency
	handles := make([]types.Handle, 5)
	nodes := make([]*Dependency, 5)
	for i := range handles {
		handles[i] = types.NewHandle()
		nodes[i] = &Dependency{target: handles[i]}
		root = splayInsert(root, nodes[i])
	}

	root = splayRemove(root, nodes[2])
	for i, h := range handles {
		if i == 2 {
			_, found := splayFind(root, h)
			assert.Nil(t, found)
			continue
		}
		var found *Dependency
		root, found = splayFind(root, h)
		assert.NotNil(t, found, "node %d should still be reachable after an unrelated removal", i)
	}
}

func TestCollectOutgoingReturnsEveryNode(t *testing.T) {
	var root *Dependency
	want := map[types.Handle]bool{}
	for i := 0; i < 6; i++ {
		h := types.NewHandle()
		want[h] = true
		root = splayInsert(root, &Dependency{target: h})
	}

	got := collectOutgoing(root)
	require.Len(t, got, len(want))
	for _, d := range got {
		assert.True(t, want[d.target])
	}
}

// TestCollectOutgoingDeeplySkewedTreeDoesNotOverflowStack builds a
// maximally skewed tree (a plain linked list shape, since every node
// here is constructed with only a left or right child set directly
// rather than through splayInsert) and walks it with an explicit
// stack, which must handle a chain as deep as it is long without
// recursing.
func TestCollectOutgoingDeeplySkewedTreeDoesNotOverflowStack(t *testing.T) {
	const depth = 20000
	var root *Dependency
	var prev *Dependency
	for i := 0; i < depth; i++ {
		n := &Dependency{target: types.NewHandle()}
		if root == nil {
			root = n
		} else {
			prev.right = n
			n.parent = prev
		}
		prev = n
	}

	var got []*Dependency
	assert.NotPanics(t, func() {
		got = collectOutgoing(root)
	})
	assert.Len(t, got, depth)
}
