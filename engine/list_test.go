package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomingListPrependOrder(t *testing.T) {
	l := newIncomingList()
	assert.True(t, l.empty())

	a, b, c := &Dependency{}, &Dependency{}, &Dependency{}
	l.prepend(a)
	l.prepend(b)
	l.prepend(c)

	assert.Equal(t, 3, l.len())

	var order []*Dependency
	l.drain(func(d *Dependency) { order = append(order, d) })
	assert.Equal(t, []*Dependency{c, b, a}, order, "prepend puts the newest entry first")
	assert.True(t, l.empty())
}

func TestIncomingListUnlinkFromMiddle(t *testing.T) {
	l := newIncomingList()
	a, b, c := &Dependency{}, &Dependency{}, &Dependency{}
	l.prepend(a)
	l.prepend(b)
	l.prepend(c)

	b.unlinkFromList()
	assert.Equal(t, 2, l.len())

	var order []*Dependency
	l.drain(func(d *Dependency) { order = append(order, d) })
	assert.Equal(t, []*Dependency{c, a}, order)
}

func TestIncomingListUnlinkTwiceIsSafe(t *testing.T) {
	l := newIncomingList()
	a := &Dependency{}
	l.prepend(a)

	a.unlinkFromList()
	assert.NotPanics(t, func() { a.unlinkFromList() })
	assert.True(t, l.empty())
}

func TestIncomingListDrainDuringDrainIsSafe(t *testing.T) {
	l := newIncomingList()
	a, b := &Dependency{}, &Dependency{}
	l.prepend(a)
	l.prepend(b)

	visited := 0
	l.drain(func(d *Dependency) {
		visited++
		// Re-entrant unlink of a node already removed by drain must
		// never corrupt the list.
		d.unlinkFromList()
	})
	assert.Equal(t, 2, visited)
	assert.True(t, l.empty())
}

// TestIncomingListDrainSurvivesSuccessorUnlink covers the case the
// previous test missed: fn unlinks a node OTHER than the one just
// visited, specifically the not-yet-visited successor a drain that
// caches "next" ahead of time would already have captured. drain must
// re-read the head on every iteration instead of trusting a cached
// pointer, or this panics with a nil dereference once the stale
// successor's own links have been cleared.
func TestIncomingListDrainSurvivesSuccessorUnlink(t *testing.T) {
	l := newIncomingList()
	a, b, c := &Dependency{}, &Dependency{}, &Dependency{}
	l.prepend(a)
	l.prepend(b)
	l.prepend(c)
	// list order head-to-tail is c, b, a.

	var visited []*Dependency
	require.NotPanics(t, func() {
		l.drain(func(d *Dependency) {
			visited = append(visited, d)
			if d == c {
				// Removes b, which would be the cached "next" after
				// visiting c under the old implementation.
				b.unlinkFromList()
			}
		})
	})
	assert.Equal(t, []*Dependency{c, a}, visited)
	assert.True(t, l.empty())
}
