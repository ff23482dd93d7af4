package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrado-dev/depsafe/types"
)

func TestQueryFiltersByValidity(t *testing.T) {
	r := NewRegistry(types.WithViolationHandler(func(types.Handle) {}))
	t.Cleanup(r.Shutdown)

	a, b := types.NewHandle(), types.NewHandle()
	r.AddDependency(a, b)
	r.MarkDestroyed(b)
	r.Validate(a) // consumes nothing; just exercises the read path

	invalid, err := r.Query("!Valid")
	require.NoError(t, err)
	assert.Contains(t, invalid, a)
	assert.NotContains(t, invalid, b, "b was removed from the registry by mark-destroyed")
}

func TestQueryFiltersByDegree(t *testing.T) {
	r := NewRegistry()
	t.Cleanup(r.Shutdown)

	a, b, c := types.NewHandle(), types.NewHandle(), types.NewHandle()
	r.AddDependency(a, b)
	r.AddDependency(a, c)

	results, err := r.Query("OutDegree == 2")
	require.NoError(t, err)
	assert.Contains(t, results, a)
}

func TestQueryInvalidPredicateErrors(t *testing.T) {
	r := NewRegistry()
	t.Cleanup(r.Shutdown)

	_, err := r.Query("not ( Valid")
	assert.Error(t, err)
}

func TestQueryAfterShutdownIsNoOp(t *testing.T) {
	r := NewRegistry()
	r.Shutdown()

	results, err := r.Query("Valid")
	require.NoError(t, err)
	assert.Nil(t, results)
}
