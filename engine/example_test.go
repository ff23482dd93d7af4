package engine_test

import (
	"fmt"

	"github.com/corrado-dev/depsafe/engine"
	"github.com/corrado-dev/depsafe/types"
)

// Example demonstrates the minimal lifecycle a wrapper type built on
// this package would follow: acquire a handle, register a dependency,
// and validate before every access.
func Example() {
	var violations []types.Handle
	r := engine.NewRegistry(types.WithViolationHandler(func(h types.Handle) {
		violations = append(violations, h)
	}))
	defer r.Shutdown()

	view, buffer := types.NewHandle(), types.NewHandle()
	r.AddDependency(view, buffer) // view depends on buffer's existence

	r.MarkDestroyed(buffer) // buffer goes out of scope
	r.Validate(view)        // view is now dangling

	fmt.Println(len(violations) == 1)
	// Output: true
}

// Example_contentDependency shows the distinction between an existence
// dependency and a content dependency: mutating the depended-upon
// object invalidates a content dependent but not an existence-only
// one.
func Example_contentDependency() {
	r := engine.NewRegistry()
	defer r.Shutdown()

	var reported []types.Handle
	r.SetViolationHandler(func(h types.Handle) { reported = append(reported, h) })

	iterator, container := types.NewHandle(), types.NewHandle()
	r.AddContentDependency(iterator, container)

	r.MarkModified(container) // e.g. the container reallocated its storage
	r.Validate(iterator)
	r.Validate(container) // the container itself is still valid

	fmt.Println(len(reported))
	// Output: 1
}
