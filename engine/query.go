package engine

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/corrado-dev/depsafe/types"
)

// objectView is the read-only environment a Query predicate is
// evaluated against, one instance per live object.
type objectView struct {
	Valid       bool
	OutDegree   int
	InExistence int
	InContent   int
}

// Query compiles predicate once and evaluates it against every live
// object's {Valid, OutDegree, InExistence, InContent}, returning the
// handles for which it evaluates true. Read-only: Query never mutates
// engine state. It exists purely as a debugging and testing aid; the
// core operation surface defines no introspection of its own.
func (r *Registry) Query(predicate string) ([]types.Handle, error) {
	if !r.active() {
		return nil, nil
	}
	program, err := expr.Compile(predicate, expr.Env(objectView{}), expr.AsBool())
	if err != nil {
		return nil, err
	}

	var out []types.Handle
	for h, obj := range r.objects {
		matched, err := runQuery(program, objectView{
			Valid:       obj.valid,
			OutDegree:   len(collectOutgoing(obj.outgoing)),
			InExistence: obj.incomingExist.len(),
			InContent:   obj.incomingContent.len(),
		})
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, h)
		}
	}
	return out, nil
}

func runQuery(program *vm.Program, view objectView) (bool, error) {
	result, err := vm.Run(program, view)
	if err != nil {
		return false, err
	}
	b, _ := result.(bool)
	return b, nil
}
