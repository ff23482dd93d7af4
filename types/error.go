package types

import "errors"

// ErrInvalidConfig is returned by ConfigFromMap when its input cannot
// be decoded into a Config.
var ErrInvalidConfig = errors.New("depsafe: invalid config")
