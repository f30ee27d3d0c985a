package frag

import "errors"

// ErrParamCount reports a placeholder/parameter count mismatch detected at
// finalize time.
var ErrParamCount = errors.New("frag: marker and parameter counts differ")

// ErrBind reports a value whose Go type has no tagged Value representation.
var ErrBind = errors.New("frag: unbindable value")
