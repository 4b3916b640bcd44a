package confindent

import "errors"

// ErrDuplicateKey is returned by the strict AddChild variants when the key is
// already present among the target's children.
var ErrDuplicateKey = errors.New("confindent: duplicate key")
