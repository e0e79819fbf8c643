package aggregate

import "errors"

// Programmer errors rejected at the API boundary.
var (
	ErrNilEvent         = errors.New("aggregate: nil event")
	ErrNilEntity        = errors.New("aggregate: nil entity")
	ErrUnbound          = errors.New("aggregate: root is not bound to an owner, call Init first")
	ErrRegistrySealed   = errors.New("aggregate: dispatch table already built for type")
	ErrDuplicateHandler = errors.New("aggregate: handler already registered")
)
