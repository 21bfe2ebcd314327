package fragment

import "errors"

var (
	ErrUnknownFragment = errors.New("unknown fragment")
	ErrRedefined       = errors.New("fragment redefined")
	ErrArity           = errors.New("wrong number of arguments")
	ErrUnboundParam    = errors.New("unbound parameter")
	ErrExpandDepth     = errors.New("expansion too deep")
	ErrBadName         = errors.New("bad fragment name")
)
