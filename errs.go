package xmldiff

import "errors"

var (
	ErrBadOption = errors.New("bad option")
)
