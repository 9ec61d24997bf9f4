package tokens

import "errors"

var (
	// ErrUnknownPath is returned when a dotted path names no token or group.
	ErrUnknownPath = errors.New("unknown token path")
	// ErrIndex is returned when the catalog cannot be indexed for lookup.
	ErrIndex = errors.New("failed to index token catalog")
	// errReadBytes is returned by the catalog provider, which has no raw form.
	errReadBytes = errors.New("catalog provider does not support ReadBytes")
)
