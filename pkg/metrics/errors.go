package metrics

import "errors"

// ErrNoGatherer is returned by Handler when the manager's registerer cannot
// also be gathered, so there is nothing to expose.
var ErrNoGatherer = errors.New("metrics registry cannot be gathered")
