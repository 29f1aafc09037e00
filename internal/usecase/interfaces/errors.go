package interfaces

import "errors"

// ErrStaleStatus is returned by UpdateStatus when the conditional write
// fails because the persisted status no longer matches the expected one.
// The caller's legality check was correct at time-of-check; re-reading and
// retrying is the documented recovery.
var ErrStaleStatus = errors.New("persisted status does not match expected status")
