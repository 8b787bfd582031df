package Models

import "errors"

// ErrWorkOrderNotFound is returned when an operation needs an existing work
// order and none matches, e.g. invoicing a deleted order.
var ErrWorkOrderNotFound = errors.New("work order not found")
