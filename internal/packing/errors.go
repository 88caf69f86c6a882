package packing

import (
	"errors"
	"fmt"
)

// ErrCapacity indicates the container could not hold every requested circle.
var ErrCapacity = errors.New("packing: container cannot hold all circles")

// CapacityError reports how many circles were placed out of the request.
type CapacityError struct {
	Requested int
	Placed    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("packing: placed %d of %d circles", e.Placed, e.Requested)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}
