package modelstorage

import (
	"errors"
	"fmt"

	"github.com/hupe1980/modelstorage/model"
)

// Mutations never return errors. These values classify the diagnostics
// reported for ignored operations and can be matched with errors.Is on the
// logged "error" attribute.
var (
	// ErrInvalidCoordinate is reported for negative section or item positions.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInsertGap is reported when an insert position lies beyond the end of
	// its section.
	ErrInsertGap = errors.New("insert position leaves a gap")

	// ErrItemNotFound is reported when a move names a coordinate with no item.
	ErrItemNotFound = errors.New("no item at coordinate")
)

// ErrCoordinate describes an operation rejected for its coordinate.
//
// The classifying sentinel can be accessed via errors.Unwrap.
type ErrCoordinate struct {
	Op         string
	Coordinate model.Coordinate
	// Count is the number of items in the target section at the time of the
	// call, or 0 if the section did not exist.
	Count int
	cause error
}

func (e *ErrCoordinate) Error() string {
	return fmt.Sprintf("%s at %s: %v (section holds %d items)", e.Op, e.Coordinate, e.cause, e.Count)
}

func (e *ErrCoordinate) Unwrap() error { return e.cause }

func coordinateError(op string, at model.Coordinate, count int, cause error) error {
	return &ErrCoordinate{Op: op, Coordinate: at, Count: count, cause: cause}
}
