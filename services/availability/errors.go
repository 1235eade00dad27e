package availability

import "errors"

var (
	// ErrSlotNotFound covers both absence and lookups scoped to a
	// non-owning garage.
	ErrSlotNotFound = errors.New("availability slot not found")

	// ErrSlotOverlap signals that a candidate window intersects an existing
	// slot for the same garage and day.
	ErrSlotOverlap = errors.New("time slot overlaps with an existing slot")
)

// ValidationError flags malformed slot input: bad bounds, inverted
// intervals, unparseable day or time values.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}
