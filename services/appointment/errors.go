package appointment

import (
	"errors"
	"fmt"
	"strings"

	"garagehub/models"
)

var (
	// ErrNotFound covers both absence and lookups scoped to a non-owning
	// actor; the two are deliberately indistinguishable.
	ErrNotFound = errors.New("appointment not found")

	// ErrGarageNotFound signals a booking against an unknown garage.
	ErrGarageNotFound = errors.New("garage not found")

	// ErrAlreadyCancelled signals a cancel on an already-cancelled appointment.
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")

	// ErrConcurrentModification signals that the appointment changed between
	// the precondition check and the conditional write.
	ErrConcurrentModification = errors.New("appointment was modified by another request")
)

// ValidationError flags malformed or out-of-policy input.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// TransitionError reports an operation attempted from a status that does not
// permit it, naming the required prior state(s).
type TransitionError struct {
	Op       string
	Current  models.AppointmentStatus
	Required []models.AppointmentStatus
}

func (e TransitionError) Error() string {
	names := make([]string, len(e.Required))
	for i, s := range e.Required {
		names[i] = strings.ToLower(string(s))
	}
	return fmt.Sprintf("only %s appointments can be %s; current status is %s",
		strings.Join(names, " or "), e.Op, e.Current)
}
