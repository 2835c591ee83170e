package schedule

import "errors"

// Sentinel errors for registry and catalog operations. Callers match them
// with errors.Is; the schedule package wraps them with context.
var (
	// ErrDuplicateEmployee is returned when registering an employee id that
	// is already present.
	ErrDuplicateEmployee = errors.New("employee id already registered")

	// ErrEmployeeNotFound is returned when looking up an unknown employee id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidDay is returned when a day index outside 0-6 reaches the
	// catalog or the engine.
	ErrInvalidDay = errors.New("day index out of range")

	// ErrInvalidTimeSlot is returned when a shift references a time slot
	// that is not in the configured slot sequence.
	ErrInvalidTimeSlot = errors.New("time slot not configured")

	// ErrNoTimeSlots is returned when shift generation runs with an empty
	// time slot sequence.
	ErrNoTimeSlots = errors.New("no time slots configured")

	// ErrNoDepartments is returned when shift generation runs with no
	// departments requested.
	ErrNoDepartments = errors.New("no departments requested")

	// ErrSlotsFrozen is returned when changing time slots after shifts have
	// been generated.
	ErrSlotsFrozen = errors.New("time slots are frozen once shifts exist")
)
