package server

import "shiftbuilder/internal/roster"

// BuildScheduleRequest carries everything one scheduling run needs: the
// roster records plus the generation parameters. Day indices inside
// availability travel as string keys; departments/days/time_slots are the
// generation request. Empty time_slots falls back to the server defaults.
type BuildScheduleRequest struct {
	Employees   []roster.Record `json:"employees"`
	Departments []string        `json:"departments"`
	Days        []int           `json:"days,omitempty"`
	TimeSlots   []string        `json:"time_slots,omitempty"`
}

// ScheduleResponse mirrors the export document, plus the ids of roster
// records that were skipped because their employee id was already taken.
type ScheduleResponse struct {
	Employees         []roster.Record      `json:"employees"`
	Shifts            []roster.ShiftRecord `json:"shifts"`
	UnassignedCount   int                  `json:"unassigned_count"`
	SkippedDuplicates []string             `json:"skipped_duplicates,omitempty"`
}
