// Package report renders an assignment result for humans. Purely derived
// output; no scheduling logic lives here.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"shiftbuilder/internal/domain"
	"shiftbuilder/internal/schedule"
)

const unassignedLabel = "UNASSIGNED"

// Write renders the weekly schedule grouped by day, then time slot, then
// department, followed by the unassigned shifts and summary statistics.
func Write(w io.Writer, res *schedule.Result, reg *schedule.Registry) {
	fmt.Fprintln(w, "WEEKLY SHIFT SCHEDULE")

	days := res.Days()
	if len(days) == 0 {
		fmt.Fprintln(w, "  No shifts scheduled")
	}
	for _, day := range days {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetTitle(domain.DayName(day.Day))
		tw.AppendHeader(table.Row{"Time Slot", "Department", "Employee"})
		for _, slot := range day.Slots {
			for _, s := range slot.Shifts {
				tw.AppendRow(table.Row{s.TimeSlot, s.Department, displayName(s, reg)})
			}
		}
		tw.Render()
	}

	if unassigned := res.Unassigned(); len(unassigned) > 0 {
		fmt.Fprintln(w, "UNASSIGNED SHIFTS")
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.AppendHeader(table.Row{"Day", "Time Slot", "Department"})
		for _, s := range unassigned {
			tw.AppendRow(table.Row{domain.DayName(s.Day), s.TimeSlot, s.Department})
		}
		tw.Render()
	}

	total := len(res.Shifts)
	assigned := total - res.UnassignedCount
	fmt.Fprintf(w, "Total shifts: %d\n", total)
	fmt.Fprintf(w, "Assigned shifts: %d\n", assigned)
	fmt.Fprintf(w, "Unassigned shifts: %d\n", res.UnassignedCount)
	if total > 0 {
		fmt.Fprintf(w, "Assignment rate: %.1f%%\n", float64(assigned)/float64(total)*100)
	}
}

func displayName(s domain.Shift, reg *schedule.Registry) string {
	if !s.Assigned() {
		return unassignedLabel
	}
	e, err := reg.Get(*s.AssignedEmployeeID)
	if err != nil {
		return *s.AssignedEmployeeID
	}
	if e.Name == "" {
		return e.EmployeeID
	}
	return e.Name
}
