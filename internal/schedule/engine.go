package schedule

import (
	"fmt"
	"sort"

	"shiftbuilder/internal/domain"
)

// Result is the outcome of one assignment pass: every shift of the catalog
// in generation order, each carrying its assignee or nil, plus the derived
// unassigned count. Result holds copies and never mutates the catalog.
type Result struct {
	Shifts          []domain.Shift
	UnassignedCount int

	slots []string
}

// SlotGroup is the set of shifts for one time slot within a day, ordered by
// department name.
type SlotGroup struct {
	TimeSlot string
	Shifts   []domain.Shift
}

// DayGroup is the schedule for one day, with slots in configured order.
type DayGroup struct {
	Day   int
	Slots []SlotGroup
}

// Days returns a read-only view of the result grouped by day, then time slot
// (configured order), then department (lexical order). Days without shifts
// are omitted.
func (r *Result) Days() []DayGroup {
	byDay := map[int][]domain.Shift{}
	for _, s := range r.Shifts {
		byDay[s.Day] = append(byDay[s.Day], s)
	}
	var out []DayGroup
	for day := 0; day <= 6; day++ {
		shifts, ok := byDay[day]
		if !ok {
			continue
		}
		group := DayGroup{Day: day}
		for _, slot := range r.slots {
			var sg SlotGroup
			sg.TimeSlot = slot
			for _, s := range shifts {
				if s.TimeSlot == slot {
					sg.Shifts = append(sg.Shifts, s)
				}
			}
			if len(sg.Shifts) == 0 {
				continue
			}
			sort.Slice(sg.Shifts, func(i, j int) bool {
				return sg.Shifts[i].Department < sg.Shifts[j].Department
			})
			group.Slots = append(group.Slots, sg)
		}
		out = append(out, group)
	}
	return out
}

// Unassigned returns the shifts that have no assignee, in catalog order.
func (r *Result) Unassigned() []domain.Shift {
	var out []domain.Shift
	for _, s := range r.Shifts {
		if !s.Assigned() {
			out = append(out, s)
		}
	}
	return out
}

// AssignShifts runs one greedy assignment pass over the catalog.
//
// Shifts are processed hardest-to-fill first: the order is fixed up front by
// ascending eligible-employee count and not recomputed as assignments land.
// Within a shift the least-loaded eligible employee for that day wins;
// ties fall to registry insertion order. An assignment is never revisited, so
// the pass is single-sweep and deterministic. Unfillable shifts are a normal
// outcome reported through the result, not an error.
//
// Load counters and any assignments from a previous pass are reset first, so
// calling AssignShifts again over unchanged inputs reproduces the same result.
func (b *Builder) AssignShifts() (*Result, error) {
	loads := make(map[string]map[int]int, b.registry.Len())
	for _, e := range b.registry.List() {
		perDay := make(map[int]int, 7)
		for day := 0; day <= 6; day++ {
			perDay[day] = 0
		}
		loads[e.EmployeeID] = perDay
	}

	configured := make(map[string]bool, len(b.slots))
	for _, slot := range b.slots {
		configured[slot] = true
	}

	eligible := make([][]*domain.Employee, len(b.shifts))
	for i, s := range b.shifts {
		if s.Day < 0 || s.Day > 6 {
			return nil, fmt.Errorf("shift %s day %d: %w", s.Department, s.Day, ErrInvalidDay)
		}
		if !configured[s.TimeSlot] {
			return nil, fmt.Errorf("shift %s/%s/%s: %w", domain.DayName(s.Day), s.TimeSlot, s.Department, ErrInvalidTimeSlot)
		}
		s.AssignedEmployeeID = nil
		eligible[i] = EligibleEmployees(s, b.registry)
	}

	// Stable sort keeps catalog order among equally hard shifts.
	order := make([]int, len(b.shifts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(eligible[order[i]]) < len(eligible[order[j]])
	})

	for _, idx := range order {
		candidates := eligible[idx]
		if len(candidates) == 0 {
			continue
		}
		shift := b.shifts[idx]
		// Candidates are in registry order; strict less-than keeps the
		// earliest-registered employee on equal load.
		selected := candidates[0]
		for _, c := range candidates[1:] {
			if loads[c.EmployeeID][shift.Day] < loads[selected.EmployeeID][shift.Day] {
				selected = c
			}
		}
		id := selected.EmployeeID
		shift.AssignedEmployeeID = &id
		loads[id][shift.Day]++
	}

	res := &Result{
		Shifts: make([]domain.Shift, len(b.shifts)),
		slots:  b.TimeSlots(),
	}
	for i, s := range b.shifts {
		res.Shifts[i] = *s
		if !s.Assigned() {
			res.UnassignedCount++
		}
	}
	return res, nil
}
