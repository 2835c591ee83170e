package schedule_test

import (
	"errors"
	"testing"

	"shiftbuilder/internal/schedule"
)

func TestCatalogCardinalityAndUniqueness(t *testing.T) {
	b := newBuilder(t)
	departments := []string{"Sales", "Customer Service", "Inventory"}
	days := []int{0, 1, 2, 3, 4}
	if err := b.GenerateShifts(departments, days, true); err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := len(departments) * len(days) * 3 // default slots
	if got := len(b.Shifts()); got != want {
		t.Fatalf("expected %d shifts, got %d", want, got)
	}
	type triple struct {
		department string
		day        int
		slot       string
	}
	seen := map[triple]bool{}
	for _, s := range b.Shifts() {
		key := triple{s.Department, s.Day, s.TimeSlot}
		if seen[key] {
			t.Fatalf("duplicate shift triple %s/%d/%s", s.Department, s.Day, s.TimeSlot)
		}
		seen[key] = true
	}
}

func TestGenerateAgainNeverDuplicates(t *testing.T) {
	b := newBuilder(t)
	if err := b.GenerateShifts([]string{"Sales"}, []int{0, 1}, true); err != nil {
		t.Fatalf("generate: %v", err)
	}
	before := len(b.Shifts())

	// Same parameters with overwrite replace in place.
	if err := b.GenerateShifts([]string{"Sales"}, []int{0, 1}, true); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if got := len(b.Shifts()); got != before {
		t.Fatalf("overwrite regeneration changed catalog size: %d -> %d", before, got)
	}

	// Overlapping parameters without overwrite only append the new triples.
	if err := b.GenerateShifts([]string{"Sales"}, []int{1, 2}, false); err != nil {
		t.Fatalf("append: %v", err)
	}
	want := before + 3 // day 2 only, three default slots
	if got := len(b.Shifts()); got != want {
		t.Fatalf("expected %d shifts after append, got %d", want, got)
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	b := newBuilder(t)
	if err := b.GenerateShifts([]string{"Sales"}, []int{7}, true); !errors.Is(err, schedule.ErrInvalidDay) {
		t.Fatalf("day 7: expected ErrInvalidDay, got %v", err)
	}
	if err := b.GenerateShifts([]string{"Sales"}, []int{-1}, true); !errors.Is(err, schedule.ErrInvalidDay) {
		t.Fatalf("day -1: expected ErrInvalidDay, got %v", err)
	}
	if err := b.GenerateShifts(nil, []int{0}, true); !errors.Is(err, schedule.ErrNoDepartments) {
		t.Fatalf("expected ErrNoDepartments, got %v", err)
	}
	// Repeated departments in one request still produce unique triples.
	if err := b.GenerateShifts([]string{"Sales", "Sales"}, []int{0}, true); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := len(b.Shifts()); got != 3 {
		t.Fatalf("expected 3 shifts for one department/day, got %d", got)
	}
}

func TestTimeSlotsFreezeAfterGeneration(t *testing.T) {
	b := newBuilder(t)
	if err := b.SetTimeSlots([]string{"Day", "Night"}); err != nil {
		t.Fatalf("set slots: %v", err)
	}
	if err := b.GenerateShifts([]string{"Sales"}, []int{0}, true); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := len(b.Shifts()); got != 2 {
		t.Fatalf("expected 2 shifts, got %d", got)
	}
	if err := b.SetTimeSlots([]string{"Morning"}); !errors.Is(err, schedule.ErrSlotsFrozen) {
		t.Fatalf("expected ErrSlotsFrozen, got %v", err)
	}
}

func TestSetTimeSlotsRejectsBadSequences(t *testing.T) {
	b := newBuilder(t)
	if err := b.SetTimeSlots(nil); !errors.Is(err, schedule.ErrNoTimeSlots) {
		t.Fatalf("expected ErrNoTimeSlots, got %v", err)
	}
	if err := b.SetTimeSlots([]string{"Morning", "Morning"}); !errors.Is(err, schedule.ErrInvalidTimeSlot) {
		t.Fatalf("expected ErrInvalidTimeSlot for repeated slot, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	reg := schedule.NewRegistry()
	a := newEmployee("E1", "One", []string{"Sales"}, nil)
	if err := reg.Add(a); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := reg.Add(newEmployee("E1", "Dup", nil, nil)); !errors.Is(err, schedule.ErrDuplicateEmployee) {
		t.Fatalf("expected ErrDuplicateEmployee, got %v", err)
	}
	if _, err := reg.Get("missing"); !errors.Is(err, schedule.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if err := reg.Add(newEmployee("E2", "Two", nil, nil)); err != nil {
		t.Fatalf("add: %v", err)
	}
	list := reg.List()
	if len(list) != 2 || list[0].EmployeeID != "E1" || list[1].EmployeeID != "E2" {
		t.Fatalf("expected insertion order [E1 E2], got %v", list)
	}
}
