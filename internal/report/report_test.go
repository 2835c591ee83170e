package report_test

import (
	"bytes"
	"strings"
	"testing"

	"shiftbuilder/internal/domain"
	"shiftbuilder/internal/report"
	"shiftbuilder/internal/schedule"
)

func TestWrite(t *testing.T) {
	reg := schedule.NewRegistry()
	if err := reg.Add(&domain.Employee{
		EmployeeID:   "E001",
		Name:         "Alice Smith",
		Departments:  []string{"Sales"},
		Availability: map[int][]string{0: {"Morning"}},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	b := schedule.New(reg)
	if err := b.GenerateShifts([]string{"Sales"}, []int{0}, true); err != nil {
		t.Fatalf("generate: %v", err)
	}
	res, err := b.AssignShifts()
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	var buf bytes.Buffer
	report.Write(&buf, res, reg)
	out := buf.String()

	for _, want := range []string{
		"WEEKLY SHIFT SCHEDULE",
		"Monday",
		"Alice Smith",
		"UNASSIGNED",
		"Total shifts: 3",
		"Assigned shifts: 1",
		"Unassigned shifts: 2",
		"Assignment rate: 33.3%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestWriteEmptySchedule(t *testing.T) {
	b := schedule.New(schedule.NewRegistry())
	res, err := b.AssignShifts()
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	var buf bytes.Buffer
	report.Write(&buf, res, b.Registry())
	if !strings.Contains(buf.String(), "No shifts scheduled") {
		t.Fatalf("empty schedule should say so:\n%s", buf.String())
	}
}
