// Package roster is the JSON boundary around the scheduling core. Roster
// documents carry day indices as string keys ("0".."6"); the conversion to
// integer days, and the rejection of out-of-range keys, happens here so the
// core only ever sees validated input.
package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"shiftbuilder/internal/domain"
	"shiftbuilder/internal/schedule"
)

// Record is the wire shape of one employee in a roster document.
type Record struct {
	Name         string              `json:"name"`
	EmployeeID   string              `json:"employee_id"`
	Departments  []string            `json:"departments"`
	Availability map[string][]string `json:"availability"`
}

// Document is the wire shape of a roster file.
type Document struct {
	Employees []Record `json:"employees"`
}

// ShiftRecord is the wire shape of one shift in a schedule export.
type ShiftRecord struct {
	Department         string  `json:"department"`
	Day                int     `json:"day"`
	TimeSlot           string  `json:"time_slot"`
	AssignedEmployeeID *string `json:"assigned_employee_id"`
}

// Export is the wire shape of a full schedule export: the input employees
// echoed back, every shift with its assignee or null, and the derived
// unassigned count.
type Export struct {
	Employees       []Record      `json:"employees"`
	Shifts          []ShiftRecord `json:"shifts"`
	UnassignedCount int           `json:"unassigned_count"`
}

// Load decodes a roster document and converts records into core employees.
// Records without an employee_id get a deterministic id derived from the
// name, so reloading the same document yields the same ids.
func Load(r io.Reader) ([]*domain.Employee, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	employees := make([]*domain.Employee, 0, len(doc.Employees))
	for _, rec := range doc.Employees {
		e, err := rec.Employee()
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// LoadFile reads a roster document from a file.
func LoadFile(path string) ([]*domain.Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Employee converts a wire record into a core employee, validating day keys.
func (rec Record) Employee() (*domain.Employee, error) {
	id := rec.EmployeeID
	if id == "" {
		if rec.Name == "" {
			return nil, fmt.Errorf("roster record has neither employee_id nor name")
		}
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte("employee|"+rec.Name)).String()
	}
	e := &domain.Employee{
		EmployeeID:   id,
		Name:         rec.Name,
		Departments:  append([]string(nil), rec.Departments...),
		Availability: map[int][]string{},
	}
	for key, slots := range rec.Availability {
		day, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("employee %s: availability day %q: %w", id, key, schedule.ErrInvalidDay)
		}
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("employee %s: availability day %d: %w", id, day, schedule.ErrInvalidDay)
		}
		e.Availability[day] = append([]string(nil), slots...)
	}
	return e, nil
}

func toRecord(e *domain.Employee) Record {
	rec := Record{
		Name:         e.Name,
		EmployeeID:   e.EmployeeID,
		Departments:  append([]string(nil), e.Departments...),
		Availability: map[string][]string{},
	}
	for day, slots := range e.Availability {
		rec.Availability[strconv.Itoa(day)] = append([]string(nil), slots...)
	}
	return rec
}

// BuildExport assembles the export document from registered employees and an
// assignment result.
func BuildExport(employees []*domain.Employee, res *schedule.Result) Export {
	ex := Export{
		Employees:       make([]Record, 0, len(employees)),
		Shifts:          make([]ShiftRecord, 0, len(res.Shifts)),
		UnassignedCount: res.UnassignedCount,
	}
	for _, e := range employees {
		ex.Employees = append(ex.Employees, toRecord(e))
	}
	for _, s := range res.Shifts {
		ex.Shifts = append(ex.Shifts, ShiftRecord{
			Department:         s.Department,
			Day:                s.Day,
			TimeSlot:           s.TimeSlot,
			AssignedEmployeeID: s.AssignedEmployeeID,
		})
	}
	return ex
}

// Write encodes an export document with two-space indentation.
func Write(w io.Writer, ex Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ex)
}

// WriteFile writes an export document to a file.
func WriteFile(path string, ex Export) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, ex); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
