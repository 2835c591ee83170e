package domain

// DayNames maps day indices 0-6 (Monday first) to display names.
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName returns the display name for a day index, or an empty string when
// the index is out of range.
func DayName(day int) string {
	if day < 0 || day >= len(DayNames) {
		return ""
	}
	return DayNames[day]
}

// Employee is a worker who can cover shifts in one or more departments.
// Availability maps a day index (0-6, Monday first) to the time slots the
// employee can work that day; a missing day means unavailable all day.
type Employee struct {
	EmployeeID   string           `json:"employee_id"`
	Name         string           `json:"name"`
	Departments  []string         `json:"departments"`
	Availability map[int][]string `json:"availability"`
}

// CanWork reports whether the employee is capable of working in the department.
func (e *Employee) CanWork(department string) bool {
	for _, d := range e.Departments {
		if d == department {
			return true
		}
	}
	return false
}

// IsAvailable reports whether the employee can work the given day and time slot.
func (e *Employee) IsAvailable(day int, timeSlot string) bool {
	for _, slot := range e.Availability[day] {
		if slot == timeSlot {
			return true
		}
	}
	return false
}

// Shift is a single (department, day, time slot) staffing requirement.
// AssignedEmployeeID is nil until the assignment engine fills the shift; it
// references an Employee by id only.
type Shift struct {
	Department         string  `json:"department"`
	Day                int     `json:"day"`
	TimeSlot           string  `json:"time_slot"`
	AssignedEmployeeID *string `json:"assigned_employee_id"`
}

// Assigned reports whether the shift has an assignee.
func (s *Shift) Assigned() bool {
	return s.AssignedEmployeeID != nil
}
