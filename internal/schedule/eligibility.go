package schedule

import "shiftbuilder/internal/domain"

// EligibleEmployees returns every registered employee who can cover the
// shift: capable in its department and available at its (day, time slot).
// The result preserves registry insertion order and the query has no side
// effects, so repeated calls over an unchanged registry are stable.
func EligibleEmployees(s *domain.Shift, r *Registry) []*domain.Employee {
	var eligible []*domain.Employee
	for _, e := range r.order {
		if e.CanWork(s.Department) && e.IsAvailable(s.Day, s.TimeSlot) {
			eligible = append(eligible, e)
		}
	}
	return eligible
}
