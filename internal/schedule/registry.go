package schedule

import (
	"fmt"

	"shiftbuilder/internal/domain"
)

// Registry holds the employees known to one scheduling run. Insertion order
// is preserved and drives assignment tie-breaking, so it is part of the
// observable behavior, not an implementation detail.
type Registry struct {
	order []*domain.Employee
	byID  map[string]*domain.Employee
}

// NewRegistry returns an empty employee registry.
func NewRegistry() *Registry {
	return &Registry{byID: map[string]*domain.Employee{}}
}

// Add registers an employee. The id must be unique within the registry.
func (r *Registry) Add(e *domain.Employee) error {
	if e == nil || e.EmployeeID == "" {
		return fmt.Errorf("employee id is required")
	}
	if _, ok := r.byID[e.EmployeeID]; ok {
		return fmt.Errorf("employee %s: %w", e.EmployeeID, ErrDuplicateEmployee)
	}
	r.byID[e.EmployeeID] = e
	r.order = append(r.order, e)
	return nil
}

// Get returns the employee with the given id.
func (r *Registry) Get(id string) (*domain.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("employee %s: %w", id, ErrEmployeeNotFound)
	}
	return e, nil
}

// List returns all employees in insertion order.
func (r *Registry) List() []*domain.Employee {
	out := make([]*domain.Employee, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered employees.
func (r *Registry) Len() int {
	return len(r.order)
}
