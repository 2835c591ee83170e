package schedule

import (
	"fmt"

	"shiftbuilder/internal/domain"
)

// DefaultTimeSlots is the slot sequence used when none is configured.
var DefaultTimeSlots = []string{"Morning", "Afternoon", "Evening"}

type shiftKey struct {
	department string
	day        int
	slot       string
}

// Builder owns the shift catalog for one scheduling period and the time slot
// sequence it is generated from. A Builder is not safe for concurrent use;
// independent scheduling runs need independent Builder instances.
type Builder struct {
	registry *Registry
	slots    []string
	shifts   []*domain.Shift
	index    map[shiftKey]int
}

// New returns a Builder over the given registry with the default time slots.
func New(r *Registry) *Builder {
	return &Builder{
		registry: r,
		slots:    append([]string(nil), DefaultTimeSlots...),
		index:    map[shiftKey]int{},
	}
}

// Registry returns the employee registry the builder schedules against.
func (b *Builder) Registry() *Registry {
	return b.registry
}

// SetTimeSlots replaces the configured slot sequence. Slots can only change
// before any shifts are generated, so every shift in a catalog references
// one consistent sequence.
func (b *Builder) SetTimeSlots(slots []string) error {
	if len(b.shifts) > 0 {
		return ErrSlotsFrozen
	}
	if len(slots) == 0 {
		return ErrNoTimeSlots
	}
	seen := map[string]bool{}
	for _, s := range slots {
		if s == "" {
			return fmt.Errorf("empty slot name: %w", ErrInvalidTimeSlot)
		}
		if seen[s] {
			return fmt.Errorf("slot %s repeated: %w", s, ErrInvalidTimeSlot)
		}
		seen[s] = true
	}
	b.slots = append([]string(nil), slots...)
	return nil
}

// TimeSlots returns the configured slot sequence in order.
func (b *Builder) TimeSlots() []string {
	return append([]string(nil), b.slots...)
}

// GenerateShifts produces one unassigned shift per (department, day, slot)
// combination. A triple already in the catalog is replaced (reset to
// unassigned) when overwrite is true and kept untouched otherwise; duplicate
// triples never coexist either way. Shifts with no eligible employee are
// still generated and simply remain unassigned.
func (b *Builder) GenerateShifts(departments []string, days []int, overwrite bool) error {
	if len(departments) == 0 {
		return ErrNoDepartments
	}
	if len(b.slots) == 0 {
		return ErrNoTimeSlots
	}
	for _, day := range days {
		if day < 0 || day > 6 {
			return fmt.Errorf("day %d: %w", day, ErrInvalidDay)
		}
	}
	departments = dedupe(departments)
	for _, day := range days {
		for _, slot := range b.slots {
			for _, department := range departments {
				key := shiftKey{department: department, day: day, slot: slot}
				shift := &domain.Shift{Department: department, Day: day, TimeSlot: slot}
				if i, ok := b.index[key]; ok {
					if overwrite {
						b.shifts[i] = shift
					}
					continue
				}
				b.index[key] = len(b.shifts)
				b.shifts = append(b.shifts, shift)
			}
		}
	}
	return nil
}

// Shifts returns the live catalog in generation order. The engine mutates
// these entries in place when it assigns them.
func (b *Builder) Shifts() []*domain.Shift {
	return b.shifts
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
