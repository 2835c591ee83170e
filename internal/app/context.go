package app

import (
	"shiftbuilder/internal/config"
)

// Overrides carries scheduling parameters given on the command line or in an
// API request; non-empty fields win over the config file.
type Overrides struct {
	TimeSlots   []string
	Departments []string
	Days        []int
}

// ResolveConfig loads the scheduling config for a run: the file at path if it
// exists, the built-in defaults otherwise, with overrides applied on top. The
// merged config is validated before it reaches the core.
func ResolveConfig(path string, ov Overrides) (*config.Config, error) {
	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if len(ov.TimeSlots) > 0 {
		cfg.Schedule.TimeSlots = append([]string(nil), ov.TimeSlots...)
	}
	if len(ov.Departments) > 0 {
		cfg.Schedule.Departments = append([]string(nil), ov.Departments...)
	}
	if len(ov.Days) > 0 {
		cfg.Schedule.Days = append([]int(nil), ov.Days...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
