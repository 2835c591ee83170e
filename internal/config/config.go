package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config models shiftbuilder.yml: the scheduling parameters for one period.
type Config struct {
	Schedule struct {
		TimeSlots   []string `yaml:"time_slots"`
		Departments []string `yaml:"departments"`
		Days        []int    `yaml:"days"`
	} `yaml:"schedule"`
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if len(c.Schedule.TimeSlots) == 0 {
		return fmt.Errorf("config.schedule.time_slots is required")
	}
	seenSlots := map[string]bool{}
	for _, slot := range c.Schedule.TimeSlots {
		if slot == "" {
			return fmt.Errorf("config.schedule.time_slots contains an empty name")
		}
		if seenSlots[slot] {
			return fmt.Errorf("config.schedule.time_slots repeats %s", slot)
		}
		seenSlots[slot] = true
	}
	if len(c.Schedule.Departments) == 0 {
		return fmt.Errorf("config.schedule.departments is required")
	}
	for _, d := range c.Schedule.Departments {
		if d == "" {
			return fmt.Errorf("config.schedule.departments contains an empty name")
		}
	}
	seenDays := map[int]bool{}
	for _, day := range c.Schedule.Days {
		if day < 0 || day > 6 {
			return fmt.Errorf("config.schedule.days: day %d out of range 0-6", day)
		}
		if seenDays[day] {
			return fmt.Errorf("config.schedule.days repeats %d", day)
		}
		seenDays[day] = true
	}
	return nil
}

// Days returns the configured day list, defaulting to the full week.
func (c *Config) Days() []int {
	if len(c.Schedule.Days) > 0 {
		return append([]int(nil), c.Schedule.Days...)
	}
	return []int{0, 1, 2, 3, 4, 5, 6}
}

// Default returns the default Config.
func Default() *Config {
	var cfg Config
	_ = yaml.Unmarshal([]byte(defaultTemplate), &cfg)
	return &cfg
}

// FromYAML parses and validates config from raw YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

// LoadOptional returns nil,nil if the config file does not exist.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// GenerateDefault returns the default config YAML.
func GenerateDefault() string {
	return defaultTemplate
}

const defaultTemplate = `schedule:
  time_slots: [Morning, Afternoon, Evening]

  departments:
    - Sales
    - Customer Service
    - Inventory

  # 0 = Monday .. 6 = Sunday; omit for the full week
  days: [0, 1, 2, 3, 4]
`
