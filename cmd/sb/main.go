package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shiftbuilder/internal/app"
	"shiftbuilder/internal/config"
	"shiftbuilder/internal/domain"
	"shiftbuilder/internal/report"
	"shiftbuilder/internal/roster"
	"shiftbuilder/internal/schedule"
	"shiftbuilder/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "sb",
	Short: "ShiftBuilder CLI",
	Long: `ShiftBuilder assigns employees to weekly work shifts.

It crosses requested departments, days, and configured time slots into a shift
catalog, then fills the catalog with a greedy pass: hardest-to-staff shifts
first, least-loaded eligible employee per day wins, registry order breaks ties.
Shifts nobody can cover stay unassigned and are reported, never errored.

Rosters are JSON documents (see 'sb roster show'); scheduling parameters come
from shiftbuilder.yml or flags.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("SHIFTBUILDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("config", "c", "shiftbuilder.yml", "scheduling config file")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func registerCommands() {
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(rosterCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(serveCmd())
}

func configCmd() *cobra.Command {
	cfg := &cobra.Command{Use: "config", Short: "Manage scheduling config"}
	cfg.AddCommand(configInitCmd())
	cfg.AddCommand(configShowCmd())
	return cfg
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default shiftbuilder.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("config")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists; use --force to overwrite", path)
			}
			if err := os.WriteFile(path, []byte(config.GenerateDefault()), 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing file")
	return cmd
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective scheduling config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ResolveConfig(viper.GetString("config"), app.Overrides{})
			if err != nil {
				return err
			}
			return printJSON(cfg)
		},
	}
	return cmd
}

func rosterCmd() *cobra.Command {
	r := &cobra.Command{Use: "roster", Short: "Inspect roster files"}
	r.AddCommand(rosterShowCmd())
	return r
}

func rosterShowCmd() *cobra.Command {
	var rosterPath string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the employees in a roster file",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := roster.LoadFile(rosterPath)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(employees)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Departments", "Available Days"})
			for _, e := range employees {
				tw.AppendRow(table.Row{e.EmployeeID, e.Name, strings.Join(e.Departments, ", "), availableDays(e)})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "", "path to roster JSON")
	_ = cmd.MarkFlagRequired("roster")
	return cmd
}

func scheduleCmd() *cobra.Command {
	s := &cobra.Command{
		Use:   "schedule",
		Short: "Build and inspect schedules",
	}
	s.AddCommand(scheduleBuildCmd())
	s.AddCommand(scheduleEligibleCmd())
	return s
}

func scheduleBuildCmd() *cobra.Command {
	var rosterPath, outPath string
	var departments, slots []string
	var days []int
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate shifts and assign employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ResolveConfig(viper.GetString("config"), app.Overrides{
				TimeSlots:   slots,
				Departments: departments,
				Days:        days,
			})
			if err != nil {
				return err
			}
			reg, err := loadRegistry(rosterPath)
			if err != nil {
				return err
			}
			b := schedule.New(reg)
			if err := b.SetTimeSlots(cfg.Schedule.TimeSlots); err != nil {
				return err
			}
			if err := b.GenerateShifts(cfg.Schedule.Departments, cfg.Days(), true); err != nil {
				return err
			}
			res, err := b.AssignShifts()
			if err != nil {
				return err
			}
			if outPath != "" {
				if err := roster.WriteFile(outPath, roster.BuildExport(reg.List(), res)); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Schedule exported to %s\n", outPath)
			}
			if viper.GetBool("json") {
				return printJSON(roster.BuildExport(reg.List(), res))
			}
			report.Write(os.Stdout, res, reg)
			return nil
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "", "path to roster JSON")
	cmd.Flags().StringVar(&outPath, "out", "", "write schedule export JSON to this path")
	cmd.Flags().StringSliceVar(&departments, "department", nil, "departments to staff (overrides config)")
	cmd.Flags().StringSliceVar(&slots, "slot", nil, "time slots (overrides config)")
	cmd.Flags().IntSliceVar(&days, "day", nil, "days 0-6, Monday first (overrides config)")
	_ = cmd.MarkFlagRequired("roster")
	return cmd
}

func scheduleEligibleCmd() *cobra.Command {
	var rosterPath, department, slot string
	var day int
	cmd := &cobra.Command{
		Use:   "eligible",
		Short: "List employees eligible for one shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ResolveConfig(viper.GetString("config"), app.Overrides{})
			if err != nil {
				return err
			}
			if day < 0 || day > 6 {
				return fmt.Errorf("day %d: %w", day, schedule.ErrInvalidDay)
			}
			if !contains(cfg.Schedule.TimeSlots, slot) {
				return fmt.Errorf("slot %s: %w", slot, schedule.ErrInvalidTimeSlot)
			}
			reg, err := loadRegistry(rosterPath)
			if err != nil {
				return err
			}
			shift := &domain.Shift{Department: department, Day: day, TimeSlot: slot}
			eligible := schedule.EligibleEmployees(shift, reg)
			if viper.GetBool("json") {
				return printJSON(eligible)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Departments"})
			for _, e := range eligible {
				tw.AppendRow(table.Row{e.EmployeeID, e.Name, strings.Join(e.Departments, ", ")})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "", "path to roster JSON")
	cmd.Flags().StringVar(&department, "department", "", "shift department")
	cmd.Flags().IntVar(&day, "day", 0, "shift day 0-6, Monday first")
	cmd.Flags().StringVar(&slot, "slot", "", "shift time slot")
	_ = cmd.MarkFlagRequired("roster")
	_ = cmd.MarkFlagRequired("department")
	_ = cmd.MarkFlagRequired("slot")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr, basePath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(viper.GetString("config"))
			if err != nil {
				return err
			}
			if cfg == nil {
				cfg = config.Default()
			}
			handler, err := server.New(server.Config{Defaults: cfg, BasePath: basePath})
			if err != nil {
				return err
			}
			srv := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			fmt.Printf("Serving ShiftBuilder API on http://%s%s (OpenAPI at /openapi.json, docs at /docs)\n", addr, basePath)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "/v0", "API base path")
	return cmd
}

// --- helpers ---

// loadRegistry builds a registry from a roster file. Duplicate employee ids
// are skipped with a warning so one bad record does not sink the run.
func loadRegistry(path string) (*schedule.Registry, error) {
	employees, err := roster.LoadFile(path)
	if err != nil {
		return nil, err
	}
	reg := schedule.NewRegistry()
	for _, e := range employees {
		if err := reg.Add(e); err != nil {
			if errors.Is(err, schedule.ErrDuplicateEmployee) {
				fmt.Fprintf(os.Stderr, "warning: skipping duplicate employee id %s\n", e.EmployeeID)
				continue
			}
			return nil, err
		}
	}
	return reg, nil
}

func availableDays(e *domain.Employee) string {
	var days []int
	for day := range e.Availability {
		if len(e.Availability[day]) > 0 {
			days = append(days, day)
		}
	}
	sort.Ints(days)
	names := make([]string, 0, len(days))
	for _, day := range days {
		names = append(names, domain.DayName(day))
	}
	return strings.Join(names, ", ")
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
