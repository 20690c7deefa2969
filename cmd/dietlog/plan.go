package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

var planFile string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the active weekly diet plan",
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Activate a diet plan read from JSON, replacing the current one",
	Long: `Create reads a diet plan as JSON from --file ("-" for stdin). dayOfWeek
runs from 0 (Sunday) to 6 (Saturday).

Example document:
  {"name": "Settimana leggera", "startDate": "2026-03-02", "endDate": "2026-03-08",
   "meals": [{"type": "lunch", "dayOfWeek": 1,
              "items": [{"ingredient": "farro", "amount": "80g"}]}]}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var plan types.DietPlan
		if err := readJSONFile(cmd, planFile, &plan); err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			created, err := a.Planner.Create(plan)
			if err != nil {
				return validation(err)
			}
			return emit(cmd, created, func(w io.Writer) {
				fmt.Fprintf(w, "activated plan %q (%d)\n", created.Name, created.ID)
			})
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			plan, ok := a.Planner.Active()
			if !ok {
				return userError(types.ErrNoActivePlan)
			}
			return emit(cmd, plan, func(w io.Writer) {
				fmt.Fprintf(w, "%s", plan.Name)
				if plan.StartDate != "" || plan.EndDate != "" {
					fmt.Fprintf(w, " (%s to %s)", plan.StartDate, plan.EndDate)
				}
				fmt.Fprintln(w)
				printPlanned(w, plan.Meals, true)
			})
		})
	},
}

var planTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List the meals planned for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day := now().Weekday()
		return withApp(func(a *app.App) error {
			planned, err := a.Planner.PlannedFor(day)
			if err != nil {
				return userError(err)
			}
			if planned == nil {
				planned = []types.PlannedMeal{}
			}
			return emit(cmd, planned, func(w io.Writer) {
				if len(planned) == 0 {
					fmt.Fprintf(w, "nothing planned for %s\n", day)
					return
				}
				printPlanned(w, planned, false)
			})
		})
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Deactivate the current plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			if !a.Planner.Delete() {
				return userError(types.ErrNoActivePlan)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "plan deleted")
			return nil
		})
	},
}

func init() {
	planCreateCmd.Flags().StringVarP(&planFile, "file", "f", "-", "JSON plan file")

	planCmd.AddCommand(planCreateCmd, planShowCmd, planTodayCmd, planDeleteCmd)
}

func printPlanned(w io.Writer, meals []types.PlannedMeal, withDay bool) {
	for i, m := range meals {
		items := make([]string, 0, len(m.Items))
		for _, it := range m.Items {
			if it.Amount == "" {
				items = append(items, it.Ingredient)
				continue
			}
			items = append(items, it.Ingredient+" "+it.Amount)
		}
		if withDay {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.DayOfWeek, m.Type, strings.Join(items, ", "))
			continue
		}
		fmt.Fprintf(w, "%d.\t%s\t%s\n", i+1, m.Type, strings.Join(items, ", "))
	}
}
