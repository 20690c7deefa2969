package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/internal/diary"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// timeLayout is the layout accepted by --at.
const timeLayout = "2006-01-02 15:04"

// now is the CLI clock.
var now = time.Now

var mealFlags struct {
	mealType    string
	ingredients string
	at          string
}

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review eaten meals",
}

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	Long: `Add logs a meal with comma-separated ingredients. Without --type the
meal type is suggested from the time: breakfast before 11:00, lunch before
15:00, snack before 19:00, dinner afterwards.

Example:
  dietlog meal add --ingredients "pane, latte, miele"
  dietlog meal add --type dinner --ingredients "salmone, broccoli" --at "2026-03-02 20:15"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := mealTime(mealFlags.at)
		if err != nil {
			return userError(err)
		}
		mealType := types.SuggestMealType(at)
		if mealFlags.mealType != "" {
			if mealType, err = types.ParseMealType(mealFlags.mealType); err != nil {
				return userError(fmt.Errorf("%w: %q", err, mealFlags.mealType))
			}
		}
		return withApp(func(a *app.App) error {
			meal, err := a.Journal.Add(diary.QuickMeal(a.Journal.NextID(at), mealType, mealFlags.ingredients, at))
			if err != nil {
				return validation(err)
			}
			return emit(cmd, meal, func(w io.Writer) {
				fmt.Fprintf(w, "logged %s %d\n", meal.Type, meal.ID)
			})
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			meals := a.Journal.Meals()
			return emit(cmd, meals, func(w io.Writer) {
				if len(meals) == 0 {
					fmt.Fprintln(w, "no meals logged")
					return
				}
				fmt.Fprintln(w, "ID\tWHEN\tTYPE\tINGREDIENTS")
				for _, m := range meals {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.Date.Local().Format(timeLayout), m.Type, strings.Join(m.Ingredients, ", "))
				}
			})
		})
	},
}

var mealClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every logged meal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			a.Journal.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "meal log cleared")
			return nil
		})
	},
}

var mealCompleteCmd = &cobra.Command{
	Use:   "complete <n>",
	Short: "Log the n-th meal planned for today as eaten",
	Long: `Complete logs the n-th (1-based) meal of today's plan, as listed by
"dietlog plan today", with its type and ingredients.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return userError(fmt.Errorf("invalid planned meal number %q", args[0]))
		}
		at := now()
		return withApp(func(a *app.App) error {
			planned, err := a.Planner.PlannedFor(at.Weekday())
			if err != nil {
				return userError(err)
			}
			if n > len(planned) {
				return userError(fmt.Errorf("only %d meals planned for %s", len(planned), at.Weekday()))
			}
			meal, err := diary.CompletePlanned(a.Journal, planned[n-1], at)
			if err != nil {
				return validation(err)
			}
			return emit(cmd, meal, func(w io.Writer) {
				fmt.Fprintf(w, "logged %s %d\n", meal.Type, meal.ID)
			})
		})
	},
}

func init() {
	mealAddCmd.Flags().StringVarP(&mealFlags.mealType, "type", "t", "", "breakfast, lunch, snack or dinner (default: suggested from time)")
	mealAddCmd.Flags().StringVarP(&mealFlags.ingredients, "ingredients", "i", "", "comma-separated ingredients (required)")
	mealAddCmd.Flags().StringVar(&mealFlags.at, "at", "", "when the meal was eaten, \"YYYY-MM-DD HH:MM\" (default: now)")

	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealClearCmd, mealCompleteCmd)
}

func mealTime(s string) (time.Time, error) {
	if s == "" {
		return now(), nil
	}
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at must be %q: %w", timeLayout, err)
	}
	return t, nil
}
