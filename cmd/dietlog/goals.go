package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/internal/diary"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

var goalFlags types.NutritionGoals

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show and set daily nutrition goals",
}

var goalsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the daily goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			g := a.Goals.Get()
			return emit(cmd, g, func(w io.Writer) { printGoals(w, g) })
		})
	},
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change daily goals; unset flags keep their value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			g := a.Goals.Get()
			f := cmd.Flags()
			if f.Changed("calories") {
				g.Calories = goalFlags.Calories
			}
			if f.Changed("protein") {
				g.Protein = goalFlags.Protein
			}
			if f.Changed("carbs") {
				g.Carbs = goalFlags.Carbs
			}
			if f.Changed("fat") {
				g.Fat = goalFlags.Fat
			}
			if err := a.Goals.Set(g); err != nil {
				return validation(err)
			}
			return emit(cmd, g, func(w io.Writer) { printGoals(w, g) })
		})
	},
}

type progressReport struct {
	Goals    types.NutritionGoals `json:"goals"`
	Intake   types.NutritionGoals `json:"intake"`
	Progress types.Progress       `json:"progress"`
}

var goalsProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show today's estimated intake against the goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			goals := a.Goals.Get()
			intake := a.Estimator.Estimate(diary.MealsOn(a.Journal.Meals(), now()))
			r := progressReport{Goals: goals, Intake: intake, Progress: diary.Progress(intake, goals)}
			return emit(cmd, r, func(w io.Writer) {
				fmt.Fprintln(w, "\tINTAKE\tGOAL\tPROGRESS")
				fmt.Fprintf(w, "Calories\t%d\t%d kcal\t%d%%\n", intake.Calories, goals.Calories, r.Progress.Calories)
				fmt.Fprintf(w, "Protein\t%d\t%d g\t%d%%\n", intake.Protein, goals.Protein, r.Progress.Protein)
				fmt.Fprintf(w, "Carbs\t%d\t%d g\t%d%%\n", intake.Carbs, goals.Carbs, r.Progress.Carbs)
				fmt.Fprintf(w, "Fat\t%d\t%d g\t%d%%\n", intake.Fat, goals.Fat, r.Progress.Fat)
			})
		})
	},
}

func init() {
	f := goalsSetCmd.Flags()
	f.IntVar(&goalFlags.Calories, "calories", 0, "daily calories (kcal)")
	f.IntVar(&goalFlags.Protein, "protein", 0, "daily protein (g)")
	f.IntVar(&goalFlags.Carbs, "carbs", 0, "daily carbohydrates (g)")
	f.IntVar(&goalFlags.Fat, "fat", 0, "daily fat (g)")

	goalsCmd.AddCommand(goalsShowCmd, goalsSetCmd, goalsProgressCmd)
}

func printGoals(w io.Writer, g types.NutritionGoals) {
	fmt.Fprintf(w, "Calories\t%d kcal\n", g.Calories)
	fmt.Fprintf(w, "Protein\t%d g\n", g.Protein)
	fmt.Fprintf(w, "Carbs\t%d g\n", g.Carbs)
	fmt.Fprintf(w, "Fat\t%d g\n", g.Fat)
}
