package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/spf13/cobra"
)

var (
	showDay      string
	showPlanFile string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the plan with per-day calorie and portion summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		days := models.DaysOfWeek
		if showDay != "" {
			day := models.Day(strings.ToLower(showDay))
			if !day.Valid() {
				return fmt.Errorf("unknown day %q", showDay)
			}
			days = []models.Day{day}
		}

		repo, closeRepo, err := openPlanRepository(cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		cat, err := loadCatalog(cmd.Context(), cfg, repo)
		if err != nil {
			return err
		}
		week, err := currentPlan(cmd.Context(), cfg, cat, repo, showPlanFile)
		if err != nil {
			return err
		}

		for _, day := range days {
			printDay(os.Stdout, cat, day, week[day], cfg.DailyTarget)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showDay, "day", "", "Only show this day (monday..sunday)")
	showCmd.Flags().StringVar(&showPlanFile, "plan-file", "", "Read the plan from a JSON file")
}

func printDay(w io.Writer, cat *catalog.Catalog, day models.Day, dp models.DayPlan, dailyTarget int) {
	summary := plan.Summarize(cat, dp, dailyTarget)

	fmt.Fprintln(w, strings.ToUpper(string(day)))
	for i, meal := range models.MealTimes {
		ms := summary.Meals[i]
		fmt.Fprintf(w, "  %s (%d/%d kcal)\n", meal, ms.Calories, ms.Target)
		for _, entry := range dp[meal] {
			food, ok := cat.Food(entry.FoodID)
			if !ok {
				fmt.Fprintf(w, "    - unknown food %s\n", entry.FoodID)
				continue
			}
			fmt.Fprintf(w, "    - %s, %s (%d kcal)\n", food.Name, food.Portion, food.Calories)
		}
	}
	fmt.Fprintf(w, "  Total: %d / %d kcal (%d%%) %s\n", summary.Calories, summary.DailyTarget, summary.Percent, summary.Status)
	fmt.Fprintf(w, "  Protein %.1f g, carbs %.1f g, fat %.1f g\n", summary.Macros.Protein, summary.Macros.Carbs, summary.Macros.Fat)

	portions := make([]string, 0, len(summary.Portions))
	for _, p := range summary.Portions {
		s := fmt.Sprintf("%s %d/%s", p.Group, p.Used, p.Max)
		if p.Over > 0 {
			s += fmt.Sprintf(" (+%d)", p.Over)
		}
		portions = append(portions, s)
	}
	fmt.Fprintf(w, "  Portions: %s\n\n", strings.Join(portions, ", "))
}
