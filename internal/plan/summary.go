package plan

import (
	"math"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
)

const (
	StatusLow      = "low"
	StatusOnTarget = "on_target"
	StatusHigh     = "high"
)

type MealSummary struct {
	Meal     models.MealTime `json:"meal"`
	Calories int             `json:"calories"`
	Target   int             `json:"target"`
	Percent  int             `json:"percent"`
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type PortionStatus struct {
	Group string     `json:"group"`
	Used  int        `json:"used"`
	Max   models.Cap `json:"max"`
	Over  int        `json:"over"`
	AtMax bool       `json:"at_max"`
}

type DaySummary struct {
	Meals       []MealSummary   `json:"meals"`
	Calories    int             `json:"calories"`
	DailyTarget int             `json:"daily_target"`
	Percent     int             `json:"percent"`
	Status      string          `json:"status"`
	Macros      Macros          `json:"macros"`
	Portions    []PortionStatus `json:"portions"`
}

// Summarize totals calories and macros for a day against the daily target
// and reports portion use per group.
func Summarize(cat *catalog.Catalog, day models.DayPlan, dailyTarget int) DaySummary {
	s := DaySummary{
		Meals:       make([]MealSummary, 0, len(models.MealTimes)),
		DailyTarget: dailyTarget,
	}

	for _, meal := range models.MealTimes {
		ms := MealSummary{Meal: meal, Target: models.MealTarget(meal, dailyTarget)}
		for _, entry := range day[meal] {
			food, ok := cat.Food(entry.FoodID)
			if !ok {
				continue
			}
			ms.Calories += food.Calories
			s.Macros.Protein += food.Protein
			s.Macros.Carbs += food.Carbs
			s.Macros.Fat += food.Fat
		}
		ms.Percent = percent(ms.Calories, ms.Target)
		s.Calories += ms.Calories
		s.Meals = append(s.Meals, ms)
	}

	s.Percent = percent(s.Calories, dailyTarget)
	switch {
	case s.Percent < 90:
		s.Status = StatusLow
	case s.Percent > 110:
		s.Status = StatusHigh
	default:
		s.Status = StatusOnTarget
	}

	usage := ComputeDailyUsage(cat, day)
	for _, g := range cat.Groups() {
		used := usage[g.Name]
		limit, capped := g.MaxDaily.Limit()
		s.Portions = append(s.Portions, PortionStatus{
			Group: g.Name,
			Used:  used,
			Max:   g.MaxDaily,
			Over:  g.MaxDaily.Over(used),
			AtMax: capped && used == limit,
		})
	}

	return s
}

func percent(value, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(float64(value) / float64(target) * 100))
}
