package models

import (
	"math"
	"time"
)

type Day string

type MealTime string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"

	Breakfast      MealTime = "breakfast"
	MidMorning     MealTime = "mid_morning"
	Lunch          MealTime = "lunch"
	AfternoonSnack MealTime = "afternoon_snack"
	Dinner         MealTime = "dinner"
)

var (
	DaysOfWeek = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	MealTimes  = []MealTime{Breakfast, MidMorning, Lunch, AfternoonSnack, Dinner}
)

// CalorieDistribution is the share of the daily target assigned to each meal.
var CalorieDistribution = map[MealTime]float64{
	Breakfast:      0.30,
	MidMorning:     0.10,
	Lunch:          0.30,
	AfternoonSnack: 0.20,
	Dinner:         0.10,
}

const DefaultDailyCalorieTarget = 1500

func (d Day) Valid() bool {
	for _, day := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

func (m MealTime) Valid() bool {
	_, ok := CalorieDistribution[m]
	return ok
}

// MealTarget is the meal's absolute calorie target for a daily target.
func MealTarget(meal MealTime, dailyTarget int) int {
	return int(math.Round(float64(dailyTarget) * CalorieDistribution[meal]))
}

// PlanEntry is one placed instance of a food. ID identifies the instance,
// FoodID references the catalog.
type PlanEntry struct {
	ID     string `json:"id"`
	FoodID string `json:"food_id"`
}

type DayPlan map[MealTime][]PlanEntry

type WeeklyPlan map[Day]DayPlan

// DailyUsage counts portions consumed per food group name.
type DailyUsage map[string]int

// GeneratedWeek is a generator run as written to export sinks and archives.
type GeneratedWeek struct {
	ID          string     `json:"id"`
	GeneratedAt time.Time  `json:"generated_at"`
	Seed        int64      `json:"seed"`
	DailyTarget int        `json:"daily_target"`
	Plan        WeeklyPlan `json:"plan"`
}
