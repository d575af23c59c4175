// Package plan implements the weekly plan store operations and the daily
// usage accounting over a catalog.
package plan

import (
	"errors"
	"fmt"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/lucsky/cuid"
)

var ErrUnknownSlot = errors.New("unknown plan slot")

// NewEntryID returns a fresh plan entry instance id.
func NewEntryID() string {
	return cuid.New()
}

// EmptyDay returns a day with every meal present and empty.
func EmptyDay() models.DayPlan {
	day := make(models.DayPlan, len(models.MealTimes))
	for _, meal := range models.MealTimes {
		day[meal] = []models.PlanEntry{}
	}
	return day
}

// EmptyWeek returns the canonical zero state: seven days of five empty meals.
func EmptyWeek() models.WeeklyPlan {
	week := make(models.WeeklyPlan, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		week[day] = EmptyDay()
	}
	return week
}

// Normalize returns a well-formed copy of w. Missing days and meals become
// empty; unknown day and meal keys are dropped.
func Normalize(w models.WeeklyPlan) models.WeeklyPlan {
	out := EmptyWeek()
	for _, day := range models.DaysOfWeek {
		src, ok := w[day]
		if !ok {
			continue
		}
		for _, meal := range models.MealTimes {
			if entries := src[meal]; len(entries) > 0 {
				out[day][meal] = append([]models.PlanEntry(nil), entries...)
			}
		}
	}
	return out
}

// Clone deep-copies a well-formed week.
func Clone(w models.WeeklyPlan) models.WeeklyPlan {
	return Normalize(w)
}

func slot(w models.WeeklyPlan, day models.Day, meal models.MealTime) (models.DayPlan, error) {
	if !day.Valid() || !meal.Valid() {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownSlot, day, meal)
	}
	d, ok := w[day]
	if !ok {
		d = EmptyDay()
		w[day] = d
	}
	return d, nil
}

// AddEntry appends a new entry for foodID. Portion caps are not enforced
// here; manual edits may exceed them.
func AddEntry(w models.WeeklyPlan, day models.Day, meal models.MealTime, foodID string) (models.PlanEntry, error) {
	d, err := slot(w, day, meal)
	if err != nil {
		return models.PlanEntry{}, err
	}
	entry := models.PlanEntry{ID: NewEntryID(), FoodID: foodID}
	d[meal] = append(d[meal], entry)
	return entry, nil
}

// RemoveEntry drops the entry with entryID and reports whether it was found.
func RemoveEntry(w models.WeeklyPlan, day models.Day, meal models.MealTime, entryID string) (bool, error) {
	d, err := slot(w, day, meal)
	if err != nil {
		return false, err
	}
	entries := d[meal]
	kept := make([]models.PlanEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	d[meal] = kept
	return len(kept) != len(entries), nil
}

// ReplaceEntry swaps the food of an entry while keeping its instance id.
func ReplaceEntry(w models.WeeklyPlan, day models.Day, meal models.MealTime, entryID, newFoodID string) (bool, error) {
	d, err := slot(w, day, meal)
	if err != nil {
		return false, err
	}
	for i, e := range d[meal] {
		if e.ID == entryID {
			d[meal][i].FoodID = newFoodID
			return true, nil
		}
	}
	return false, nil
}

// FindEntry returns the entry with entryID in a slot.
func FindEntry(w models.WeeklyPlan, day models.Day, meal models.MealTime, entryID string) (models.PlanEntry, bool) {
	for _, e := range w[day][meal] {
		if e.ID == entryID {
			return e, true
		}
	}
	return models.PlanEntry{}, false
}
