package plan

import (
	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
)

// ComputeDailyUsage counts the portions per group used by a day. Every
// catalog group is present in the result. Entries whose food is missing from
// the catalog are skipped.
func ComputeDailyUsage(cat *catalog.Catalog, day models.DayPlan) models.DailyUsage {
	usage := NewUsage(cat)
	for _, entries := range day {
		for _, entry := range entries {
			food, ok := cat.Food(entry.FoodID)
			if !ok {
				continue
			}
			usage[food.Group]++
		}
	}
	return usage
}

// NewUsage returns a usage map with every catalog group at zero.
func NewUsage(cat *catalog.Catalog) models.DailyUsage {
	usage := make(models.DailyUsage, cat.Len())
	for _, name := range cat.GroupNames() {
		usage[name] = 0
	}
	return usage
}
