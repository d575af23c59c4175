package generator

import (
	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
)

// MealTemplate lists the food groups a meal is built from. Required groups
// are always attempted; optional groups only top up calories.
type MealTemplate struct {
	Required []string `json:"required" mapstructure:"required"`
	Optional []string `json:"optional" mapstructure:"optional"`
}

// DefaultTemplates matches the group names of catalog.Default.
func DefaultTemplates() map[models.MealTime]MealTemplate {
	return map[models.MealTime]MealTemplate{
		models.Breakfast: {
			Required: []string{catalog.GroupDairy, catalog.GroupBread},
			Optional: []string{catalog.GroupFruit, catalog.GroupFats},
		},
		models.MidMorning: {
			Required: []string{catalog.GroupFruit},
			Optional: []string{catalog.GroupDairy},
		},
		models.Lunch: {
			Required: []string{catalog.GroupProtein, catalog.GroupStarches, catalog.GroupVegetables},
			Optional: []string{catalog.GroupFreeVegetables, catalog.GroupFats},
		},
		models.AfternoonSnack: {
			Required: []string{catalog.GroupDairy, catalog.GroupBread},
			Optional: []string{catalog.GroupFats, catalog.GroupFruit},
		},
		models.Dinner: {
			Required: []string{catalog.GroupProtein, catalog.GroupVegetables},
			Optional: []string{catalog.GroupFreeVegetables},
		},
	}
}

func (t MealTemplate) all() []string {
	groups := make([]string, 0, len(t.Required)+len(t.Optional))
	groups = append(groups, t.Required...)
	return append(groups, t.Optional...)
}
