package plan

import (
	"testing"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDailyUsageEmptyDay(t *testing.T) {
	cat := catalog.Default()
	week := EmptyWeek()

	for _, day := range models.DaysOfWeek {
		usage := ComputeDailyUsage(cat, week[day])
		require.Len(t, usage, cat.Len())
		for _, name := range cat.GroupNames() {
			assert.Equal(t, 0, usage[name])
		}
	}
}

func TestComputeDailyUsageCountsAndSkipsDangling(t *testing.T) {
	cat := catalog.Default()
	day := models.DayPlan{
		models.Breakfast:      {{ID: "1", FoodID: "1-1"}, {ID: "2", FoodID: "7-1"}},
		models.Lunch:          {{ID: "3", FoodID: "2-3"}, {ID: "4", FoodID: "deleted"}},
		models.Dinner:         {{ID: "5", FoodID: "1-3"}},
		models.AfternoonSnack: nil,
	}

	usage := ComputeDailyUsage(cat, day)
	assert.Len(t, usage, cat.Len())
	assert.Equal(t, 2, usage[catalog.GroupDairy])
	assert.Equal(t, 1, usage[catalog.GroupBread])
	assert.Equal(t, 1, usage[catalog.GroupProtein])
	assert.Equal(t, 0, usage[catalog.GroupFruit])

	assert.Equal(t, usage, ComputeDailyUsage(cat, day))
}

func TestComputeDailyUsageNilDay(t *testing.T) {
	usage := ComputeDailyUsage(catalog.Default(), nil)
	assert.Len(t, usage, catalog.Default().Len())
}
