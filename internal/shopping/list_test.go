package shopping

import (
	"testing"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	cat := catalog.Default()
	week := plan.EmptyWeek()
	week[models.Monday][models.Breakfast] = []models.PlanEntry{{ID: "1", FoodID: "1-1"}, {ID: "2", FoodID: "7-1"}}
	week[models.Tuesday][models.Breakfast] = []models.PlanEntry{{ID: "3", FoodID: "1-1"}}
	week[models.Tuesday][models.Lunch] = []models.PlanEntry{{ID: "4", FoodID: "2-3"}, {ID: "5", FoodID: "gone"}}
	week[models.Sunday][models.AfternoonSnack] = []models.PlanEntry{{ID: "6", FoodID: "1-3"}}

	list := Build(cat, week)
	require.Len(t, list.Sections, 3)

	assert.Equal(t, catalog.GroupDairy, list.Sections[0].Group)
	require.Len(t, list.Sections[0].Items, 2)
	assert.Equal(t, "Low-fat yogurt", list.Sections[0].Items[0].Name)
	assert.Equal(t, "Skim milk", list.Sections[0].Items[1].Name)
	assert.Equal(t, 2, list.Sections[0].Items[1].Count)

	assert.Equal(t, catalog.GroupProtein, list.Sections[1].Group)
	assert.Equal(t, catalog.GroupBread, list.Sections[2].Group)
}

func TestText(t *testing.T) {
	cat := catalog.Default()
	week := plan.EmptyWeek()
	week[models.Monday][models.Lunch] = []models.PlanEntry{{ID: "1", FoodID: "6-1"}, {ID: "2", FoodID: "6-1"}}

	text := Build(cat, week).Text()
	assert.Contains(t, text, "STARCHES:\n")
	assert.Contains(t, text, "[ ] Rice (2x 1/2 cup)\n")
}

func TestBuildEmptyWeek(t *testing.T) {
	list := Build(catalog.Default(), plan.EmptyWeek())
	assert.True(t, list.Empty())
	assert.NotContains(t, list.Text(), "[ ]")
}
