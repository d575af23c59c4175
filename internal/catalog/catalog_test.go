package catalog

import (
	"testing"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroups() []models.FoodGroup {
	return []models.FoodGroup{
		{
			Name:     "Dairy",
			MaxDaily: models.Capped(2),
			Items: []models.FoodItem{
				{ID: "a", Name: "A", Calories: 90},
				{ID: "b", Name: "B", Calories: 70},
			},
		},
		{
			Name:     "Fruit",
			MaxDaily: models.Unlimited(),
			Items:    []models.FoodItem{{ID: "c", Name: "C", Calories: 50}},
		},
	}
}

func TestNewFillsItemGroup(t *testing.T) {
	c, err := New(testGroups())
	require.NoError(t, err)

	item, ok := c.Food("a")
	require.True(t, ok)
	assert.Equal(t, "Dairy", item.Group)
	assert.Equal(t, []string{"Dairy", "Fruit"}, c.GroupNames())
	assert.Equal(t, 2, c.Len())
}

func TestFoodNotFound(t *testing.T) {
	c := MustNew(testGroups())
	_, ok := c.Food("deleted-id")
	assert.False(t, ok)
	_, ok = c.Group("Sweets")
	assert.False(t, ok)
	assert.Nil(t, c.Items("Sweets"))
	assert.Equal(t, -1, c.GroupIndex("Sweets"))
}

func TestNewRejectsInvalid(t *testing.T) {
	cases := map[string]func([]models.FoodGroup) []models.FoodGroup{
		"empty group name": func(g []models.FoodGroup) []models.FoodGroup {
			g[0].Name = " "
			return g
		},
		"duplicate group": func(g []models.FoodGroup) []models.FoodGroup {
			g[1].Name = "Dairy"
			return g
		},
		"duplicate item id": func(g []models.FoodGroup) []models.FoodGroup {
			g[1].Items[0].ID = "a"
			return g
		},
		"empty item id": func(g []models.FoodGroup) []models.FoodGroup {
			g[0].Items[0].ID = ""
			return g
		},
		"negative calories": func(g []models.FoodGroup) []models.FoodGroup {
			g[0].Items[1].Calories = -5
			return g
		},
		"negative fat": func(g []models.FoodGroup) []models.FoodGroup {
			g[0].Items[1].Fat = -0.1
			return g
		},
		"mismatched item group": func(g []models.FoodGroup) []models.FoodGroup {
			g[0].Items[0].Group = "Fruit"
			return g
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(mutate(testGroups()))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}

	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestCatalogIsolatedFromInput(t *testing.T) {
	groups := testGroups()
	c := MustNew(groups)
	groups[0].Items[0].Calories = 9999

	item, _ := c.Food("a")
	assert.Equal(t, 90, item.Calories)

	copied := c.Groups()
	copied[0].Items[0].Calories = 1
	item, _ = c.Food("a")
	assert.Equal(t, 90, item.Calories)
	assert.Equal(t, 90, c.Items("Dairy")[0].Calories)
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{
		GroupDairy, GroupProtein, GroupVegetables, GroupFreeVegetables,
		GroupFruit, GroupStarches, GroupBread, GroupFats,
	}, c.GroupNames())

	capFree, ok := c.Cap(GroupFreeVegetables)
	require.True(t, ok)
	assert.True(t, capFree.IsUnlimited())

	for _, g := range c.Groups() {
		assert.NotEmpty(t, g.Items, g.Name)
		for _, item := range g.Items {
			assert.Positive(t, item.Calories, item.ID)
		}
	}
}
