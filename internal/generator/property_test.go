package generator_test

import (
	"testing"

	"github.com/chrisdamba/nutriplan/internal/factories"
	"github.com/chrisdamba/nutriplan/internal/generator"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticCatalogsRespectCaps(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		f := factories.NewCatalogFactory(seed)
		cat := f.CreateCatalog()
		g := generator.New(cat,
			generator.WithSeed(seed),
			generator.WithTemplates(f.TemplatesFor(cat)),
			generator.WithDailyTarget(800+int(seed)*25),
		)

		week := g.GenerateWeek()
		require.Len(t, week, 7)

		for _, day := range models.DaysOfWeek {
			require.Len(t, week[day], 5)
			for _, entries := range week[day] {
				for _, e := range entries {
					_, ok := cat.Food(e.FoodID)
					assert.True(t, ok, "seed %d: unresolved %s", seed, e.FoodID)
				}
			}

			usage := plan.ComputeDailyUsage(cat, week[day])
			assert.Len(t, usage, cat.Len())
			for _, group := range cat.Groups() {
				if limit, capped := group.MaxDaily.Limit(); capped {
					assert.LessOrEqual(t, usage[group.Name], limit, "seed %d group %s", seed, group.Name)
				}
			}
		}
	}
}
