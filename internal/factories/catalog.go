package factories

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/generator"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/jaswdr/faker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var portions = []string{"1 cup", "1/2 cup", "1 unit", "2 units", "100 g", "2 tablespoons", "To taste"}

// CatalogFactory builds synthetic catalogs for exercising the generator
// against food groups other than the built-in ones.
type CatalogFactory struct {
	fake  faker.Faker
	rng   *rand.Rand
	title cases.Caser

	MinGroups, MaxGroups int
	MinItems, MaxItems   int
	MaxCalories          int
	// UnlimitedRatio is the share of groups without a daily cap.
	UnlimitedRatio float64
}

func NewCatalogFactory(seed int64) *CatalogFactory {
	return &CatalogFactory{
		fake:           faker.NewWithSeed(rand.NewSource(seed)),
		rng:            rand.New(rand.NewSource(seed)),
		title:          cases.Title(language.English),
		MinGroups:      1,
		MaxGroups:      10,
		MinItems:       0,
		MaxItems:       12,
		MaxCalories:    400,
		UnlimitedRatio: 0.2,
	}
}

func (cf *CatalogFactory) CreateGroups() []models.FoodGroup {
	count := cf.fake.IntBetween(cf.MinGroups, cf.MaxGroups)
	groups := make([]models.FoodGroup, count)
	for i := range groups {
		name := fmt.Sprintf("%s %d", cf.title.String(cf.fake.Lorem().Word()), i+1)
		groups[i] = models.FoodGroup{
			Name:     name,
			MaxDaily: cf.createCap(),
			Items:    cf.createItems(name, i),
		}
	}
	return groups
}

// CreateCatalog returns a catalog that always passes validation.
func (cf *CatalogFactory) CreateCatalog() *catalog.Catalog {
	return catalog.MustNew(cf.CreateGroups())
}

func (cf *CatalogFactory) createCap() models.Cap {
	if cf.rng.Float64() < cf.UnlimitedRatio {
		return models.Unlimited()
	}
	return models.Capped(cf.fake.IntBetween(1, 4))
}

func (cf *CatalogFactory) createItems(group string, groupIndex int) []models.FoodItem {
	count := cf.fake.IntBetween(cf.MinItems, cf.MaxItems)
	items := make([]models.FoodItem, count)
	for i := range items {
		items[i] = models.FoodItem{
			ID:       fmt.Sprintf("%d-%d", groupIndex+1, i+1),
			Group:    group,
			Name:     cf.title.String(strings.Join(cf.fake.Lorem().Words(2), " ")),
			Portion:  portions[cf.rng.Intn(len(portions))],
			Calories: cf.fake.IntBetween(0, cf.MaxCalories),
			Protein:  cf.fake.Float64(1, 0, 30),
			Carbs:    cf.fake.Float64(1, 0, 40),
			Fat:      cf.fake.Float64(1, 0, 15),
		}
	}
	return items
}

// TemplatesFor spreads the catalog groups over the five meals: each meal
// requires up to two random groups and may top up from up to two more.
func (cf *CatalogFactory) TemplatesFor(cat *catalog.Catalog) map[models.MealTime]generator.MealTemplate {
	names := cat.GroupNames()
	templates := make(map[models.MealTime]generator.MealTemplate, len(models.MealTimes))
	for _, meal := range models.MealTimes {
		templates[meal] = generator.MealTemplate{
			Required: cf.pick(names, 2),
			Optional: cf.pick(names, 2),
		}
	}
	return templates
}

func (cf *CatalogFactory) pick(names []string, max int) []string {
	n := cf.rng.Intn(max + 1)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, names[cf.rng.Intn(len(names))])
	}
	return out
}
