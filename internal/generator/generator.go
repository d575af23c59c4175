// Package generator fills a week of meals from a catalog. Each meal is
// assembled greedily in three passes against its calorie target while the
// per-day portion caps of the catalog are enforced.
package generator

import (
	"math/rand"
	"sort"
	"time"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
)

const (
	DefaultTolerance = 0.15
	TopUpTolerance   = 0.20

	optionalPassBelow = 0.90
	optionalPassStop  = 0.95
	topUpPassBelow    = 0.70
	topUpPassStop     = 0.85
)

// RandSource is the random draw used to pick items. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

type Generator struct {
	catalog     *catalog.Catalog
	rng         RandSource
	seed        int64
	dailyTarget int
	templates   map[models.MealTime]MealTemplate
	newID       func() string
	byCalories  map[string][]models.FoodItem
}

type Option func(*Generator)

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng RandSource) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

func WithDailyTarget(kcal int) Option {
	return func(g *Generator) {
		if kcal > 0 {
			g.dailyTarget = kcal
		}
	}
}

func WithTemplates(templates map[models.MealTime]MealTemplate) Option {
	return func(g *Generator) {
		g.templates = templates
	}
}

// WithIDFunc replaces the entry id source, mostly for tests.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		g.newID = fn
	}
}

func New(cat *catalog.Catalog, opts ...Option) *Generator {
	seed := time.Now().UnixNano()
	g := &Generator{
		catalog:     cat,
		seed:        seed,
		rng:         rand.New(rand.NewSource(seed)),
		dailyTarget: models.DefaultDailyCalorieTarget,
		templates:   DefaultTemplates(),
		newID:       plan.NewEntryID,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.byCalories = make(map[string][]models.FoodItem, cat.Len())
	for _, name := range cat.GroupNames() {
		items := append([]models.FoodItem(nil), cat.Items(name)...)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Calories < items[j].Calories
		})
		g.byCalories[name] = items
	}

	return g
}

// Seed is the seed of the random source unless WithRand replaced it.
func (g *Generator) Seed() int64 {
	return g.seed
}

func (g *Generator) DailyTarget() int {
	return g.dailyTarget
}

func (g *Generator) Catalog() *catalog.Catalog {
	return g.catalog
}

// GenerateWeek returns a fresh plan with all days and meals present. Meals
// may come out short when the catalog cannot reach their targets.
func (g *Generator) GenerateWeek() models.WeeklyPlan {
	week := make(models.WeeklyPlan, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		week[day] = g.GenerateDay()
	}
	return week
}

// GenerateDay fills one day with its own usage counter.
func (g *Generator) GenerateDay() models.DayPlan {
	day := plan.EmptyDay()
	usage := plan.NewUsage(g.catalog)
	for _, meal := range models.MealTimes {
		fill := &mealFill{
			entries: day[meal],
			target:  models.MealTarget(meal, g.dailyTarget),
		}
		g.fillMeal(usage, g.templates[meal], fill)
		day[meal] = fill.entries
	}
	return day
}

type mealFill struct {
	entries  []models.PlanEntry
	calories int
	target   int
}

func (m *mealFill) below(fraction float64) bool {
	return float64(m.calories) < float64(m.target)*fraction
}

func (g *Generator) fillMeal(usage models.DailyUsage, tmpl MealTemplate, fill *mealFill) {
	for _, group := range tmpl.Required {
		g.tryAdd(usage, group, fill, DefaultTolerance)
	}

	if fill.below(optionalPassBelow) {
		for _, group := range tmpl.Optional {
			if !fill.below(optionalPassStop) {
				break
			}
			g.tryAdd(usage, group, fill, DefaultTolerance)
		}
	}

	if fill.below(topUpPassBelow) {
		for _, group := range tmpl.all() {
			if !fill.below(topUpPassStop) {
				break
			}
			g.tryAdd(usage, group, fill, TopUpTolerance)
		}
	}
}

// tryAdd makes one addition attempt from group. It returns the calories of
// the committed item and false when nothing was added.
func (g *Generator) tryAdd(usage models.DailyUsage, group string, fill *mealFill, tolerance float64) (int, bool) {
	limit, ok := g.catalog.Cap(group)
	if !ok || !limit.Allows(usage[group]) {
		return 0, false
	}
	items := g.catalog.Items(group)
	if len(items) == 0 {
		return 0, false
	}

	maxAllowed := float64(fill.target) * (1 + tolerance)
	item := items[g.rng.Intn(len(items))]
	if fill.calories == 0 || float64(fill.calories+item.Calories) <= maxAllowed {
		return g.commit(usage, fill, item), true
	}

	for _, candidate := range g.byCalories[group] {
		if float64(fill.calories+candidate.Calories) <= maxAllowed {
			return g.commit(usage, fill, candidate), true
		}
	}
	return 0, false
}

func (g *Generator) commit(usage models.DailyUsage, fill *mealFill, item models.FoodItem) int {
	fill.entries = append(fill.entries, models.PlanEntry{ID: g.newID(), FoodID: item.ID})
	fill.calories += item.Calories
	usage[item.Group]++
	return item.Calories
}
