// Package shopping aggregates the foods of a week into a shopping list.
package shopping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
)

type Item struct {
	FoodID  string `json:"food_id"`
	Name    string `json:"name"`
	Portion string `json:"portion"`
	Group   string `json:"group"`
	Count   int    `json:"count"`
}

type Section struct {
	Group string `json:"group"`
	Items []Item `json:"items"`
}

type List struct {
	Sections []Section `json:"sections"`
}

// Build counts every resolvable entry of the week. Sections follow catalog
// order and items within a section are sorted by name.
func Build(cat *catalog.Catalog, week models.WeeklyPlan) List {
	counts := make(map[string]*Item)
	for _, day := range week {
		for _, entries := range day {
			for _, entry := range entries {
				food, ok := cat.Food(entry.FoodID)
				if !ok {
					continue
				}
				it, seen := counts[food.ID]
				if !seen {
					it = &Item{FoodID: food.ID, Name: food.Name, Portion: food.Portion, Group: food.Group}
					counts[food.ID] = it
				}
				it.Count++
			}
		}
	}

	byGroup := make(map[string][]Item)
	for _, it := range counts {
		byGroup[it.Group] = append(byGroup[it.Group], *it)
	}

	var list List
	for _, name := range cat.GroupNames() {
		items := byGroup[name]
		if len(items) == 0 {
			continue
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].Name != items[j].Name {
				return items[i].Name < items[j].Name
			}
			return items[i].FoodID < items[j].FoodID
		})
		list.Sections = append(list.Sections, Section{Group: name, Items: items})
	}
	return list
}

func (l List) Empty() bool {
	return len(l.Sections) == 0
}

// Text renders the list as a plain-text checklist.
func (l List) Text() string {
	var b strings.Builder
	b.WriteString("SHOPPING LIST - NutriPlan\n")
	b.WriteString("================================\n\n")
	for _, section := range l.Sections {
		b.WriteString(strings.ToUpper(section.Group))
		b.WriteString(":\n")
		for _, it := range section.Items {
			fmt.Fprintf(&b, "[ ] %s (%dx %s)\n", it.Name, it.Count, it.Portion)
		}
		b.WriteString("\n")
	}
	return b.String()
}
