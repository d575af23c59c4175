// Package catalog holds the immutable food catalog consulted by the generator
// and the usage accounting.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chrisdamba/nutriplan/internal/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is a validated, read-only list of food groups. Replacing the
// catalog means building a new value; nothing mutates one in place.
type Catalog struct {
	groups []models.FoodGroup
	byName map[string]int
	byID   map[string]models.FoodItem
}

// New validates groups and returns a catalog holding a private copy of them.
func New(groups []models.FoodGroup) (*Catalog, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no food groups", ErrInvalidCatalog)
	}

	c := &Catalog{
		groups: make([]models.FoodGroup, 0, len(groups)),
		byName: make(map[string]int, len(groups)),
		byID:   make(map[string]models.FoodItem),
	}

	for gi, group := range groups {
		name := strings.TrimSpace(group.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: group %d has an empty name", ErrInvalidCatalog, gi)
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate group %q", ErrInvalidCatalog, name)
		}

		items := make([]models.FoodItem, 0, len(group.Items))
		for _, item := range group.Items {
			if err := validateItem(name, &item); err != nil {
				return nil, err
			}
			if _, dup := c.byID[item.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate food id %q", ErrInvalidCatalog, item.ID)
			}
			c.byID[item.ID] = item
			items = append(items, item)
		}

		c.byName[name] = gi
		c.groups = append(c.groups, models.FoodGroup{
			Name:     name,
			MaxDaily: group.MaxDaily,
			Items:    items,
		})
	}

	return c, nil
}

func validateItem(group string, item *models.FoodItem) error {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return fmt.Errorf("%w: item %q in group %q has an empty id", ErrInvalidCatalog, item.Name, group)
	}
	if item.Group == "" {
		item.Group = group
	} else if item.Group != group {
		return fmt.Errorf("%w: item %q is listed under %q but names group %q", ErrInvalidCatalog, item.ID, group, item.Group)
	}
	if item.Calories < 0 || item.Protein < 0 || item.Carbs < 0 || item.Fat < 0 {
		return fmt.Errorf("%w: item %q has negative nutrition values", ErrInvalidCatalog, item.ID)
	}
	return nil
}

// MustNew is New for catalogs known to be valid at compile time.
func MustNew(groups []models.FoodGroup) *Catalog {
	c, err := New(groups)
	if err != nil {
		panic(err)
	}
	return c
}

// Food resolves a food id. Stale ids from an older catalog report false.
func (c *Catalog) Food(id string) (models.FoodItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) Group(name string) (models.FoodGroup, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.FoodGroup{}, false
	}
	return c.copyGroup(i), true
}

// Cap returns the daily cap of a group; unknown groups report false.
func (c *Catalog) Cap(name string) (models.Cap, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.Cap{}, false
	}
	return c.groups[i].MaxDaily, true
}

// Items returns the items of a group in catalog order. The slice is shared
// and must not be modified.
func (c *Catalog) Items(name string) []models.FoodItem {
	i, ok := c.byName[name]
	if !ok {
		return nil
	}
	return c.groups[i].Items
}

// Groups returns a copy of the groups in display order.
func (c *Catalog) Groups() []models.FoodGroup {
	out := make([]models.FoodGroup, len(c.groups))
	for i := range c.groups {
		out[i] = c.copyGroup(i)
	}
	return out
}

func (c *Catalog) GroupNames() []string {
	names := make([]string, len(c.groups))
	for i, g := range c.groups {
		names[i] = g.Name
	}
	return names
}

// GroupIndex is the display position of a group, or -1.
func (c *Catalog) GroupIndex(name string) int {
	if i, ok := c.byName[name]; ok {
		return i
	}
	return -1
}

func (c *Catalog) Len() int {
	return len(c.groups)
}

func (c *Catalog) copyGroup(i int) models.FoodGroup {
	g := c.groups[i]
	items := make([]models.FoodItem, len(g.Items))
	copy(items, g.Items)
	g.Items = items
	return g
}
