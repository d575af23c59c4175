package catalog

import "github.com/chrisdamba/nutriplan/internal/models"

const (
	GroupDairy          = "Dairy"
	GroupProtein        = "Protein"
	GroupVegetables     = "Vegetables"
	GroupFreeVegetables = "Free Vegetables"
	GroupFruit          = "Fruit"
	GroupStarches       = "Starches"
	GroupBread          = "Bread & Crackers"
	GroupFats           = "Oils & Fats"
)

func item(id, group, name, portion, notes string, kcal int, protein, carbs, fat float64) models.FoodItem {
	return models.FoodItem{
		ID:       id,
		Group:    group,
		Name:     name,
		Portion:  portion,
		Notes:    notes,
		Calories: kcal,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

// DefaultGroups returns the built-in food groups in display order.
func DefaultGroups() []models.FoodGroup {
	return []models.FoodGroup{
		{
			Name:     GroupDairy,
			MaxDaily: models.Capped(2),
			Items: []models.FoodItem{
				item("1-1", GroupDairy, "Skim milk", "1 cup / 200 ml", "", 70, 7, 10, 0.2),
				item("1-2", GroupDairy, "Light fresh cheese", "60 g", "", 80, 9, 2, 4),
				item("1-3", GroupDairy, "Low-fat yogurt", "1 unit", "", 90, 5, 15, 0.5),
				item("1-4", GroupDairy, "Cultured milk", "200 ml", "", 95, 6, 14, 1.5),
				item("1-5", GroupDairy, "Diet flan", "1 unit", "", 70, 4, 12, 0.5),
				item("1-6", GroupDairy, "Gouda cheese", "1 slice", "At most twice a week", 85, 6, 0.5, 6.5),
				item("1-7", GroupDairy, "Ricotta", "2 tablespoons", "", 75, 5, 2, 5),
			},
		},
		{
			Name:     GroupProtein,
			MaxDaily: models.Capped(3),
			Items: []models.FoodItem{
				item("2-1", GroupProtein, "Legumes", "3/4 cup", "Cooked", 170, 11, 30, 0.6),
				item("2-2", GroupProtein, "Lean beef", "100 g", "", 180, 26, 0, 8),
				item("2-3", GroupProtein, "Chicken breast", "100 g", "", 165, 31, 0, 3.6),
				item("2-4", GroupProtein, "Salmon", "100 g", "", 210, 22, 0, 13),
				item("2-5", GroupProtein, "White fish", "150 g", "", 140, 30, 0, 1.5),
				item("2-6", GroupProtein, "Soy burger", "1 unit", "", 120, 12, 8, 4),
				item("2-7", GroupProtein, "Canned tuna or seafood", "1 can (125 g)", "", 130, 28, 0, 1),
				item("2-8", GroupProtein, "Textured soy protein", "1/2 cup", "Raw", 160, 24, 14, 0.5),
				item("2-9", GroupProtein, "Egg", "1 unit", "Not fried (2-3 a day in total)", 75, 6.5, 0.5, 5),
			},
		},
		{
			Name:     GroupVegetables,
			MaxDaily: models.Capped(4),
			Items: []models.FoodItem{
				item("3-1", GroupVegetables, "Tomato", "1 unit (120 g)", "", 22, 1, 4.7, 0.2),
				item("3-2", GroupVegetables, "Carrot", "1/2 cup", "Raw", 26, 0.6, 6, 0.1),
				item("3-3", GroupVegetables, "Onion", "1/2 cup", "Raw", 32, 0.9, 7.5, 0.1),
				item("3-4", GroupVegetables, "Broccoli / cauliflower", "3/4 cup", "Cooked", 30, 2.5, 5.5, 0.3),
				item("3-5", GroupVegetables, "Asparagus", "4 units", "", 13, 1.4, 2.5, 0.1),
				item("3-6", GroupVegetables, "Green beans", "1 cup", "Cooked", 44, 2.4, 10, 0.4),
				item("3-7", GroupVegetables, "Zucchini", "1 cup", "Cooked", 27, 2, 5, 0.4),
				item("3-8", GroupVegetables, "Hearts of palm", "4 units", "", 40, 3.5, 6.5, 0.9),
				item("3-9", GroupVegetables, "Butternut squash", "1/2 cup", "", 41, 0.9, 10.8, 0.1),
				item("3-10", GroupVegetables, "Beet and carrot", "1/2 cup", "Cooked", 37, 1.2, 8.5, 0.1),
				item("3-11", GroupVegetables, "Brussels sprouts", "4 units", "", 30, 2.3, 6, 0.2),
			},
		},
		{
			Name:     GroupFreeVegetables,
			MaxDaily: models.Unlimited(),
			Items: []models.FoodItem{
				item("4-1", GroupFreeVegetables, "Celery", "To taste", "", 10, 0.4, 1.9, 0.1),
				item("4-2", GroupFreeVegetables, "Spinach", "To taste", "Raw", 10, 1.3, 1.6, 0.2),
				item("4-3", GroupFreeVegetables, "Watercress", "To taste", "", 5, 1, 0.6, 0),
				item("4-4", GroupFreeVegetables, "Lettuce", "To taste", "", 8, 0.6, 1.5, 0.1),
				item("4-5", GroupFreeVegetables, "Arugula", "To taste", "", 6, 0.7, 0.9, 0.2),
				item("4-6", GroupFreeVegetables, "Cabbage", "To taste", "", 12, 0.6, 2.8, 0),
				item("4-7", GroupFreeVegetables, "Mushrooms", "To taste", "", 15, 2.2, 2.3, 0.2),
				item("4-8", GroupFreeVegetables, "Bell pepper", "To taste", "", 15, 0.5, 3.5, 0.1),
				item("4-9", GroupFreeVegetables, "Raw zucchini", "To taste", "Raw or in salad", 10, 0.7, 1.8, 0.2),
			},
		},
		{
			Name:     GroupFruit,
			MaxDaily: models.Capped(2),
			Items: []models.FoodItem{
				item("5-1", GroupFruit, "Apple", "1/2 unit", "", 48, 0.2, 12.5, 0.2),
				item("5-2", GroupFruit, "Banana", "1/2 unit", "", 53, 0.6, 13.5, 0.2),
				item("5-3", GroupFruit, "Strawberries", "1 cup", "", 49, 1, 11.7, 0.5),
				item("5-4", GroupFruit, "Plums", "2 units", "", 60, 0.9, 15, 0.4),
				item("5-5", GroupFruit, "Kiwis", "2 units", "", 84, 1.6, 20, 0.7),
				item("5-6", GroupFruit, "Orange", "1 unit", "", 62, 1.2, 15.4, 0.2),
				item("5-7", GroupFruit, "Watermelon or melon", "1 cup", "", 46, 0.9, 11.5, 0.2),
				item("5-8", GroupFruit, "Peach", "1 unit", "", 58, 1.4, 14, 0.4),
			},
		},
		{
			Name:     GroupStarches,
			MaxDaily: models.Capped(2),
			Items: []models.FoodItem{
				item("6-1", GroupStarches, "Rice", "1/2 cup", "Cooked", 103, 2.1, 22.5, 0.2),
				item("6-2", GroupStarches, "Pasta", "1/2 cup", "", 110, 4, 21.5, 0.6),
				item("6-3", GroupStarches, "Quinoa", "1/2 cup", "", 111, 4, 19.7, 1.8),
				item("6-4", GroupStarches, "Corn, peas, broad beans", "1/2 cup", "", 90, 4, 17, 0.6),
				item("6-5", GroupStarches, "Small potatoes", "2 units", "", 110, 3, 25, 0.1),
			},
		},
		{
			Name:     GroupBread,
			MaxDaily: models.Capped(2),
			Items: []models.FoodItem{
				item("7-1", GroupBread, "Sandwich bread", "2 slices", "", 140, 5, 26, 2),
				item("7-2", GroupBread, "Whole wheat bread", "50 g", "", 125, 6, 21, 1.7),
				item("7-3", GroupBread, "Pita bread", "1 unit", "", 165, 5.5, 33, 0.7),
				item("7-4", GroupBread, "Bran crackers", "6 units", "", 120, 3, 20, 3),
				item("7-5", GroupBread, "Oats", "1/2 cup / 50 g", "", 190, 6.5, 33, 3.5),
				item("7-6", GroupBread, "Sugar-free cereal", "3/4 cup / 30 g", "", 110, 3, 23, 0.8),
				item("7-7", GroupBread, "Tortilla wrap", "1 unit", "Size L", 150, 4, 25, 3.5),
			},
		},
		{
			Name:     GroupFats,
			MaxDaily: models.Capped(4),
			Items: []models.FoodItem{
				item("8-1", GroupFats, "Olive oil", "2 teaspoons", "", 80, 0, 0, 9),
				item("8-2", GroupFats, "Avocado", "1/2 unit", "", 115, 1.4, 6, 10.5),
				item("8-3", GroupFats, "Almonds", "25 units", "", 145, 5.3, 5.4, 12.5),
				item("8-4", GroupFats, "Walnuts", "10 units", "", 130, 3, 2.7, 13),
				item("8-5", GroupFats, "Olives", "11 units", "", 50, 0.4, 2.7, 4.6),
			},
		},
	}
}

var defaultCatalog = MustNew(DefaultGroups())

// Default is the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}
