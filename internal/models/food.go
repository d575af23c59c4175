package models

type FoodItem struct {
	ID       string  `json:"id" mapstructure:"id"`
	Group    string  `json:"group" mapstructure:"group"`
	Name     string  `json:"name" mapstructure:"name"`
	Portion  string  `json:"portion" mapstructure:"portion"`
	Notes    string  `json:"notes" mapstructure:"notes"`
	Calories int     `json:"calories" mapstructure:"calories"` // kcal per portion
	Protein  float64 `json:"protein" mapstructure:"protein"`   // grams
	Carbs    float64 `json:"carbs" mapstructure:"carbs"`       // grams
	Fat      float64 `json:"fat" mapstructure:"fat"`           // grams
}

type FoodGroup struct {
	Name     string     `json:"name" mapstructure:"name"`
	MaxDaily Cap        `json:"max_daily" mapstructure:"max_daily"`
	Items    []FoodItem `json:"items" mapstructure:"items"`
}
