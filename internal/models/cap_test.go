package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapAllows(t *testing.T) {
	c := Capped(2)
	assert.True(t, c.Allows(0))
	assert.True(t, c.Allows(1))
	assert.False(t, c.Allows(2))
	assert.Equal(t, 1, c.Over(3))
	assert.Equal(t, 0, c.Over(2))

	u := Unlimited()
	assert.True(t, u.Allows(1000))
	assert.Equal(t, 0, u.Over(1000))
	_, ok := u.Limit()
	assert.False(t, ok)
}

func TestCapJSON(t *testing.T) {
	data, err := json.Marshal(FoodGroup{Name: "Dairy", MaxDaily: Capped(2)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"max_daily":2`)

	data, err = json.Marshal(FoodGroup{Name: "Free Vegetables", MaxDaily: Unlimited()})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"max_daily":"unlimited"`)

	var g FoodGroup
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Fruit","max_daily":3}`), &g))
	n, ok := g.MaxDaily.Limit()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Free","max_daily":"Ilimitado"}`), &g))
	assert.True(t, g.MaxDaily.IsUnlimited())
}

func TestParseCapRejectsInvalid(t *testing.T) {
	for _, v := range []interface{}{0, -1, 1.5, "lots", true} {
		_, err := ParseCap(v)
		assert.Error(t, err, "value %v", v)
	}
}

func TestMealTarget(t *testing.T) {
	assert.Equal(t, 450, MealTarget(Lunch, 1500))
	assert.Equal(t, 150, MealTarget(Dinner, 1500))
	assert.Equal(t, 300, MealTarget(AfternoonSnack, 1500))

	total := 0.0
	for _, meal := range MealTimes {
		total += CalorieDistribution[meal]
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}
