package dog

import "github.com/vovakirdan/all-my-doggies/internal/core"

// DefaultNutritionScale is the raw nutritional value of the most filling food.
const DefaultNutritionScale = 10.0

// Food is a transient item handed to Dog.Feed.
type Food struct {
	Name      string
	Nutrition core.Percent
}

// NewFood maps a raw nutritional value on [0, scale] onto a Percent of the
// food gauge. A non-positive scale falls back to DefaultNutritionScale.
func NewFood(name string, raw, scale float64) Food {
	if scale <= 0 {
		scale = DefaultNutritionScale
	}
	return Food{Name: name, Nutrition: core.NewPercent(raw / scale * 100)}
}
