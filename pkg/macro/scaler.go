package macro

import (
	"math"

	"proteinfuel-gateway/entities"
)

// ClampServings raises a requested serving factor to the quarter-serving
// floor. Zero and negative requests are normalized, never rejected.
func ClampServings(factor float64) float64 {
	return math.Max(entities.MinServingFactor, factor)
}

// Scale multiplies a single-serving profile by a serving factor and
// rounds each field for storage: macros to one decimal, calories to the
// nearest integer (half away from zero). The rounded values are what a
// plan stores; they are never re-derived later.
func Scale(profile entities.NutritionProfile, factor float64) entities.NutritionProfile {
	f := ClampServings(factor)
	return entities.NutritionProfile{
		Protein:  round1(profile.Protein * f),
		Carbs:    round1(profile.Carbs * f),
		Fats:     round1(profile.Fats * f),
		Calories: int(math.Round(float64(profile.Calories) * f)),
	}
}

// ScalePrice applies a serving factor to a per-serving price, rounded to
// cents.
func ScalePrice(price, factor float64) float64 {
	return math.Round(price*ClampServings(factor)*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
