package entities

// NutritionProfile holds the macros for a single serving (or a scaled
// multiple of one). Values are produced fresh on every scale, never
// mutated in place.
type NutritionProfile struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories int     `json:"calories"`
}

// MealRecord is a catalog meal as served by the storefront API. The
// gateway never writes these; price and macros are per single serving.
type MealRecord struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Price           float64          `json:"price"`
	Macros          NutritionProfile `json:"macros"`
	Category        string           `json:"category"`
	DietTags        []string         `json:"diet_tags,omitempty"`
	IsCustomizable  bool             `json:"is_customizable"`
	AvailableAddOns []string         `json:"available_add_ons,omitempty"`
}
