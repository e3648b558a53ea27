package entities

// MinServingFactor is the smallest serving multiplier the storefront
// sells; anything below it is raised, never rejected.
const MinServingFactor = 0.25

// Delivery frequencies accepted by the storefront.
const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

const DefaultProteinTarget = 140

// PlanLineItem is an immutable snapshot taken when a meal is added to a
// plan. Price and macros are already scaled by Servings; recomputing
// them from the meal's base values and Servings reproduces the stored
// numbers.
type PlanLineItem struct {
	MealID   string           `json:"meal_id"`
	Title    string           `json:"title"`
	Servings float64          `json:"servings"`
	Price    float64          `json:"price"`
	Macros   NutritionProfile `json:"macros"`
}

// SubscriptionPlan is the in-progress order for one session. Items are
// append-only; a successful submission clears them but keeps the scalar
// fields so the user can start the next plan without re-entering them.
type SubscriptionPlan struct {
	Email          string         `json:"email"`
	Frequency      string         `json:"frequency"`
	TargetProteinG int            `json:"target"`
	Items          []PlanLineItem `json:"items"`
}

// NewSubscriptionPlan returns the empty plan a session starts with.
func NewSubscriptionPlan() *SubscriptionPlan {
	return &SubscriptionPlan{
		Frequency:      FrequencyWeekly,
		TargetProteinG: DefaultProteinTarget,
		Items:          []PlanLineItem{},
	}
}
