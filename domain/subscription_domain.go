package domain

import "errors"

var (
	MessageSuccessSubscription = "Subscription created!"
	MessageFailedSubscription  = "Error creating subscription"
	MessageEmailRequired       = "Please enter your email"

	ErrEmailRequired      = errors.New("email is required to start a subscription")
	ErrSubmissionInFlight = errors.New("a submission for this session is already in flight")
	ErrSubscriptionFailed = errors.New("storefront rejected the subscription request")
)

type (
	// SubscriptionItem is the shape that crosses the storefront
	// boundary: identifier and serving count only, the backend
	// recomputes price and macros itself.
	SubscriptionItem struct {
		MealID   string  `json:"meal_id"`
		Servings float64 `json:"servings"`
	}

	SubscriptionRequest struct {
		Email                string             `json:"email"`
		Frequency            string             `json:"frequency"`
		TargetProteinGPerDay int                `json:"target_protein_g_per_day"`
		Items                []SubscriptionItem `json:"items"`
	}

	SubscriptionResponse struct {
		Submitted bool `json:"submitted"`
		ItemCount int  `json:"item_count"`
	}
)
