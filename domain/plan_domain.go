package domain

import "proteinfuel-gateway/entities"

var (
	MessageSuccessAddPlanItem     = "item added to plan"
	MessageSuccessUpdatePlan      = "plan updated successfully"
	MessageSuccessGetPlan         = "plan retrieved successfully"
	MessageSuccessGetNotification = "notifications retrieved successfully"

	MessageFailedAddPlanItem = "failed to add item to plan"
	MessageFailedUpdatePlan  = "failed to update plan"
	MessageFailedGetPlan     = "failed to retrieve plan"
)

type (
	// UpdatePlanRequest is a partial update; nil pointers leave the
	// corresponding field untouched. Frequency and target are not
	// validated beyond shape, matching the storefront form.
	UpdatePlanRequest struct {
		Email     *string `json:"email" validate:"omitempty"`
		Frequency *string `json:"frequency" validate:"omitempty,oneof=weekly biweekly monthly"`
		Target    *int    `json:"target" validate:"omitempty"`
	}

	// AddPlanItemRequest carries the meal snapshot the frontend already
	// holds from the catalog list plus the chosen serving count.
	AddPlanItemRequest struct {
		Meal     entities.MealRecord `json:"meal" validate:"required"`
		Servings float64             `json:"servings"`
	}

	PlanTotals struct {
		TotalProteinG float64 `json:"total_protein_g"`
		TotalCalories int     `json:"total_calories"`
		TotalPrice    float64 `json:"total_price"`
	}

	PlanResponse struct {
		Plan   entities.SubscriptionPlan `json:"plan"`
		Totals PlanTotals                `json:"totals"`
	}
)
