package domain

import (
	"errors"

	"proteinfuel-gateway/entities"
)

var (
	MessageSuccessGetMeals = "meals retrieved successfully"
	MessageFailedGetMeals  = "failed to retrieve meals"
	MessageStaleMealQuery  = "catalog query superseded by a newer one"

	ErrStaleQuery = errors.New("catalog response superseded by a newer query")
)

type (
	// MealQuery mirrors the storefront's /meals filter parameters; zero
	// values mean "no filter".
	MealQuery struct {
		Category   string `query:"category"`
		Diet       string `query:"diet"`
		MinProtein int    `query:"min_protein"`
	}

	MealListResponse struct {
		Items []entities.MealRecord `json:"items"`
		Total int                   `json:"total"`
	}
)
