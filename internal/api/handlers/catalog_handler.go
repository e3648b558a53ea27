package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/internal/api/presenters"
	"proteinfuel-gateway/pkg/catalog"
)

type (
	CatalogHandler interface {
		GetMeals(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
	}
}

func (h *catalogHandler) GetMeals(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	query := domain.MealQuery{
		Category:   c.Query("category"),
		Diet:       c.Query("diet"),
		MinProtein: c.QueryInt("min_protein", 0),
	}

	res, err := h.catalogService.ListMeals(c.Context(), sessionID, query)
	if err != nil {
		if errors.Is(err, domain.ErrStaleQuery) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageStaleMealQuery, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}
