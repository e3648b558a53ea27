package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/internal/api/presenters"
	"proteinfuel-gateway/pkg/subscription"
)

type (
	SubscriptionHandler interface {
		Submit(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

func (h *subscriptionHandler) Submit(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	res, err := h.subscriptionService.Submit(c.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRequired):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageEmailRequired, err)
		case errors.Is(err, domain.ErrSubmissionInFlight):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSubscription, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSubscription, err)
		}
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscription)
}
