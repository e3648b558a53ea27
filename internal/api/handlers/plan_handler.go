package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/internal/api/presenters"
	"proteinfuel-gateway/pkg/notifier"
	"proteinfuel-gateway/pkg/plan"
)

type (
	PlanHandler interface {
		CreateSession(c *fiber.Ctx) error
		GetPlan(c *fiber.Ctx) error
		UpdatePlan(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		GetNotifications(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
		notifier    notifier.Notifier
		validator   *validator.Validate
	}
)

func NewPlanHandler(planService plan.PlanService, notifier notifier.Notifier, validator *validator.Validate) PlanHandler {
	return &planHandler{
		planService: planService,
		notifier:    notifier,
		validator:   validator,
	}
}

func (h *planHandler) CreateSession(c *fiber.Ctx) error {
	res, err := h.planService.CreateSession(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSession)
}

func (h *planHandler) GetPlan(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	res, err := h.planService.GetPlan(c.Context(), sessionID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlan)
}

func (h *planHandler) UpdatePlan(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.UpdatePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePlan, err)
	}

	res, err := h.planService.UpdateFields(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePlan)
}

func (h *planHandler) AddItem(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	req := new(domain.AddPlanItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPlanItem, err)
	}

	item, err := h.planService.AddItem(c.Context(), sessionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPlanItem, err)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessAddPlanItem)
}

func (h *planHandler) GetNotifications(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	notifications := h.notifier.Drain(sessionID)
	return presenters.SuccessResponse(c, fiber.Map{
		"notifications": notifications,
	}, fiber.StatusOK, domain.MessageSuccessGetNotification)
}
