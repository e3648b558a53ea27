package plan

import (
	"context"
	"fmt"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/entities"
	"proteinfuel-gateway/pkg/macro"
	"proteinfuel-gateway/pkg/notifier"
)

type (
	// PlanService is the ledger for in-progress subscription plans:
	// field updates, append-only item additions and aggregate totals.
	PlanService interface {
		CreateSession(ctx context.Context) (domain.CreateSessionResponse, error)
		GetPlan(ctx context.Context, sessionID string) (domain.PlanResponse, error)
		UpdateFields(ctx context.Context, sessionID string, req domain.UpdatePlanRequest) (domain.PlanResponse, error)
		AddItem(ctx context.Context, sessionID string, req domain.AddPlanItemRequest) (entities.PlanLineItem, error)
		ClearItems(ctx context.Context, sessionID string) error
	}

	planService struct {
		planRepository PlanRepository
		notifier       notifier.Notifier
	}
)

func NewPlanService(planRepository PlanRepository, notifier notifier.Notifier) PlanService {
	return &planService{
		planRepository: planRepository,
		notifier:       notifier,
	}
}

func (s *planService) CreateSession(ctx context.Context) (domain.CreateSessionResponse, error) {
	sessionID, err := s.planRepository.CreateSession(ctx)
	if err != nil {
		return domain.CreateSessionResponse{}, err
	}
	return domain.CreateSessionResponse{SessionID: sessionID}, nil
}

func (s *planService) GetPlan(ctx context.Context, sessionID string) (domain.PlanResponse, error) {
	p, err := s.planRepository.GetPlan(ctx, sessionID)
	if err != nil {
		return domain.PlanResponse{}, err
	}
	return domain.PlanResponse{Plan: *p, Totals: computeTotals(p)}, nil
}

func (s *planService) UpdateFields(ctx context.Context, sessionID string, req domain.UpdatePlanRequest) (domain.PlanResponse, error) {
	p, err := s.planRepository.GetPlan(ctx, sessionID)
	if err != nil {
		return domain.PlanResponse{}, err
	}

	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Frequency != nil {
		p.Frequency = *req.Frequency
	}
	if req.Target != nil {
		p.TargetProteinG = *req.Target
	}

	if err := s.planRepository.SavePlan(ctx, sessionID, p); err != nil {
		return domain.PlanResponse{}, err
	}
	return domain.PlanResponse{Plan: *p, Totals: computeTotals(p)}, nil
}

// AddItem snapshots the meal at the clamped serving factor and appends
// it to the plan. Invalid serving counts are clamped, never rejected,
// so the operation only fails when the session is unknown.
func (s *planService) AddItem(ctx context.Context, sessionID string, req domain.AddPlanItemRequest) (entities.PlanLineItem, error) {
	p, err := s.planRepository.GetPlan(ctx, sessionID)
	if err != nil {
		return entities.PlanLineItem{}, err
	}

	factor := macro.ClampServings(req.Servings)
	item := entities.PlanLineItem{
		MealID:   req.Meal.ID,
		Title:    req.Meal.Title,
		Servings: factor,
		Price:    macro.ScalePrice(req.Meal.Price, factor),
		Macros:   macro.Scale(req.Meal.Macros, factor),
	}
	p.Items = append(p.Items, item)

	if err := s.planRepository.SavePlan(ctx, sessionID, p); err != nil {
		return entities.PlanLineItem{}, err
	}

	s.notifier.Notify(sessionID, fmt.Sprintf("%s added to plan", req.Meal.Title), notifier.DurationLong)
	return item, nil
}

func (s *planService) ClearItems(ctx context.Context, sessionID string) error {
	p, err := s.planRepository.GetPlan(ctx, sessionID)
	if err != nil {
		return err
	}
	p.Items = []entities.PlanLineItem{}
	return s.planRepository.SavePlan(ctx, sessionID, p)
}

func computeTotals(p *entities.SubscriptionPlan) domain.PlanTotals {
	var totals domain.PlanTotals
	for _, item := range p.Items {
		totals.TotalProteinG += item.Macros.Protein
		totals.TotalCalories += item.Macros.Calories
		totals.TotalPrice += item.Price
	}
	return totals
}
