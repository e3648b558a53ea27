package plan

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/entities"
)

type (
	// PlanRepository owns the in-progress plans, one per session. Plans
	// live in memory only; nothing survives the process by design.
	PlanRepository interface {
		CreateSession(ctx context.Context) (string, error)
		GetPlan(ctx context.Context, sessionID string) (*entities.SubscriptionPlan, error)
		SavePlan(ctx context.Context, sessionID string, p *entities.SubscriptionPlan) error
		SessionExists(ctx context.Context, sessionID string) bool
	}

	planRepository struct {
		mu    sync.RWMutex
		plans map[string]*entities.SubscriptionPlan
	}
)

func NewPlanRepository() PlanRepository {
	return &planRepository{
		plans: make(map[string]*entities.SubscriptionPlan),
	}
}

func (r *planRepository) CreateSession(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessionID := uuid.New().String()
	r.plans[sessionID] = entities.NewSubscriptionPlan()
	return sessionID, nil
}

func (r *planRepository) GetPlan(ctx context.Context, sessionID string) (*entities.SubscriptionPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plans[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := *p
	cp.Items = append([]entities.PlanLineItem{}, p.Items...)
	return &cp, nil
}

func (r *planRepository) SavePlan(ctx context.Context, sessionID string, p *entities.SubscriptionPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	cp := *p
	cp.Items = append([]entities.PlanLineItem{}, p.Items...)
	r.plans[sessionID] = &cp
	return nil
}

func (r *planRepository) SessionExists(ctx context.Context, sessionID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.plans[sessionID]
	return ok
}
