package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/entities"
	"proteinfuel-gateway/pkg/notifier"
	"proteinfuel-gateway/pkg/plan"
)

type (
	// SubscriptionService is the single point of contact with the
	// storefront's subscription endpoint: one attempt per call, no
	// retry, plan untouched on failure.
	SubscriptionService interface {
		Submit(ctx context.Context, sessionID string) (domain.SubscriptionResponse, error)
	}

	subscriptionService struct {
		baseURL     string
		client      *http.Client
		planService plan.PlanService
		notifier    notifier.Notifier

		mu       sync.Mutex
		inFlight map[string]bool
	}
)

func NewSubscriptionService(baseURL string, timeout time.Duration, planService plan.PlanService, notifier notifier.Notifier) SubscriptionService {
	return &subscriptionService{
		baseURL:     baseURL,
		client:      &http.Client{Timeout: timeout},
		planService: planService,
		notifier:    notifier,
		inFlight:    make(map[string]bool),
	}
}

func (s *subscriptionService) Submit(ctx context.Context, sessionID string) (domain.SubscriptionResponse, error) {
	if !s.begin(sessionID) {
		return domain.SubscriptionResponse{}, domain.ErrSubmissionInFlight
	}
	defer s.end(sessionID)

	res, err := s.planService.GetPlan(ctx, sessionID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	// Validated before any network interaction; no payload is built for
	// a plan without an email.
	if res.Plan.Email == "" {
		s.notifier.Notify(sessionID, domain.MessageEmailRequired, notifier.DurationShort)
		return domain.SubscriptionResponse{}, domain.ErrEmailRequired
	}

	payload := BuildPayload(res.Plan)
	if err := s.post(ctx, payload); err != nil {
		log.Errorf("subscription submit failed: %v", err)
		s.notifier.Notify(sessionID, domain.MessageFailedSubscription, notifier.DurationLong)
		return domain.SubscriptionResponse{}, domain.ErrSubscriptionFailed
	}

	// Items clear only after the storefront acknowledged the plan; the
	// contact fields stay for the next one.
	if err := s.planService.ClearItems(ctx, sessionID); err != nil {
		return domain.SubscriptionResponse{}, err
	}

	s.notifier.Notify(sessionID, domain.MessageSuccessSubscription, notifier.DurationLong)
	return domain.SubscriptionResponse{Submitted: true, ItemCount: len(payload.Items)}, nil
}

// BuildPayload maps a plan to the storefront request shape. Only meal
// ids and serving counts cross the boundary; the storefront recomputes
// price and macros itself.
func BuildPayload(p entities.SubscriptionPlan) domain.SubscriptionRequest {
	items := make([]domain.SubscriptionItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, domain.SubscriptionItem{
			MealID:   item.MealID,
			Servings: item.Servings,
		})
	}
	return domain.SubscriptionRequest{
		Email:                p.Email,
		Frequency:            p.Frequency,
		TargetProteinGPerDay: p.TargetProteinG,
		Items:                items,
	}
}

func (s *subscriptionService) post(ctx context.Context, payload domain.SubscriptionRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/subscriptions", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return domain.ErrSubscriptionFailed
	}
	return nil
}

func (s *subscriptionService) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *subscriptionService) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, sessionID)
}
