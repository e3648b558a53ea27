package plan

import (
	"context"
	"testing"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/entities"
	"proteinfuel-gateway/pkg/notifier"
)

func newTestService(t *testing.T) (PlanService, notifier.Notifier, string) {
	t.Helper()
	n := notifier.NewNotifier()
	svc := NewPlanService(NewPlanRepository(), n)
	res, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error creating session: %v", err)
	}
	return svc, n, res.SessionID
}

func TestCreateSession(t *testing.T) {
	svc, _, sessionID := newTestService(t)

	res, err := svc.GetPlan(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Plan.Frequency != entities.FrequencyWeekly {
		t.Errorf("expected default frequency weekly, got %q", res.Plan.Frequency)
	}
	if res.Plan.TargetProteinG != entities.DefaultProteinTarget {
		t.Errorf("expected default target %d, got %d", entities.DefaultProteinTarget, res.Plan.TargetProteinG)
	}
	if len(res.Plan.Items) != 0 {
		t.Errorf("expected a fresh plan to have no items, got %d", len(res.Plan.Items))
	}
	if res.Totals != (domain.PlanTotals{}) {
		t.Errorf("expected all-zero totals on an empty plan, got %+v", res.Totals)
	}
}

func TestAddItem(t *testing.T) {
	meal := entities.MealRecord{
		ID:    "meal-1",
		Title: "Grilled Chicken Bowl",
		Price: 8.50,
		Macros: entities.NutritionProfile{
			Protein: 30, Carbs: 20, Fats: 5, Calories: 300,
		},
	}

	t.Run("ScalesSnapshotByServings", func(t *testing.T) {
		svc, _, sessionID := newTestService(t)

		item, err := svc.AddItem(context.Background(), sessionID, domain.AddPlanItemRequest{Meal: meal, Servings: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Price != 17.00 {
			t.Errorf("expected price 17.00, got %v", item.Price)
		}
		want := entities.NutritionProfile{Protein: 60.0, Carbs: 40.0, Fats: 10.0, Calories: 600}
		if item.Macros != want {
			t.Errorf("expected macros %+v, got %+v", want, item.Macros)
		}
		if item.MealID != "meal-1" || item.Title != "Grilled Chicken Bowl" {
			t.Errorf("expected snapshot of meal id and title, got %+v", item)
		}
	})

	t.Run("ClampsTinyServings", func(t *testing.T) {
		svc, _, sessionID := newTestService(t)

		item, err := svc.AddItem(context.Background(), sessionID, domain.AddPlanItemRequest{Meal: meal, Servings: 0.1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Servings != 0.25 {
			t.Errorf("expected servings clamped to 0.25, got %v", item.Servings)
		}
		if item.Price != 2.13 {
			t.Errorf("expected price 8.50 x 0.25 = 2.13, got %v", item.Price)
		}
	})

	t.Run("AppendsInCallOrderWithoutMerging", func(t *testing.T) {
		svc, _, sessionID := newTestService(t)
		ctx := context.Background()

		if _, err := svc.AddItem(ctx, sessionID, domain.AddPlanItemRequest{Meal: meal, Servings: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.AddItem(ctx, sessionID, domain.AddPlanItemRequest{Meal: meal, Servings: 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := svc.GetPlan(ctx, sessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Plan.Items) != 2 {
			t.Fatalf("expected duplicate meal ids to stay separate items, got %d", len(res.Plan.Items))
		}
		if res.Plan.Items[0].Servings != 1 || res.Plan.Items[1].Servings != 2 {
			t.Errorf("expected insertion order preserved, got %+v", res.Plan.Items)
		}
	})

	t.Run("QueuesAddedNotification", func(t *testing.T) {
		svc, n, sessionID := newTestService(t)

		if _, err := svc.AddItem(context.Background(), sessionID, domain.AddPlanItemRequest{Meal: meal, Servings: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		toasts := n.Drain(sessionID)
		if len(toasts) != 1 {
			t.Fatalf("expected one notification, got %d", len(toasts))
		}
		if toasts[0].Message != "Grilled Chicken Bowl added to plan" {
			t.Errorf("unexpected notification message %q", toasts[0].Message)
		}
		if toasts[0].DurationMS != 1800 {
			t.Errorf("expected 1800ms display duration, got %d", toasts[0].DurationMS)
		}
	})

	t.Run("UnknownSession", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.AddItem(context.Background(), "nope", domain.AddPlanItemRequest{Meal: meal, Servings: 1})
		if err != domain.ErrSessionNotFound {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestUpdateFields(t *testing.T) {
	svc, _, sessionID := newTestService(t)
	ctx := context.Background()

	meal := entities.MealRecord{ID: "meal-1", Title: "Bowl", Price: 5.00}
	if _, err := svc.AddItem(ctx, sessionID, domain.AddPlanItemRequest{Meal: meal, Servings: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email := "fit@example.com"
	frequency := entities.FrequencyMonthly
	target := 180
	res, err := svc.UpdateFields(ctx, sessionID, domain.UpdatePlanRequest{
		Email:     &email,
		Frequency: &frequency,
		Target:    &target,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Plan.Email != email || res.Plan.Frequency != frequency || res.Plan.TargetProteinG != target {
		t.Errorf("expected fields merged, got %+v", res.Plan)
	}
	if len(res.Plan.Items) != 1 {
		t.Errorf("field update must not touch items, got %d items", len(res.Plan.Items))
	}

	// A partial update leaves the other fields alone.
	newTarget := 90
	res, err = svc.UpdateFields(ctx, sessionID, domain.UpdatePlanRequest{Target: &newTarget})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Plan.Email != email || res.Plan.Frequency != frequency {
		t.Errorf("partial update clobbered untouched fields: %+v", res.Plan)
	}
	if res.Plan.TargetProteinG != newTarget {
		t.Errorf("expected target %d, got %d", newTarget, res.Plan.TargetProteinG)
	}
}

func TestTotals(t *testing.T) {
	svc, _, sessionID := newTestService(t)
	ctx := context.Background()

	first := entities.MealRecord{ID: "a", Title: "A", Price: 5.00, Macros: entities.NutritionProfile{Protein: 25, Calories: 400}}
	second := entities.MealRecord{ID: "b", Title: "B", Price: 7.25, Macros: entities.NutritionProfile{Protein: 32, Calories: 510}}

	if _, err := svc.AddItem(ctx, sessionID, domain.AddPlanItemRequest{Meal: first, Servings: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AddItem(ctx, sessionID, domain.AddPlanItemRequest{Meal: second, Servings: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := svc.GetPlan(ctx, sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Totals.TotalPrice != 12.25 {
		t.Errorf("expected total price 12.25, got %v", res.Totals.TotalPrice)
	}
	if res.Totals.TotalProteinG != 57 {
		t.Errorf("expected total protein 57, got %v", res.Totals.TotalProteinG)
	}
	if res.Totals.TotalCalories != 910 {
		t.Errorf("expected total calories 910, got %v", res.Totals.TotalCalories)
	}
}

func TestClearItems(t *testing.T) {
	svc, _, sessionID := newTestService(t)
	ctx := context.Background()

	email := "fit@example.com"
	if _, err := svc.UpdateFields(ctx, sessionID, domain.UpdatePlanRequest{Email: &email}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	meal := entities.MealRecord{ID: "a", Title: "A", Price: 5.00}
	if _, err := svc.AddItem(ctx, sessionID, domain.AddPlanItemRequest{Meal: meal, Servings: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.ClearItems(ctx, sessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := svc.GetPlan(ctx, sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Plan.Items) != 0 {
		t.Errorf("expected items cleared, got %d", len(res.Plan.Items))
	}
	if res.Plan.Email != email {
		t.Errorf("clear must keep scalar fields, lost email %q", res.Plan.Email)
	}
	if res.Totals != (domain.PlanTotals{}) {
		t.Errorf("expected zero totals after clear, got %+v", res.Totals)
	}
}
