package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/entities"
)

type (
	// CatalogService fronts the storefront's meal catalog. Fetch or
	// parse failures degrade to an empty result list with a logged
	// diagnostic; they never take the session down.
	CatalogService interface {
		ListMeals(ctx context.Context, sessionID string, query domain.MealQuery) (domain.MealListResponse, error)
		Seed(ctx context.Context)
	}

	catalogService struct {
		baseURL string
		client  *http.Client

		// Query generations per session. A response is handed back only
		// if no newer query for the same session completed first, so a
		// slow stale fetch cannot overwrite fresher results.
		mu           sync.Mutex
		lastIssued   map[string]uint64
		lastAccepted map[string]uint64
	}

	mealListEnvelope struct {
		Items []mealRecord `json:"items"`
	}

	// mealRecord tolerates both id shapes the storefront emits.
	mealRecord struct {
		ID              string                    `json:"id"`
		AltID           string                    `json:"_id"`
		Title           string                    `json:"title"`
		Description     string                    `json:"description"`
		Price           float64                   `json:"price"`
		Macros          entities.NutritionProfile `json:"macros"`
		Category        string                    `json:"category"`
		DietTags        []string                  `json:"diet_tags"`
		IsCustomizable  bool                      `json:"is_customizable"`
		AvailableAddOns []string                  `json:"available_add_ons"`
	}
)

func NewCatalogService(baseURL string, timeout time.Duration) CatalogService {
	return &catalogService{
		baseURL:      baseURL,
		client:       &http.Client{Timeout: timeout},
		lastIssued:   make(map[string]uint64),
		lastAccepted: make(map[string]uint64),
	}
}

func (s *catalogService) ListMeals(ctx context.Context, sessionID string, query domain.MealQuery) (domain.MealListResponse, error) {
	generation := s.issueQuery(sessionID)

	items := s.fetchMeals(ctx, query)

	if !s.acceptQuery(sessionID, generation) {
		return domain.MealListResponse{}, domain.ErrStaleQuery
	}
	return domain.MealListResponse{Items: items, Total: len(items)}, nil
}

// Seed asks the storefront to load its demo catalog once at startup.
// Fire-and-forget: failures are logged and otherwise ignored.
func (s *catalogService) Seed(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/seed", nil)
	if err != nil {
		log.Warnf("seed request not built: %v", err)
		return
	}
	res, err := s.client.Do(req)
	if err != nil {
		log.Warnf("seed call failed: %v", err)
		return
	}
	defer res.Body.Close()
}

func (s *catalogService) fetchMeals(ctx context.Context, query domain.MealQuery) []entities.MealRecord {
	params := url.Values{}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Diet != "" {
		params.Set("diet", query.Diet)
	}
	if query.MinProtein > 0 {
		params.Set("min_protein", strconv.Itoa(query.MinProtein))
	}

	endpoint := s.baseURL + "/meals"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Errorf("meal catalog request not built: %v", err)
		return []entities.MealRecord{}
	}

	res, err := s.client.Do(req)
	if err != nil {
		log.Errorf("meal catalog fetch failed: %v", err)
		return []entities.MealRecord{}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Errorf("meal catalog fetch failed: %s", res.Status)
		return []entities.MealRecord{}
	}

	var envelope mealListEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		log.Errorf("meal catalog response not parsed: %v", err)
		return []entities.MealRecord{}
	}

	meals := make([]entities.MealRecord, 0, len(envelope.Items))
	for _, m := range envelope.Items {
		id := m.ID
		if id == "" {
			id = m.AltID
		}
		meals = append(meals, entities.MealRecord{
			ID:              id,
			Title:           m.Title,
			Description:     m.Description,
			Price:           m.Price,
			Macros:          m.Macros,
			Category:        m.Category,
			DietTags:        m.DietTags,
			IsCustomizable:  m.IsCustomizable,
			AvailableAddOns: m.AvailableAddOns,
		})
	}
	return meals
}

func (s *catalogService) issueQuery(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastIssued[sessionID]++
	return s.lastIssued[sessionID]
}

func (s *catalogService) acceptQuery(sessionID string, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation <= s.lastAccepted[sessionID] {
		return false
	}
	s.lastAccepted[sessionID] = generation
	return true
}
