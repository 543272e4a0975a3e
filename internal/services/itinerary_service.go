package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"arca/internal/itinerary"
	"arca/internal/models/request_models"
	"arca/pkg/logger"
	"arca/pkg/metrics"
	"arca/pkg/utils"
)

// ItineraryObserver sees every new itinerary value right after it replaces the
// previous one. Observers run synchronously and must not call back into the
// service.
type ItineraryObserver func(ctx context.Context, owner string, it itinerary.Itinerary)

const (
	// planIdle is how long an owner's plan stays cached without requests. An
	// evicted plan is read back from the store on next use.
	planIdle   = 30 * time.Minute
	pruneEvery = time.Minute
)

type ItineraryServiceInterface interface {
	Current(ctx context.Context, owner string) itinerary.Itinerary
	Summary(ctx context.Context, owner string) itinerary.Summary
	Details(ctx context.Context, owner string) itinerary.TripDetails
	UpdateDetails(ctx context.Context, owner string, req request_models.UpdateTripDetailsRequest) (itinerary.TripDetails, error)
	Move(ctx context.Context, owner string, req request_models.MoveActivityRequest) (itinerary.Itinerary, error)
	AddActivity(ctx context.Context, owner string, dayID string) (itinerary.Itinerary, error)
	AddDay(ctx context.Context, owner string) (itinerary.Itinerary, error)
	UpdateActivity(ctx context.Context, owner string, activityID string, req request_models.UpdateActivityRequest) (itinerary.Itinerary, error)
	Reset(ctx context.Context, owner string) itinerary.Itinerary
	Subscribe(fn ItineraryObserver)
}

type ownerPlan struct {
	itinerary itinerary.Itinerary
	details   itinerary.TripDetails
	lastUsed  time.Time
}

// ItineraryService keeps the current plan of each owner. Every mutation swaps
// in a whole new value under one lock, so readers never see half an update.
type ItineraryService struct {
	mu        sync.Mutex
	plans     map[string]*ownerPlan
	lastPrune time.Time
	observers []ItineraryObserver

	store   ItineraryStoreInterface
	log     logger.Logger
	metrics *metrics.Metrics
	newID   func(prefix string) string
	now     func() time.Time
}

// NewItineraryService wires the store in as the first observer, so every new
// value is mirrored to the slot.
func NewItineraryService(store ItineraryStoreInterface, log logger.Logger, m *metrics.Metrics) *ItineraryService {
	s := &ItineraryService{
		plans:   make(map[string]*ownerPlan),
		store:   store,
		log:     log.With("component", "itinerary_service"),
		metrics: m,
		newID:   itinerary.NewID,
		now:     time.Now,
	}
	s.Subscribe(store.Save)
	return s
}

func (s *ItineraryService) Subscribe(fn ItineraryObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *ItineraryService) Current(ctx context.Context, owner string) itinerary.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planLocked(ctx, owner).itinerary
}

func (s *ItineraryService) Summary(ctx context.Context, owner string) itinerary.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.planLocked(ctx, owner)
	summary := itinerary.Summarize(p.itinerary)
	summary.TripDetails = p.details
	return summary
}

func (s *ItineraryService) Details(ctx context.Context, owner string) itinerary.TripDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planLocked(ctx, owner).details
}

// UpdateDetails replaces the trip header and saves it right away.
func (s *ItineraryService) UpdateDetails(ctx context.Context, owner string, req request_models.UpdateTripDetailsRequest) (itinerary.TripDetails, error) {
	details := itinerary.TripDetails{
		Title:       strings.TrimSpace(req.Title),
		Destination: strings.TrimSpace(req.Destination),
		Travelers:   req.Travelers,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.planLocked(ctx, owner)
	if err := details.Validate(); err != nil {
		s.metrics.Mutations.WithLabelValues("update_details", "rejected").Inc()
		return p.details, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	if details == p.details {
		s.metrics.Mutations.WithLabelValues("update_details", "unchanged").Inc()
		return p.details, nil
	}

	p.details = details
	s.store.SaveDetails(ctx, owner, details)
	s.metrics.Mutations.WithLabelValues("update_details", "changed").Inc()
	return details, nil
}

func (s *ItineraryService) Move(ctx context.Context, owner string, req request_models.MoveActivityRequest) (itinerary.Itinerary, error) {
	if req.TargetIndex == nil {
		return s.Current(ctx, owner), fmt.Errorf("%w: target_index is required", utils.ErrInvalidInput)
	}
	return s.apply(ctx, owner, "move", func(it itinerary.Itinerary) itinerary.Result {
		return itinerary.Move(it, req.ActivityID, req.TargetDayID, *req.TargetIndex)
	})
}

func (s *ItineraryService) AddActivity(ctx context.Context, owner string, dayID string) (itinerary.Itinerary, error) {
	return s.apply(ctx, owner, "add_activity", func(it itinerary.Itinerary) itinerary.Result {
		return itinerary.AddActivity(it, dayID, s.newID("act"))
	})
}

func (s *ItineraryService) AddDay(ctx context.Context, owner string) (itinerary.Itinerary, error) {
	return s.apply(ctx, owner, "add_day", func(it itinerary.Itinerary) itinerary.Result {
		return itinerary.AddDay(it, s.newID("day"))
	})
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, owner string, activityID string, req request_models.UpdateActivityRequest) (itinerary.Itinerary, error) {
	activityType := itinerary.ActivityType(req.Type)
	if !activityType.Valid() {
		return s.Current(ctx, owner), fmt.Errorf("%w: unknown activity type %q", utils.ErrInvalidInput, req.Type)
	}
	updated := itinerary.Activity{
		ID:          activityID,
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
		Duration:    req.Duration,
		Cost:        req.Cost,
		Location:    req.Location,
		Type:        activityType,
	}
	return s.apply(ctx, owner, "update_activity", func(it itinerary.Itinerary) itinerary.Result {
		return itinerary.UpdateActivity(it, updated)
	})
}

// Reset puts the seed plan back.
func (s *ItineraryService) Reset(ctx context.Context, owner string) itinerary.Itinerary {
	it, _ := s.apply(ctx, owner, "reset", func(itinerary.Itinerary) itinerary.Result {
		return itinerary.Result{Itinerary: itinerary.Seed(), Changed: true}
	})
	return it
}

// apply runs one mutation against the owner's current plan. An unchanged
// result keeps the old value; its reason comes back as a service error while
// the returned itinerary is still the current one.
func (s *ItineraryService) apply(ctx context.Context, owner string, op string, mutate func(itinerary.Itinerary) itinerary.Result) (itinerary.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.planLocked(ctx, owner)
	res := mutate(p.itinerary)
	s.metrics.Mutations.WithLabelValues(op, outcome(res)).Inc()

	if !res.Changed {
		if res.Err != nil {
			s.log.Debug("Itinerary unchanged", "owner", owner, "operation", op, "reason", res.Err)
		}
		return res.Itinerary, serviceError(res.Err)
	}

	p.itinerary = res.Itinerary
	for _, observe := range s.observers {
		observe(ctx, owner, res.Itinerary)
	}
	return res.Itinerary, nil
}

// planLocked loads the owner's plan on first use and drops plans nobody has
// touched for planIdle; caller holds mu.
func (s *ItineraryService) planLocked(ctx context.Context, owner string) *ownerPlan {
	now := s.now()
	if now.Sub(s.lastPrune) >= pruneEvery {
		for key, p := range s.plans {
			if now.Sub(p.lastUsed) > planIdle {
				delete(s.plans, key)
			}
		}
		s.lastPrune = now
	}

	if p, ok := s.plans[owner]; ok {
		p.lastUsed = now
		return p
	}
	p := &ownerPlan{
		itinerary: s.store.Load(ctx, owner),
		details:   s.store.LoadDetails(ctx, owner),
		lastUsed:  now,
	}
	s.plans[owner] = p
	return p
}

func outcome(res itinerary.Result) string {
	switch {
	case res.Changed:
		return "changed"
	case res.NotFound():
		return "not_found"
	case res.Err != nil:
		return "rejected"
	default:
		return "unchanged"
	}
}

func serviceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, itinerary.ErrActivityNotFound):
		return utils.ErrActivityNotFound
	case errors.Is(err, itinerary.ErrDayNotFound):
		return utils.ErrDayNotFound
	case errors.Is(err, itinerary.ErrEmptyItinerary):
		return utils.ErrEmptyItinerary
	default:
		return err
	}
}
