package services

import (
	"context"

	"arca/internal/itinerary"
	"arca/internal/repositories"
	"arca/pkg/logger"
	"arca/pkg/metrics"
)

const (
	// ItinerarySlotKey is the fixed slot the builder mirrors its plan into.
	ItinerarySlotKey = "travel-itinerary"
	// TripDetailsSlotKey holds the editable trip header next to the plan.
	TripDetailsSlotKey = "travel-itinerary-details"
)

// ItineraryStoreInterface mirrors itinerary values into the slot repository.
// Neither method returns an error: failures are logged and the caller keeps
// working with the value it has.
type ItineraryStoreInterface interface {
	// Load returns the stored itinerary, or the seed when the slot is empty,
	// unreadable or malformed.
	Load(ctx context.Context, owner string) itinerary.Itinerary
	Save(ctx context.Context, owner string, it itinerary.Itinerary)

	// LoadDetails returns the stored trip header, or the default one.
	LoadDetails(ctx context.Context, owner string) itinerary.TripDetails
	SaveDetails(ctx context.Context, owner string, details itinerary.TripDetails)
}

type ItineraryStore struct {
	repo    repositories.SlotRepository
	log     logger.Logger
	metrics *metrics.Metrics
	seed    func() itinerary.Itinerary
	details func() itinerary.TripDetails
}

func NewItineraryStore(repo repositories.SlotRepository, log logger.Logger, m *metrics.Metrics) *ItineraryStore {
	return &ItineraryStore{
		repo:    repo,
		log:     log.With("component", "itinerary_store"),
		metrics: m,
		seed:    itinerary.Seed,
		details: itinerary.DefaultTripDetails,
	}
}

func (s *ItineraryStore) Load(ctx context.Context, owner string) itinerary.Itinerary {
	raw, found, err := s.repo.GetSlot(ctx, owner, ItinerarySlotKey)
	if err != nil {
		s.log.Error("Failed to read saved itinerary", "owner", owner, "error", err)
		s.metrics.PersistenceFailures.WithLabelValues("load").Inc()
		return s.fromSeed()
	}
	if !found {
		return s.fromSeed()
	}

	it, err := itinerary.Decode([]byte(raw))
	if err != nil {
		s.log.Warn("Failed to load saved itinerary", "owner", owner, "error", err)
		s.metrics.PersistenceFailures.WithLabelValues("decode").Inc()
		return s.fromSeed()
	}
	s.metrics.SlotLoads.WithLabelValues("stored").Inc()
	return it
}

func (s *ItineraryStore) fromSeed() itinerary.Itinerary {
	s.metrics.SlotLoads.WithLabelValues("seed").Inc()
	return s.seed()
}

func (s *ItineraryStore) Save(ctx context.Context, owner string, it itinerary.Itinerary) {
	data, err := itinerary.Encode(it)
	if err != nil {
		s.log.Error("Failed to encode itinerary", "owner", owner, "error", err)
		s.metrics.PersistenceFailures.WithLabelValues("encode").Inc()
		return
	}
	if err := s.repo.PutSlot(ctx, owner, ItinerarySlotKey, string(data)); err != nil {
		s.log.Error("Failed to save itinerary", "owner", owner, "error", err)
		s.metrics.PersistenceFailures.WithLabelValues("save").Inc()
		return
	}
	s.log.Debug("Itinerary saved", "owner", owner, "days", len(it), "bytes", len(data))
}

func (s *ItineraryStore) LoadDetails(ctx context.Context, owner string) itinerary.TripDetails {
	raw, found, err := s.repo.GetSlot(ctx, owner, TripDetailsSlotKey)
	if err != nil {
		s.log.Error("Failed to read saved trip details", "owner", owner, "error", err)
		s.metrics.PersistenceFailures.WithLabelValues("load").Inc()
		return s.details()
	}
	if !found {
		return s.details()
	}

	details, err := itinerary.DecodeDetails([]byte(raw))
	if err != nil {
		s.log.Warn("Failed to load saved trip details", "owner", owner, "error", err)
		s.metrics.PersistenceFailures.WithLabelValues("decode").Inc()
		return s.details()
	}
	return details
}

func (s *ItineraryStore) SaveDetails(ctx context.Context, owner string, details itinerary.TripDetails) {
	data, err := itinerary.EncodeDetails(details)
	if err != nil {
		s.log.Error("Failed to encode trip details", "owner", owner, "error", err)
		s.metrics.PersistenceFailures.WithLabelValues("encode").Inc()
		return
	}
	if err := s.repo.PutSlot(ctx, owner, TripDetailsSlotKey, string(data)); err != nil {
		s.log.Error("Failed to save trip details", "owner", owner, "error", err)
		s.metrics.PersistenceFailures.WithLabelValues("save").Inc()
	}
}
