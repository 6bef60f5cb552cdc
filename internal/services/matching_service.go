package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/matching"
	"github.com/volunteerconnect/server/internal/models"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
	"github.com/volunteerconnect/server/pkg/logger"
	"github.com/volunteerconnect/server/pkg/metrics"
)

// MatchingService surfaces events to volunteers and records accepted matches.
type MatchingService struct {
	db            *gorm.DB
	profiles      *ProfileService
	notifications *NotificationService
	now           func() time.Time
}

// NewMatchingService constructs a MatchingService.
func NewMatchingService(db *gorm.DB, profiles *ProfileService, notifications *NotificationService) (*MatchingService, error) {
	if db == nil {
		return nil, errors.New("matching service: db is required")
	}
	if profiles == nil {
		return nil, errors.New("matching service: profile service is required")
	}
	return &MatchingService{
		db:            db,
		profiles:      profiles,
		notifications: notifications,
		now:           time.Now,
	}, nil
}

// ListMatches returns the Active events matching the volunteer's skills and
// availability, excluding events the volunteer already accepted. A missing
// profile is a 404.
func (s *MatchingService) ListMatches(ctx context.Context, email string) ([]models.Event, error) {
	ctx = ensureContext(ctx)

	profile, err := s.profiles.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.EventStatusActive).
		Order("event_date ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("matching service: list events: %w", err)
	}

	accepted, err := s.acceptedEventIDs(ctx, email)
	if err != nil {
		return nil, err
	}

	candidate := matching.Profile{
		Skills:       profile.Skills,
		Availability: toMatchingSlots(profile.Availability),
	}

	matched := make([]models.Event, 0, len(events))
	for _, event := range events {
		if _, ok := accepted[event.ID]; ok {
			continue
		}

		if matching.Matches(matching.Event{
			RequiredSkills: event.RequiredSkills,
			EventDate:      event.EventDate,
		}, candidate) {
			matched = append(matched, event)
		}
	}

	return matched, nil
}

// Accept records the volunteer's acceptance of a matched event: a Pending
// history entry plus an event_match notification. There is no capacity or
// double-booking guard at this layer.
func (s *MatchingService) Accept(ctx context.Context, email, eventID string) (*models.VolunteerHistory, error) {
	ctx = ensureContext(ctx)

	if eventID == "" {
		return nil, apperrors.NewBadRequest("Missing required fields")
	}

	var event models.Event
	if err := s.db.WithContext(ctx).Take(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Event not found")
		}
		return nil, fmt.Errorf("matching service: load event: %w", err)
	}

	entry := models.VolunteerHistory{
		VolunteerID:       email,
		VolunteerEmail:    email,
		OrganizerEmail:    event.OrganizerEmail,
		EventID:           event.ID,
		EventName:         event.Name,
		ParticipationDate: s.now(),
		Status:            models.HistoryStatusPending,
	}

	if profile, err := s.profiles.Get(ctx, email); err == nil {
		entry.VolunteerName = profile.FullName
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("matching service: record match: %w", err)
	}

	if s.notifications != nil {
		// The match is already recorded; a failed notification must not
		// roll it back.
		if _, err := s.notifications.Create(ctx, CreateNotificationInput{
			UserEmail: email,
			Message:   fmt.Sprintf("You've been matched with '%s' event", event.Name),
			Type:      models.NotificationTypeEventMatch,
		}); err != nil {
			logger.WithModule("matching").Warn("match notification", zap.Error(err))
		}
	}

	metrics.MatchAccepts.Inc()

	return &entry, nil
}

func (s *MatchingService) acceptedEventIDs(ctx context.Context, email string) (map[string]struct{}, error) {
	var entries []models.VolunteerHistory
	if err := s.db.WithContext(ctx).
		Select("event_id").
		Where("volunteer_id = ?", email).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("matching service: list history: %w", err)
	}

	ids := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		ids[entry.EventID] = struct{}{}
	}
	return ids, nil
}

func toMatchingSlots(slots []models.AvailabilitySlot) []matching.Slot {
	out := make([]matching.Slot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, matching.Slot{Date: slot.Date, TimeSlots: slot.TimeSlots})
	}
	return out
}
