package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/matching"
	"github.com/volunteerconnect/server/internal/models"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
	"github.com/volunteerconnect/server/pkg/logger"
)

// Event submission limits.
const (
	eventNameMax     = 100
	eventDescMax     = 500
	eventLocationMax = 200
	minSkills        = 1
	maxSkills        = 5
	maxDaysAhead     = 365
)

var locationPattern = regexp.MustCompile(`^[A-Za-z0-9\s,.-]+$`)

// CreateEventInput carries an event submission.
type CreateEventInput struct {
	Name           string
	Description    string
	Location       string
	RequiredSkills []string
	Urgency        string
	EventDate      string
	OrganizerEmail string
}

// UpdateEventInput carries the organizer-editable fields. Nil pointers leave
// the stored value untouched.
type UpdateEventInput struct {
	Status    *string
	Urgency   *string
	EventDate *string
}

// EventServiceConfig tunes the event service.
type EventServiceConfig struct {
	Clock func() time.Time
}

// EventService manages event creation, listing, and organizer updates.
type EventService struct {
	db            *gorm.DB
	notifications *NotificationService
	now           func() time.Time
}

// NewEventService constructs an EventService.
func NewEventService(db *gorm.DB, notifications *NotificationService, cfg EventServiceConfig) (*EventService, error) {
	if db == nil {
		return nil, errors.New("event service: db is required")
	}

	now := time.Now
	if cfg.Clock != nil {
		now = cfg.Clock
	}

	return &EventService{db: db, notifications: notifications, now: now}, nil
}

// Create validates the submission and persists a new Active event.
// Rules run in a fixed order and the first failure wins; each failure maps to
// a 400 with the rule's message. The date-range rule applies at creation time
// only and is never re-checked.
func (s *EventService) Create(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	ctx = ensureContext(ctx)

	if err := s.validate(input); err != nil {
		return nil, err
	}

	event := models.Event{
		Name:           strings.TrimSpace(input.Name),
		Description:    strings.TrimSpace(input.Description),
		Location:       strings.TrimSpace(input.Location),
		RequiredSkills: datatypes.NewJSONSlice(input.RequiredSkills),
		Urgency:        input.Urgency,
		EventDate:      matching.DateOnly(input.EventDate),
		OrganizerEmail: input.OrganizerEmail,
		Status:         models.EventStatusActive,
	}

	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, fmt.Errorf("event service: create event: %w", err)
	}

	return &event, nil
}

func (s *EventService) validate(input CreateEventInput) error {
	// An empty skills slice is present but out of range; only an absent one
	// counts as missing, so the count rule below gets to report it.
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Location) == "" ||
		input.RequiredSkills == nil ||
		strings.TrimSpace(input.Urgency) == "" ||
		strings.TrimSpace(input.EventDate) == "" {
		return apperrors.NewBadRequest("Missing required fields")
	}

	if utf8.RuneCountInString(input.Name) > eventNameMax {
		return apperrors.NewBadRequest(fmt.Sprintf("Event name must be %d characters or less", eventNameMax))
	}

	for _, skill := range input.RequiredSkills {
		if !models.IsValidSkill(skill) {
			return apperrors.NewBadRequest("Invalid skills provided")
		}
	}

	switch input.Urgency {
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
	default:
		return apperrors.NewBadRequest("Invalid urgency level")
	}

	eventDate, err := time.Parse("2006-01-02", matching.DateOnly(input.EventDate))
	if err != nil {
		return apperrors.NewBadRequest("Invalid event date format")
	}

	// Calendar-date comparison: time-of-day never factors in, and both
	// boundary dates (today, today+365) are accepted.
	today, _ := time.Parse("2006-01-02", todayString(s.now))
	if eventDate.Before(today) {
		return apperrors.NewBadRequest("Event date cannot be in the past")
	}

	if eventDate.After(today.AddDate(0, 0, maxDaysAhead)) {
		return apperrors.NewBadRequest("Event date cannot be more than 1 year in the future")
	}

	if len(input.RequiredSkills) < minSkills || len(input.RequiredSkills) > maxSkills {
		return apperrors.NewBadRequest(fmt.Sprintf("Number of required skills must be between %d and %d", minSkills, maxSkills))
	}

	if !locationPattern.MatchString(input.Location) {
		return apperrors.NewBadRequest("Location contains invalid characters")
	}

	if len(strings.Fields(strings.TrimSpace(input.Description))) < 5 {
		return apperrors.NewBadRequest("Event description must contain at least 5 words")
	}

	if utf8.RuneCountInString(input.Description) > eventDescMax {
		return apperrors.NewBadRequest(fmt.Sprintf("Event description must be %d characters or less", eventDescMax))
	}

	if utf8.RuneCountInString(input.Location) > eventLocationMax {
		return apperrors.NewBadRequest(fmt.Sprintf("Location must be %d characters or less", eventLocationMax))
	}

	return nil
}

// List returns every event, newest first. Volunteers browse the full list.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	ctx = ensureContext(ctx)

	var events []models.Event
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("event service: list events: %w", err)
	}
	return events, nil
}

// ListByOrganizer returns the events created by the supplied organizer.
func (s *EventService) ListByOrganizer(ctx context.Context, organizerEmail string) ([]models.Event, error) {
	ctx = ensureContext(ctx)

	var events []models.Event
	if err := s.db.WithContext(ctx).
		Where("organizer_email = ?", organizerEmail).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("event service: list organizer events: %w", err)
	}
	return events, nil
}

// Get loads a single event by id.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	ctx = ensureContext(ctx)

	var event models.Event
	if err := s.db.WithContext(ctx).Take(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Event not found")
		}
		return nil, fmt.Errorf("event service: load event: %w", err)
	}
	return &event, nil
}

// Update applies organizer edits to an event and notifies volunteers with a
// history entry for it. Events belonging to another organizer read as absent.
func (s *EventService) Update(ctx context.Context, organizerEmail, id string, input UpdateEventInput) (*models.Event, error) {
	ctx = ensureContext(ctx)

	var event models.Event
	if err := s.db.WithContext(ctx).Take(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Event not found")
		}
		return nil, fmt.Errorf("event service: load event: %w", err)
	}

	if event.OrganizerEmail != organizerEmail {
		return nil, apperrors.NewNotFound("Event not found")
	}

	updates := map[string]any{}

	if input.Status != nil {
		switch *input.Status {
		case models.EventStatusActive, models.EventStatusCancelled, models.EventStatusCompleted:
			updates["status"] = *input.Status
		default:
			return nil, apperrors.NewBadRequest("Invalid event status")
		}
	}

	if input.Urgency != nil {
		switch *input.Urgency {
		case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
			updates["urgency"] = *input.Urgency
		default:
			return nil, apperrors.NewBadRequest("Invalid urgency level")
		}
	}

	if input.EventDate != nil {
		if _, err := time.Parse("2006-01-02", matching.DateOnly(*input.EventDate)); err != nil {
			return nil, apperrors.NewBadRequest("Invalid event date format")
		}
		updates["event_date"] = matching.DateOnly(*input.EventDate)
	}

	if len(updates) == 0 {
		return &event, nil
	}

	if err := s.db.WithContext(ctx).Model(&event).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("event service: update event: %w", err)
	}

	// Notification failures never fail the update; it already committed.
	if err := s.notifyEventUpdate(ctx, &event); err != nil {
		logger.WithModule("events").Warn("event update notifications", zap.Error(err))
	}

	if err := s.db.WithContext(ctx).Take(&event, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("event service: reload event: %w", err)
	}
	return &event, nil
}

// notifyEventUpdate fans an event_update notification out to every volunteer
// holding a history entry for the event, deduplicated per volunteer.
func (s *EventService) notifyEventUpdate(ctx context.Context, event *models.Event) error {
	if s.notifications == nil {
		return nil
	}

	var entries []models.VolunteerHistory
	if err := s.db.WithContext(ctx).
		Where("event_id = ?", event.ID).
		Find(&entries).Error; err != nil {
		return fmt.Errorf("event service: list history: %w", err)
	}

	var errs error
	seen := map[string]struct{}{}
	for _, entry := range entries {
		if _, ok := seen[entry.VolunteerID]; ok {
			continue
		}
		seen[entry.VolunteerID] = struct{}{}

		if _, err := s.notifications.Create(ctx, CreateNotificationInput{
			UserEmail: entry.VolunteerID,
			Message:   fmt.Sprintf("'%s' event has been updated", event.Name),
			Type:      models.NotificationTypeEventUpdate,
		}); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
