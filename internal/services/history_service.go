package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/models"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
)

// RecordHistoryInput carries a volunteer's participation record submission.
type RecordHistoryInput struct {
	EventID       string
	EventName     string
	Status        string
	VolunteerName string
	Hours         *float64
	Feedback      string
}

// UpdateHistoryInput carries the organizer-editable outcome fields. Nil
// pointers leave the stored value untouched.
type UpdateHistoryInput struct {
	Status   *string
	Hours    *float64
	Feedback *string
}

// HistoryService manages volunteer participation records.
type HistoryService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewHistoryService constructs a HistoryService.
func NewHistoryService(db *gorm.DB) (*HistoryService, error) {
	if db == nil {
		return nil, errors.New("history service: db is required")
	}
	return &HistoryService{db: db, now: time.Now}, nil
}

// ListForVolunteer returns the participation records of the supplied
// volunteer, newest first.
func (s *HistoryService) ListForVolunteer(ctx context.Context, email string) ([]models.VolunteerHistory, error) {
	ctx = ensureContext(ctx)

	var rows []models.VolunteerHistory
	if err := s.db.WithContext(ctx).
		Where("volunteer_id = ?", email).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("history service: list volunteer history: %w", err)
	}
	return rows, nil
}

// ListForOrganizer returns the participation records attached to the
// organizer's events, newest first.
func (s *HistoryService) ListForOrganizer(ctx context.Context, organizerEmail string) ([]models.VolunteerHistory, error) {
	ctx = ensureContext(ctx)

	var rows []models.VolunteerHistory
	if err := s.db.WithContext(ctx).
		Where("organizer_email = ?", organizerEmail).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("history service: list organizer history: %w", err)
	}
	return rows, nil
}

// Record persists a participation record for the supplied volunteer. The
// organizer email is enriched from the referenced event when it exists.
func (s *HistoryService) Record(ctx context.Context, email string, input RecordHistoryInput) (*models.VolunteerHistory, error) {
	ctx = ensureContext(ctx)

	if strings.TrimSpace(input.EventID) == "" ||
		strings.TrimSpace(input.EventName) == "" ||
		strings.TrimSpace(input.Status) == "" {
		return nil, apperrors.NewBadRequest("Missing required fields")
	}

	if !models.IsValidHistoryStatus(input.Status) {
		return nil, apperrors.NewBadRequest("Invalid status")
	}

	entry := models.VolunteerHistory{
		VolunteerID:       email,
		VolunteerEmail:    email,
		VolunteerName:     strings.TrimSpace(input.VolunteerName),
		EventID:           strings.TrimSpace(input.EventID),
		EventName:         strings.TrimSpace(input.EventName),
		ParticipationDate: s.now(),
		Status:            input.Status,
		Hours:             input.Hours,
		Feedback:          strings.TrimSpace(input.Feedback),
	}

	var event models.Event
	if err := s.db.WithContext(ctx).Take(&event, "id = ?", entry.EventID).Error; err == nil {
		entry.OrganizerEmail = event.OrganizerEmail
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("history service: record history: %w", err)
	}

	return &entry, nil
}

// UpdateOutcome applies the organizer's verdict to a participation record.
// Records attached to another organizer's events read as absent, and only
// Pending records accept a new status.
func (s *HistoryService) UpdateOutcome(ctx context.Context, organizerEmail, id string, input UpdateHistoryInput) (*models.VolunteerHistory, error) {
	ctx = ensureContext(ctx)

	var entry models.VolunteerHistory
	if err := s.db.WithContext(ctx).Take(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("History entry not found")
		}
		return nil, fmt.Errorf("history service: load history: %w", err)
	}

	if entry.OrganizerEmail != organizerEmail {
		return nil, apperrors.NewNotFound("History entry not found")
	}

	updates := map[string]any{}

	if input.Status != nil {
		if !models.IsValidHistoryStatus(*input.Status) {
			return nil, apperrors.NewBadRequest("Invalid status")
		}
		if !entry.CanTransitionTo(*input.Status) {
			return nil, apperrors.NewBadRequest("Invalid status transition")
		}
		updates["status"] = *input.Status
	}

	if input.Hours != nil {
		updates["hours"] = *input.Hours
	}

	if input.Feedback != nil {
		updates["feedback"] = strings.TrimSpace(*input.Feedback)
	}

	if len(updates) == 0 {
		return &entry, nil
	}

	if err := s.db.WithContext(ctx).Model(&entry).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("history service: update history: %w", err)
	}

	if err := s.db.WithContext(ctx).Take(&entry, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("history service: reload history: %w", err)
	}
	return &entry, nil
}
