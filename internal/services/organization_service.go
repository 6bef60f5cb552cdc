package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/models"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
)

// OrganizationStats summarizes an organization's event activity.
type OrganizationStats struct {
	ActiveEvents        int `json:"activeEvents"`
	TotalVolunteers     int `json:"totalVolunteers"`
	PendingApplications int `json:"pendingApplications"`
}

// VolunteerDataRow is one volunteer's record in the organizer's roster view.
type VolunteerDataRow struct {
	VolunteerID       string   `json:"volunteerId"`
	VolunteerName     string   `json:"volunteerName"`
	VolunteerEmail    string   `json:"volunteerEmail"`
	EventID           string   `json:"eventId"`
	EventName         string   `json:"eventName"`
	ParticipationDate string   `json:"participationDate"`
	Status            string   `json:"status"`
	Hours             *float64 `json:"hours,omitempty"`
	Feedback          string   `json:"feedback,omitempty"`
}

// OrganizationService serves the organizer dashboard: org profile, activity
// stats, and the volunteer roster.
type OrganizationService struct {
	db *gorm.DB
}

// NewOrganizationService constructs an OrganizationService.
func NewOrganizationService(db *gorm.DB) (*OrganizationService, error) {
	if db == nil {
		return nil, errors.New("organization service: db is required")
	}
	return &OrganizationService{db: db}, nil
}

// Profile loads the organization account for the supplied email.
func (s *OrganizationService) Profile(ctx context.Context, email string) (*models.User, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).
		Take(&user, "email = ? AND user_type = ?", email, models.UserTypeOrganization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Organization not found")
		}
		return nil, fmt.Errorf("organization service: load organization: %w", err)
	}
	return &user, nil
}

// Stats computes the organizer dashboard counters: active events, distinct
// volunteers across the org's events, and Pending applications awaiting a
// verdict.
func (s *OrganizationService) Stats(ctx context.Context, email string) (*OrganizationStats, error) {
	ctx = ensureContext(ctx)

	var activeEvents int64
	if err := s.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("organizer_email = ? AND status = ?", email, models.EventStatusActive).
		Count(&activeEvents).Error; err != nil {
		return nil, fmt.Errorf("organization service: count events: %w", err)
	}

	var entries []models.VolunteerHistory
	if err := s.db.WithContext(ctx).
		Select("volunteer_id", "status").
		Where("organizer_email = ?", email).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("organization service: list history: %w", err)
	}

	volunteers := map[string]struct{}{}
	pending := 0
	for _, entry := range entries {
		volunteers[entry.VolunteerID] = struct{}{}
		if entry.Status == models.HistoryStatusPending {
			pending++
		}
	}

	return &OrganizationStats{
		ActiveEvents:        int(activeEvents),
		TotalVolunteers:     len(volunteers),
		PendingApplications: pending,
	}, nil
}

// VolunteerData returns the organizer's roster: every participation record
// attached to the org's events, newest first.
func (s *OrganizationService) VolunteerData(ctx context.Context, email string) ([]VolunteerDataRow, error) {
	ctx = ensureContext(ctx)

	var entries []models.VolunteerHistory
	if err := s.db.WithContext(ctx).
		Where("organizer_email = ?", email).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("organization service: list history: %w", err)
	}

	rows := make([]VolunteerDataRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, VolunteerDataRow{
			VolunteerID:       entry.VolunteerID,
			VolunteerName:     entry.VolunteerName,
			VolunteerEmail:    entry.VolunteerEmail,
			EventID:           entry.EventID,
			EventName:         entry.EventName,
			ParticipationDate: entry.ParticipationDate.Format("2006-01-02"),
			Status:            entry.Status,
			Hours:             entry.Hours,
			Feedback:          entry.Feedback,
		})
	}
	return rows, nil
}
