package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/models"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// UpsertProfileInput carries a volunteer profile submission. Updates replace
// the stored fields wholesale.
type UpsertProfileInput struct {
	FullName     string
	Address1     string
	Address2     string
	City         string
	State        string
	ZipCode      string
	Skills       []string
	Preferences  string
	Availability []models.AvailabilitySlot
}

// ProfileService manages volunteer profiles keyed by account email.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService constructs a ProfileService.
func NewProfileService(db *gorm.DB) (*ProfileService, error) {
	if db == nil {
		return nil, errors.New("profile service: db is required")
	}
	return &ProfileService{db: db}, nil
}

// Get loads the profile stored for the supplied email.
func (s *ProfileService) Get(ctx context.Context, email string) (*models.VolunteerProfile, error) {
	ctx = ensureContext(ctx)

	var profile models.VolunteerProfile
	if err := s.db.WithContext(ctx).Take(&profile, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Profile not found")
		}
		return nil, fmt.Errorf("profile service: load profile: %w", err)
	}
	return &profile, nil
}

// Upsert validates and stores the profile for the supplied email, replacing
// any existing record's fields wholesale.
func (s *ProfileService) Upsert(ctx context.Context, email string, input UpsertProfileInput) (*models.VolunteerProfile, error) {
	ctx = ensureContext(ctx)

	if strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Address1) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.State) == "" ||
		strings.TrimSpace(input.ZipCode) == "" ||
		len(input.Skills) == 0 {
		return nil, apperrors.NewBadRequest("Missing required fields")
	}

	if !zipPattern.MatchString(strings.TrimSpace(input.ZipCode)) {
		return nil, apperrors.NewBadRequest("Invalid ZIP code format")
	}

	for _, skill := range input.Skills {
		if !models.IsValidSkill(skill) {
			return nil, apperrors.NewBadRequest("Invalid skills provided")
		}
	}

	var profile models.VolunteerProfile
	err := s.db.WithContext(ctx).Take(&profile, "email = ?", email).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("profile service: load profile: %w", err)
	}

	profile.Email = email
	profile.FullName = strings.TrimSpace(input.FullName)
	profile.Address1 = strings.TrimSpace(input.Address1)
	profile.Address2 = strings.TrimSpace(input.Address2)
	profile.City = strings.TrimSpace(input.City)
	profile.State = strings.TrimSpace(input.State)
	profile.ZipCode = strings.TrimSpace(input.ZipCode)
	profile.Skills = datatypes.NewJSONSlice(input.Skills)
	profile.Preferences = strings.TrimSpace(input.Preferences)
	profile.Availability = datatypes.NewJSONSlice(input.Availability)

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("profile service: save profile: %w", err)
	}

	return &profile, nil
}
