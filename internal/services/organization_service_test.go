package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/volunteerconnect/server/internal/database/testutil"
	"github.com/volunteerconnect/server/internal/models"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
)

func TestOrganizationProfile(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	_, err = svc.Profile(context.Background(), "ghost@test.com")
	require.Error(t, err)
	require.Equal(t, "Organization not found", apperrors.FromError(err).Message)

	org := models.User{
		Email:    "org@test.com",
		Password: "x",
		UserType: models.UserTypeOrganization,
		OrgName:  "TestOrg",
	}
	require.NoError(t, db.Create(&org).Error)

	// A volunteer account with the same lookup never reads as an org.
	vol := models.User{Email: "vol@test.com", Password: "x", UserType: models.UserTypeVolunteer}
	require.NoError(t, db.Create(&vol).Error)

	loaded, err := svc.Profile(context.Background(), "org@test.com")
	require.NoError(t, err)
	require.Equal(t, "TestOrg", loaded.OrgName)

	_, err = svc.Profile(context.Background(), "vol@test.com")
	require.Error(t, err)
	require.Equal(t, 404, apperrors.FromError(err).StatusCode)
}

func TestOrganizationStatsAndVolunteerData(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewOrganizationService(db)
	require.NoError(t, err)

	for _, status := range []string{models.EventStatusActive, models.EventStatusActive, models.EventStatusCancelled} {
		event := models.Event{
			Name:           "Stats Event",
			Description:    "An event seeded for dashboard stats tests",
			Location:       "1 Stats St",
			RequiredSkills: datatypes.NewJSONSlice([]string{"Teamwork"}),
			Urgency:        models.UrgencyLow,
			EventDate:      "2026-10-01",
			OrganizerEmail: "org@test.com",
			Status:         status,
		}
		require.NoError(t, db.Create(&event).Error)
	}

	entries := []models.VolunteerHistory{
		{VolunteerID: "a@test.com", OrganizerEmail: "org@test.com", EventID: "e1", EventName: "Stats Event", Status: models.HistoryStatusPending},
		{VolunteerID: "a@test.com", OrganizerEmail: "org@test.com", EventID: "e2", EventName: "Stats Event", Status: models.HistoryStatusParticipated},
		{VolunteerID: "b@test.com", OrganizerEmail: "org@test.com", EventID: "e1", EventName: "Stats Event", Status: models.HistoryStatusPending},
		{VolunteerID: "c@test.com", OrganizerEmail: "elsewhere@test.com", EventID: "e9", EventName: "Not Mine", Status: models.HistoryStatusPending},
	}
	for i := range entries {
		entries[i].ParticipationDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, db.Create(&entries[i]).Error)
	}

	stats, err := svc.Stats(context.Background(), "org@test.com")
	require.NoError(t, err)
	require.Equal(t, 2, stats.ActiveEvents)
	require.Equal(t, 2, stats.TotalVolunteers)
	require.Equal(t, 2, stats.PendingApplications)

	rows, err := svc.VolunteerData(context.Background(), "org@test.com")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "2026-09-01", rows[0].ParticipationDate)
}
