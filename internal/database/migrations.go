package database

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/models"
	"github.com/volunteerconnect/server/pkg/crypto"
)

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.VolunteerProfile{},
		&models.Event{},
		&models.VolunteerHistory{},
		&models.Notification{},
	)
}

// SeedDemoData inserts the demo accounts and fixtures the frontend expects.
// Inserts are keyed so repeated start-ups leave existing rows untouched.
func SeedDemoData(db *gorm.DB) error {
	hash, err := crypto.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	users := []models.User{
		{
			Email:    "volunteer@test.com",
			Password: hash,
			UserType: models.UserTypeVolunteer,
		},
		{
			Email:       "org@test.com",
			Password:    hash,
			UserType:    models.UserTypeOrganization,
			OrgName:     "TestOrg",
			Phone:       "8321234444",
			Address:     "123 Address Ln",
			Description: "Testing Org",
		},
	}

	for _, user := range users {
		if err := db.Where(models.User{Email: user.Email}).
			Attrs(user).
			FirstOrCreate(&models.User{}).Error; err != nil {
			return err
		}
	}

	profile := models.VolunteerProfile{
		Email:    "volunteer@test.com",
		FullName: "Tester Name",
		Address1: "1232 Address St.",
		City:     "Houston",
		State:    "TX",
		ZipCode:  "77004",
		Skills:   datatypes.NewJSONSlice([]string{"Leadership", "Communication"}),
		Availability: datatypes.NewJSONSlice([]models.AvailabilitySlot{
			{
				Date:      time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
				TimeSlots: []string{"Morning (8AM-12PM)", "Evening (4PM-8PM)"},
			},
		}),
	}
	if err := db.Where(models.VolunteerProfile{Email: profile.Email}).
		Attrs(profile).
		FirstOrCreate(&models.VolunteerProfile{}).Error; err != nil {
		return err
	}

	event := models.Event{
		Name:           "Houston Food Bank",
		Description:    "Help sort and pack food donations for local families",
		Location:       "535 Portwall St, Houston",
		RequiredSkills: datatypes.NewJSONSlice([]string{"Leadership", "Communication"}),
		Urgency:        models.UrgencyMedium,
		EventDate:      time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		OrganizerEmail: "org@test.com",
		Status:         models.EventStatusActive,
	}
	if err := db.Where(models.Event{Name: event.Name, OrganizerEmail: event.OrganizerEmail}).
		Attrs(event).
		FirstOrCreate(&models.Event{}).Error; err != nil {
		return err
	}

	notifications := []models.Notification{
		{
			Message:   "You've been matched with 'Houston Food Bank' event",
			Date:      time.Now().Format("2006-01-02"),
			UserEmail: "volunteer@test.com",
			Type:      models.NotificationTypeEventMatch,
		},
		{
			Message:   "Reminder: 'Homeless Shelter' event tomorrow",
			Date:      time.Now().Format("2006-01-02"),
			UserEmail: "volunteer@test.com",
			Type:      models.NotificationTypeEventReminder,
		},
	}

	for _, n := range notifications {
		if err := db.Where(models.Notification{UserEmail: n.UserEmail, Message: n.Message}).
			Attrs(n).
			FirstOrCreate(&models.Notification{}).Error; err != nil {
			return err
		}
	}

	return nil
}
