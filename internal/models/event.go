package models

import "gorm.io/datatypes"

// Urgency levels accepted for an event.
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

// Event lifecycle states. Events are created Active; organizers move them on.
const (
	EventStatusActive    = "Active"
	EventStatusCancelled = "Cancelled"
	EventStatusCompleted = "Completed"
)

// ValidSkills is the fixed skill enumeration shared by events and volunteer profiles.
var ValidSkills = []string{
	"Leadership",
	"Communication",
	"Problem-Solving",
	"Teaching",
	"Cooking",
	"Coding",
	"Lift Heavy Objects",
	"Stand",
	"Empathy",
	"Teamwork",
}

// IsValidSkill reports whether the skill belongs to the fixed enumeration.
func IsValidSkill(skill string) bool {
	for _, s := range ValidSkills {
		if s == skill {
			return true
		}
	}
	return false
}

// Event is a volunteer opportunity posted by an organization.
// EventDate holds a date-only string (YYYY-MM-DD); range limits apply at
// creation time only and are not re-checked afterwards.
type Event struct {
	BaseModel

	Name           string                      `gorm:"type:varchar(100);not null" json:"eventName"`
	Description    string                      `gorm:"type:varchar(500);not null" json:"eventDescription"`
	Location       string                      `gorm:"type:varchar(200);not null" json:"location"`
	RequiredSkills datatypes.JSONSlice[string] `json:"requiredSkills"`
	Urgency        string                      `gorm:"type:varchar(16);not null" json:"urgency"`
	EventDate      string                      `gorm:"type:varchar(32);not null" json:"eventDate"`
	OrganizerEmail string                      `gorm:"index;not null" json:"orgEmail"`
	Status         string                      `gorm:"type:varchar(16);not null;default:'Active'" json:"status"`
}
