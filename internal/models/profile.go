package models

import "gorm.io/datatypes"

// AvailabilitySlot is one day a volunteer can work, with its time-slot labels.
// Dates may arrive as plain dates or full timestamps; matching compares the
// date portion only.
type AvailabilitySlot struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
}

// VolunteerProfile stores a volunteer's contact details, skills, and availability.
// Email uniquely identifies at most one profile.
type VolunteerProfile struct {
	BaseModel

	Email        string                                `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string                                `gorm:"type:varchar(255);not null" json:"fullName"`
	Address1     string                                `gorm:"type:varchar(255);not null" json:"address1"`
	Address2     string                                `gorm:"type:varchar(255)" json:"address2,omitempty"`
	City         string                                `gorm:"type:varchar(128);not null" json:"city"`
	State        string                                `gorm:"type:varchar(64);not null" json:"state"`
	ZipCode      string                                `gorm:"type:varchar(16);not null" json:"zipCode"`
	Skills       datatypes.JSONSlice[string]           `json:"skills"`
	Preferences  string                                `gorm:"type:text" json:"preferences"`
	Availability datatypes.JSONSlice[AvailabilitySlot] `json:"availability"`
}
