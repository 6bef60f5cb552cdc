package models

import "time"

// Participation states for a volunteer history entry. Entries are created
// Pending when a volunteer accepts a match; the organizer records the outcome.
// "Completed" appears in older records as an alias of Participated.
const (
	HistoryStatusPending      = "Pending"
	HistoryStatusParticipated = "Participated"
	HistoryStatusCanceled     = "Canceled"
	HistoryStatusNoShow       = "No Show"
	HistoryStatusCompleted    = "Completed"
)

// IsValidHistoryStatus reports whether s is a recognized participation state.
func IsValidHistoryStatus(s string) bool {
	switch s {
	case HistoryStatusPending, HistoryStatusParticipated, HistoryStatusCanceled,
		HistoryStatusNoShow, HistoryStatusCompleted:
		return true
	default:
		return false
	}
}

// VolunteerHistory links a volunteer to an event they accepted or worked.
// Entries are never deleted; status, hours, and feedback are updated in place.
type VolunteerHistory struct {
	BaseModel

	VolunteerID       string    `gorm:"index;not null" json:"volunteerId"`
	VolunteerName     string    `gorm:"type:varchar(255)" json:"volunteerName,omitempty"`
	VolunteerEmail    string    `gorm:"type:varchar(255)" json:"volunteerEmail,omitempty"`
	OrganizerEmail    string    `gorm:"index" json:"organizerEmail,omitempty"`
	EventID           string    `gorm:"index;not null" json:"eventId"`
	EventName         string    `gorm:"type:varchar(100);not null" json:"eventName"`
	ParticipationDate time.Time `json:"participationDate"`
	Status            string    `gorm:"type:varchar(16);not null" json:"status"`
	Hours             *float64  `json:"hours,omitempty"`
	Feedback          string    `gorm:"type:text" json:"feedback,omitempty"`
}

// CanTransitionTo reports whether a history entry may move to the target status.
// Only Pending entries are open; terminal states never change.
func (h *VolunteerHistory) CanTransitionTo(status string) bool {
	if h.Status != HistoryStatusPending {
		return false
	}

	switch status {
	case HistoryStatusParticipated, HistoryStatusCanceled, HistoryStatusNoShow, HistoryStatusCompleted:
		return true
	default:
		return false
	}
}
