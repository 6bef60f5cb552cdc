package models

// Notification categories.
const (
	NotificationTypeEventMatch    = "event_match"
	NotificationTypeEventReminder = "event_reminder"
	NotificationTypeEventUpdate   = "event_update"
	NotificationTypeSystem        = "system"
)

// Notification is a message surfaced to a user, created by system actions
// (match found, event updated) and read-only to the recipient.
type Notification struct {
	BaseModel

	UserEmail string `gorm:"index;not null" json:"userEmail"`
	Message   string `gorm:"type:text;not null" json:"message"`
	Date      string `gorm:"type:varchar(32);not null" json:"date"`
	Type      string `gorm:"type:varchar(32);not null" json:"type"`
}

// IsValidNotificationType reports whether the supplied type is known.
func IsValidNotificationType(t string) bool {
	switch t {
	case NotificationTypeEventMatch, NotificationTypeEventReminder,
		NotificationTypeEventUpdate, NotificationTypeSystem:
		return true
	default:
		return false
	}
}
