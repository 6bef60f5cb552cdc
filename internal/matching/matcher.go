// Package matching decides whether an event should be surfaced to a volunteer.
//
// The predicate is deliberately simple: a volunteer matches an event when the
// skill sets intersect and an availability entry falls on the event's date.
// There is no ranking, scoring, or capacity handling.
package matching

import "strings"

// Profile is the volunteer-side input to the predicate.
type Profile struct {
	Skills       []string
	Availability []Slot
}

// Slot is one day of availability.
type Slot struct {
	Date      string
	TimeSlots []string
}

// Event is the event-side input to the predicate.
type Event struct {
	RequiredSkills []string
	EventDate      string
}

// DateOnly strips any time portion from an ISO-style date string.
// "2025-03-28T10:00:00Z" and "2025-03-28" normalise to the same value;
// time-of-day and timezone offset are ignored.
func DateOnly(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexByte(value, 'T'); idx >= 0 {
		return value[:idx]
	}
	if idx := strings.IndexByte(value, ' '); idx >= 0 {
		return value[:idx]
	}
	return value
}

// Matches reports whether the volunteer should see the event:
// at least one required skill appears in the profile AND at least one
// availability entry lands on the event date.
func Matches(event Event, profile Profile) bool {
	return hasRequiredSkill(event.RequiredSkills, profile.Skills) &&
		availableOn(profile.Availability, event.EventDate)
}

func hasRequiredSkill(required, skills []string) bool {
	for _, want := range required {
		for _, have := range skills {
			if want == have {
				return true
			}
		}
	}
	return false
}

func availableOn(availability []Slot, eventDate string) bool {
	date := DateOnly(eventDate)
	for _, slot := range availability {
		if DateOnly(slot.Date) == date {
			return true
		}
	}
	return false
}
