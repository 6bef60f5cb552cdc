package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesRequiresSkillAndDate(t *testing.T) {
	event := Event{
		RequiredSkills: []string{"Leadership", "Cooking"},
		EventDate:      "2025-03-28",
	}

	cases := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{
			name: "skill and date align",
			profile: Profile{
				Skills:       []string{"Communication", "Cooking"},
				Availability: []Slot{{Date: "2025-03-28"}},
			},
			want: true,
		},
		{
			name: "skill matches but unavailable",
			profile: Profile{
				Skills:       []string{"Cooking"},
				Availability: []Slot{{Date: "2025-03-29"}},
			},
			want: false,
		},
		{
			name: "available but no shared skill",
			profile: Profile{
				Skills:       []string{"Teaching"},
				Availability: []Slot{{Date: "2025-03-28"}},
			},
			want: false,
		},
		{
			name:    "empty profile",
			profile: Profile{},
			want:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Matches(event, tc.profile))
		})
	}
}

func TestMatchesIgnoresTimeOfDay(t *testing.T) {
	event := Event{
		RequiredSkills: []string{"Teamwork"},
		EventDate:      "2025-03-28T18:00:00Z",
	}
	profile := Profile{
		Skills:       []string{"Teamwork"},
		Availability: []Slot{{Date: "2025-03-28T08:00:00-06:00", TimeSlots: []string{"Morning (8AM-12PM)"}}},
	}

	require.True(t, Matches(event, profile))
}

func TestMatchesIsDeterministic(t *testing.T) {
	event := Event{RequiredSkills: []string{"Empathy"}, EventDate: "2025-06-01"}
	profile := Profile{Skills: []string{"Empathy"}, Availability: []Slot{{Date: "2025-06-01"}}}

	first := Matches(event, profile)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Matches(event, profile))
	}
}

func TestDateOnly(t *testing.T) {
	require.Equal(t, "2025-03-28", DateOnly("2025-03-28"))
	require.Equal(t, "2025-03-28", DateOnly("2025-03-28T10:00:00Z"))
	require.Equal(t, "2025-03-28", DateOnly("2025-03-28 10:00:00"))
	require.Equal(t, "", DateOnly("  "))
}
