package providers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/volunteerconnect/server/internal/database/testutil"
	"github.com/volunteerconnect/server/internal/models"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	provider, err := NewLocalProvider(db, LocalConfig{})
	require.NoError(t, err)

	user, err := provider.Register(RegisterInput{
		Email:    "new@volunteer.com",
		Password: "password123",
		UserType: models.UserTypeVolunteer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "password123", user.Password)

	authed, err := provider.Authenticate(AuthenticateInput{
		Email:    "new@volunteer.com",
		Password: "password123",
		UserType: models.UserTypeVolunteer,
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, authed.ID)
}

func TestRegisterDuplicateEmailKeepsOriginalPassword(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	provider, err := NewLocalProvider(db, LocalConfig{})
	require.NoError(t, err)

	first, err := provider.Register(RegisterInput{
		Email:    "dup@volunteer.com",
		Password: "password123",
		UserType: models.UserTypeVolunteer,
	})
	require.NoError(t, err)

	_, err = provider.Register(RegisterInput{
		Email:    "dup@volunteer.com",
		Password: "different456",
		UserType: models.UserTypeVolunteer,
	})
	require.Error(t, err)

	appErr := apperrors.FromError(err)
	require.Equal(t, 409, appErr.StatusCode)

	var stored models.User
	require.NoError(t, db.Where("email = ?", "dup@volunteer.com").Take(&stored).Error)
	require.Equal(t, first.Password, stored.Password)
}

func TestRegisterValidationOrder(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	provider, err := NewLocalProvider(db, LocalConfig{})
	require.NoError(t, err)

	cases := []struct {
		name    string
		input   RegisterInput
		message string
	}{
		{
			name:    "missing fields",
			input:   RegisterInput{Email: "x@y.com", UserType: models.UserTypeVolunteer},
			message: "Missing required fields",
		},
		{
			name:    "bad email",
			input:   RegisterInput{Email: "not an email", Password: "password123", UserType: models.UserTypeVolunteer},
			message: "Invalid email format",
		},
		{
			name:    "short password",
			input:   RegisterInput{Email: "x@y.com", Password: "short", UserType: models.UserTypeVolunteer},
			message: "Password must be at least 8 characters long",
		},
		{
			name:    "password without digits",
			input:   RegisterInput{Email: "x@y.com", Password: "passwords", UserType: models.UserTypeVolunteer},
			message: "Password must contain at least one letter and one number",
		},
		{
			name:    "unknown user type",
			input:   RegisterInput{Email: "x@y.com", Password: "password123", UserType: "admin"},
			message: "Invalid user type",
		},
		{
			name:    "organization without org fields",
			input:   RegisterInput{Email: "org@y.com", Password: "password123", UserType: models.UserTypeOrganization},
			message: "Missing required organization fields",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := provider.Register(tc.input)
			require.Error(t, err)

			appErr := apperrors.FromError(err)
			require.Equal(t, 400, appErr.StatusCode)
			require.Equal(t, tc.message, appErr.Message)
		})
	}
}

func TestStrictPasswordPolicy(t *testing.T) {
	policy := NewPasswordPolicy(PolicyStrict)

	require.Error(t, policy.Validate("password123"))
	require.Error(t, policy.Validate("Password123"))
	require.NoError(t, policy.Validate("Password123!"))
}

func TestAuthenticateRejectsWrongTypeAndPassword(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	provider, err := NewLocalProvider(db, LocalConfig{})
	require.NoError(t, err)

	_, err = provider.Register(RegisterInput{
		Email:    "vol@volunteer.com",
		Password: "password123",
		UserType: models.UserTypeVolunteer,
	})
	require.NoError(t, err)

	_, err = provider.Authenticate(AuthenticateInput{
		Email:    "vol@volunteer.com",
		Password: "password123",
		UserType: models.UserTypeOrganization,
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = provider.Authenticate(AuthenticateInput{
		Email:    "vol@volunteer.com",
		Password: "wrongpass1",
		UserType: models.UserTypeVolunteer,
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
