package providers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/models"
	"github.com/volunteerconnect/server/pkg/crypto"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LocalConfig defines tunable behaviour for the local provider.
type LocalConfig struct {
	PasswordPolicy string
}

// AuthenticateInput contains the credentials supplied at login.
type AuthenticateInput struct {
	Email    string
	Password string
	UserType string
}

// RegisterInput captures the details required to register a new account.
// Organization accounts must also supply the Org* fields.
type RegisterInput struct {
	Email       string
	Password    string
	UserType    string
	OrgName     string
	Phone       string
	Address     string
	Description string
}

// LocalProvider implements email/password registration and authentication
// against the local user table.
type LocalProvider struct {
	db     *gorm.DB
	policy PasswordPolicy
}

// NewLocalProvider builds a provider with the configured password policy.
func NewLocalProvider(db *gorm.DB, cfg LocalConfig) (*LocalProvider, error) {
	if db == nil {
		return nil, errors.New("local provider: db is required")
	}

	return &LocalProvider{
		db:     db,
		policy: NewPasswordPolicy(cfg.PasswordPolicy),
	}, nil
}

// Register validates the submission and persists a new account.
// Checks run in order; the first failure wins. A duplicate email returns a
// 409 without touching the existing account's stored hash.
func (p *LocalProvider) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	userType := strings.TrimSpace(input.UserType)

	if email == "" || input.Password == "" || userType == "" {
		return nil, apperrors.NewBadRequest("Missing required fields")
	}

	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewBadRequest("Invalid email format")
	}

	if err := p.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	if userType != models.UserTypeVolunteer && userType != models.UserTypeOrganization {
		return nil, apperrors.NewBadRequest("Invalid user type")
	}

	if userType == models.UserTypeOrganization {
		if strings.TrimSpace(input.OrgName) == "" ||
			strings.TrimSpace(input.Phone) == "" ||
			strings.TrimSpace(input.Address) == "" ||
			strings.TrimSpace(input.Description) == "" {
			return nil, apperrors.NewBadRequest("Missing required organization fields")
		}
	}

	var existing models.User
	err := p.db.Where("LOWER(email) = LOWER(?)", email).Take(&existing).Error
	switch {
	case err == nil:
		return nil, apperrors.NewConflict("Email already registered")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("local provider: query user: %w", err)
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("local provider: hash password: %w", err)
	}

	user := models.User{
		Email:       email,
		Password:    hash,
		UserType:    userType,
		OrgName:     strings.TrimSpace(input.OrgName),
		Phone:       strings.TrimSpace(input.Phone),
		Address:     strings.TrimSpace(input.Address),
		Description: strings.TrimSpace(input.Description),
	}

	if err := p.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("local provider: create user: %w", err)
	}

	return &user, nil
}

// Authenticate verifies the supplied credentials and returns the account.
// Unknown email, wrong password, and mismatched user type all collapse into
// the same 401 so callers cannot probe which part failed.
func (p *LocalProvider) Authenticate(input AuthenticateInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" || strings.TrimSpace(input.UserType) == "" {
		return nil, apperrors.NewBadRequest("Missing required fields")
	}

	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewBadRequest("Invalid email format")
	}

	var user models.User
	err := p.db.Where("LOWER(email) = LOWER(?)", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("local provider: query user: %w", err)
	}

	if user.UserType != strings.TrimSpace(input.UserType) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !crypto.VerifyPassword(user.Password, input.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}
