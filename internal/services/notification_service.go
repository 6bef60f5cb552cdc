package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/models"
	apperrors "github.com/volunteerconnect/server/pkg/errors"
)

// CreateNotificationInput defines attributes required to persist a notification.
type CreateNotificationInput struct {
	UserEmail string
	Message   string
	Type      string
	Date      string
}

// NotificationService manages user notifications.
type NotificationService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(db *gorm.DB) (*NotificationService, error) {
	if db == nil {
		return nil, errors.New("notification service: db is required")
	}
	return &NotificationService{db: db, now: time.Now}, nil
}

// ListForUser returns the notifications addressed to the supplied email,
// newest first.
func (s *NotificationService) ListForUser(ctx context.Context, email string) ([]models.Notification, error) {
	ctx = ensureContext(ctx)

	var rows []models.Notification
	if err := s.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("notification service: list notifications: %w", err)
	}
	return rows, nil
}

// Create persists a new notification. The date defaults to today when omitted.
func (s *NotificationService) Create(ctx context.Context, input CreateNotificationInput) (*models.Notification, error) {
	ctx = ensureContext(ctx)

	if strings.TrimSpace(input.Message) == "" ||
		strings.TrimSpace(input.UserEmail) == "" ||
		strings.TrimSpace(input.Type) == "" {
		return nil, apperrors.NewBadRequest("Missing required fields")
	}

	if !models.IsValidNotificationType(input.Type) {
		return nil, apperrors.NewBadRequest("Invalid notification type")
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = todayString(s.now)
	}

	notification := models.Notification{
		UserEmail: strings.TrimSpace(input.UserEmail),
		Message:   strings.TrimSpace(input.Message),
		Date:      date,
		Type:      input.Type,
	}

	if err := s.db.WithContext(ctx).Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("notification service: create notification: %w", err)
	}

	return &notification, nil
}
