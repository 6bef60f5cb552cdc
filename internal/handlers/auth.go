package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	iauth "github.com/volunteerconnect/server/internal/auth"
	"github.com/volunteerconnect/server/internal/auth/providers"
	"github.com/volunteerconnect/server/internal/middleware"
	"github.com/volunteerconnect/server/internal/models"
	"github.com/volunteerconnect/server/pkg/errors"
	"github.com/volunteerconnect/server/pkg/metrics"
	"github.com/volunteerconnect/server/pkg/response"
)

// AuthHandler manages authentication flows (register/login/me).
type AuthHandler struct {
	db       *gorm.DB
	jwt      *iauth.JWTService
	provider *providers.LocalProvider
}

// NewAuthHandler constructs an auth handler around the local provider.
func NewAuthHandler(db *gorm.DB, jwt *iauth.JWTService, cfg providers.LocalConfig) (*AuthHandler, error) {
	provider, err := providers.NewLocalProvider(db, cfg)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{db: db, jwt: jwt, provider: provider}, nil
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	UserType    string `json:"userType"`
	OrgName     string `json:"orgName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.provider.Register(providers.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		UserType:    req.UserType,
		OrgName:     req.OrgName,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.Registrations.WithLabelValues(user.UserType).Inc()

	token, err := h.jwt.GenerateAccessToken(iauth.AccessTokenInput{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
	})
	if err != nil {
		response.Error(c, errors.ErrInternalServer)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.provider.Authenticate(providers.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		response.Error(c, err)
		return
	}

	token, err := h.jwt.GenerateAccessToken(iauth.AccessTokenInput{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
	})
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		response.Error(c, errors.ErrInternalServer)
		return
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()

	response.Success(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if userID == "" {
		response.Error(c, errors.ErrUnauthorized)
		return
	}

	var user models.User
	if err := h.db.Take(&user, "id = ?", userID).Error; err != nil {
		response.Error(c, errors.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, user)
}
