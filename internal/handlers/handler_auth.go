package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/Shalini-Dasari/TrustMed/internal/middleware"
	"github.com/Shalini-Dasari/TrustMed/internal/utils"
	"github.com/Shalini-Dasari/TrustMed/pkg/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	sessions portssvc.SessionSvcFacade
	cfg      *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions portssvc.SessionSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{sessions: sessions, cfg: cfg}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the public authentication routes behind a
// per-IP rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, sessions portssvc.SessionSvcFacade) {
	h := NewAuthHandler(sessions, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := r.Group("/auth", middleware.RateLimit(ipLimiter))
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// Signup godoc
// @Summary Register a new account
// @Description Creates an account with a freshly issued card, zero balance, and no documents, and signs it in
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   signup body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Failure 500 {object} ErrorResponse "Signup failed"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for signup request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	account, err := h.sessions.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Signup rejected for existing email")
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already exists"})
			return
		}
		logger.Error("Signup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Signup failed"})
		return
	}

	resp, err := h.issueTokens(c, account.AccountID)
	if err != nil {
		logger.Error("Failed to issue tokens after signup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Signup failed"})
		return
	}
	resp.Account = dto.ToAccountResponse(account)

	logger.Info("Account created", slog.Int64("account_id", account.AccountID))
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Sign in with email and password
// @Description Authenticates the account and returns an access token; the cause of a failed login is never disclosed
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Failure 500 {object} ErrorResponse "Login failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	account, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.Warn("Login rejected")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	resp, err := h.issueTokens(c, account.AccountID)
	if err != nil {
		logger.Error("Failed to issue tokens after login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}
	resp.Account = dto.ToAccountResponse(account)

	logger.Info("Login succeeded", slog.Int64("account_id", account.AccountID))
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Rotate the access token
// @Description Exchanges a valid refresh token cookie for a new access token
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, rawToken, err := h.readRefreshCookie(c)
	if err != nil {
		logger.Warn("Refresh token cookie missing or malformed")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.sessions.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		logger.Warn("Refresh for unknown account", slog.Int64("account_id", accountID))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if account.RefreshTokenHash == "" || account.RefreshTokenExpiryTime == nil ||
		time.Now().After(*account.RefreshTokenExpiryTime) ||
		!utils.CompareRefreshTokenHash(rawToken, account.RefreshTokenHash) {
		logger.Warn("Refresh token invalid or expired", slog.Int64("account_id", accountID))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.issueTokens(c, accountID)
	if err != nil {
		logger.Error("Failed to rotate tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Refresh failed"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: resp.Token, ExpiresAt: resp.ExpiresAt})
}

// Logout godoc
// @Summary Sign out
// @Description Clears the active session and revokes the refresh token; always succeeds
// @Tags auth
// @Produce  json
// @Success 204 "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if accountID, _, err := h.readRefreshCookie(c); err == nil {
		if err := h.sessions.ClearRefreshToken(c.Request.Context(), accountID); err != nil {
			// Logout must still succeed; the stale hash expires on its own.
			logger.Warn("Failed to clear refresh token on logout", slog.String("error", err.Error()))
		}
	}

	h.sessions.Logout()
	h.expireRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

// issueTokens creates an access token and rotates the refresh token
// cookie for the given account.
func (h *AuthHandler) issueTokens(c *gin.Context, accountID int64) (dto.LoginResponse, error) {
	expiresAt := time.Now().Add(h.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(accountID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshExpiry := time.Now().Add(h.cfg.RefreshTokenExpiryDuration)
	if err := h.sessions.UpdateRefreshToken(c.Request.Context(), accountID, utils.HashRefreshToken(rawRefreshToken), refreshExpiry); err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	// Cookie value carries the account ID so refresh can look up the
	// stored hash without an access token.
	cookieValue := strconv.FormatInt(accountID, 10) + "." + rawRefreshToken
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		cookieValue,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)

	return dto.LoginResponse{Token: accessToken, ExpiresAt: expiresAt}, nil
}

func (h *AuthHandler) readRefreshCookie(c *gin.Context) (int64, string, error) {
	cookieValue, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		return 0, "", err
	}
	parts := strings.SplitN(cookieValue, ".", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("malformed refresh token cookie")
	}
	accountID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || accountID <= 0 {
		return 0, "", fmt.Errorf("malformed refresh token cookie")
	}
	return accountID, parts[1], nil
}

func (h *AuthHandler) expireRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}
