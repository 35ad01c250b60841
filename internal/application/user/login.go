package user

import (
	"context"
	"time"

	"github.com/fictus/bookstore/internal/domain/user"
	"github.com/fictus/bookstore/internal/infrastructure/persistence/redis"
	"github.com/fictus/bookstore/pkg/jwt"
	"github.com/fictus/bookstore/pkg/logger"
)

// LoginUseCase verifies credentials, issues a token pair and records the
// session in redis.
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLoginUseCase creates the login use case.
func NewLoginUseCase(userService user.Service, jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse is the issued token pair plus the account identity.
type LoginResponse struct {
	UserID       uint      `json:"user_id"`
	Email        string    `json:"email"`
	Role         user.Role `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
}

// Execute logs the user in.
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.EmailAddress, string(u.Role))
	if err != nil {
		return nil, err
	}

	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.EmailAddress,
		"role":     string(u.Role),
		"login_at": time.Now().Unix(),
	}
	// Session lifetime matches the refresh token. A redis outage must not
	// block login.
	if err := uc.sessionStore.SaveSession(ctx, u.ID, sessionData, 7*24*time.Hour); err != nil {
		logger.L.Warnw("failed to save session", "user_id", u.ID, "error", err)
	}

	return &LoginResponse{
		UserID:       u.ID,
		Email:        u.EmailAddress,
		Role:         u.Role,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase revokes the session and blacklists the access token until it
// would have expired.
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase creates the logout use case.
func NewLogoutUseCase(sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute logs the user out.
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, 2*time.Hour)
}
