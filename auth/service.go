// Package auth handles registration, login, and JWT issuance/validation.
// The middleware in this package is what the rest of the API uses to resolve
// the viewer behind a request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/config"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
	pgUniqueViolation = "23505"
)

// Service provides authentication operations backed by the users table.
type Service struct {
	dbPool  *pgxpool.Pool
	authCfg *config.AuthConfig
	log     *logrus.Logger
}

// NewService creates a new auth Service.
func NewService(dbPool *pgxpool.Pool, authCfg *config.AuthConfig, log *logrus.Logger) *Service {
	return &Service{
		dbPool:  dbPool,
		authCfg: authCfg,
		log:     log,
	}
}

// CustomClaims is the JWT payload. Username rides along so the middleware can
// build a Viewer without a database round trip.
type CustomClaims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Register creates a new user. The username must be unique; a duplicate
// surfaces as a Conflict whether caught by the lookup or by the constraint.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:           strings.TrimSpace(req.Name),
		Username:       username,
		HashedPassword: string(hashedPassword),
		ImageURL:       req.ImageURL,
	}

	createdUser, err := s.createUser(ctx, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("username is already taken", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return createdUser, nil
}

// Login authenticates a user and returns the user with a fresh token pair.
// Unknown username and wrong password produce the same response so the
// endpoint does not leak which usernames exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.getUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAuthError("invalid username or password", nil)
		}
		s.log.WithError(err).WithField("username", req.Username).Error("login lookup failed")
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{User: user, Tokens: tokens}, nil
}

// RefreshToken validates a refresh token and mints a new access token.
func (s *Service) RefreshToken(ctx context.Context, refreshTokenString string) (*TokenResponse, error) {
	claims, err := s.ValidateToken(refreshTokenString, tokenTypeRefresh)
	if err != nil {
		return nil, apperror.NewAuthError("invalid refresh token", err)
	}

	newAccessToken, newAccessExpiresAt, err := s.generateSpecificToken(claims.UserID, claims.Username, tokenTypeAccess, s.authCfg.AccessTokenDuration)
	if err != nil {
		return nil, apperror.NewInternalError("failed to generate new access token", err)
	}

	return &TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: refreshTokenString,
		TokenType:    "Bearer",
		ExpiresIn:    newAccessExpiresAt.Unix(),
	}, nil
}

func (s *Service) generateTokens(user *User) (*TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.generateSpecificToken(user.ID, user.Username, tokenTypeAccess, s.authCfg.AccessTokenDuration)
	if err != nil {
		return nil, apperror.NewInternalError("failed to generate access token", err)
	}

	refreshToken, _, err := s.generateSpecificToken(user.ID, user.Username, tokenTypeRefresh, s.authCfg.RefreshTokenDuration)
	if err != nil {
		return nil, apperror.NewInternalError("failed to generate refresh token", err)
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    accessExpiresAt.Unix(),
	}, nil
}

func (s *Service) generateSpecificToken(userID int64, username, tokenType string, duration time.Duration) (string, time.Time, error) {
	expirationTime := time.Now().Add(duration)
	claims := &CustomClaims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "growtwitter",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authCfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// ValidateToken parses a JWT and checks its signature, expiry, and type.
func (s *Service) ValidateToken(tokenString string, expectedTokenType string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authCfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.TokenType != expectedTokenType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", expectedTokenType, claims.TokenType)
	}

	if claims.UserID == 0 {
		return nil, errors.New("user_id claim is missing")
	}

	return claims, nil
}

func (s *Service) createUser(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (name, username, password, image_url)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	err := s.dbPool.QueryRow(ctx, query, user.Name, user.Username, user.HashedPassword, user.ImageURL).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) getUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	query := `SELECT id, name, username, password, image_url, created_at, updated_at
	          FROM users WHERE username = $1`
	err := s.dbPool.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.Name, &user.Username, &user.HashedPassword, &user.ImageURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
