package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrInvalidCredentials   = errors.New("a valid name, email and password of at least 8 characters are required")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidToken         = errors.New("invalid or expired token")
)

// LogMigrator re-owns an anonymous device's workout logs.
type LogMigrator interface {
	Migrate(ctx context.Context, fromDeviceID, toUserID string) (int64, error)
}

// LoginResult is a successful login. MigrationPending is set when the device's
// logs could not be moved yet; the client can retry the migration later.
type LoginResult struct {
	Token            string       `json:"token"`
	User             *domain.User `json:"user"`
	MigratedLogs     int64        `json:"migratedLogs"`
	MigrationPending bool         `json:"migrationPending"`
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login authenticates and, when deviceID is set, promotes that device's
	// logs and profile to the account.
	Login(ctx context.Context, email, password, deviceID string) (*LoginResult, error)
	ParseToken(token string) (userID string, err error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo       repository.UserRepository
	migrator       LogMigrator
	profileService ProfileService
	jwtSecret      string
	jwtExpiration  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	migrator LogMigrator,
	profileService ProfileService,
	jwtSecret string,
	jwtExpiration time.Duration,
) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		userRepo:       userRepo,
		migrator:       migrator,
		profileService: profileService,
		jwtSecret:      jwtSecret,
		jwtExpiration:  jwtExpiration,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if strings.TrimSpace(name) == "" || len(password) < minPasswordLength {
		return nil, ErrInvalidCredentials
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidCredentials
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique email index catches a register racing this one.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	user.ID = userID
	user.PasswordHash = ""

	log.Infof("registered user %s", userID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password, deviceID string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrAuthenticationFailed
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	user.PasswordHash = ""

	result := &LoginResult{Token: token, User: user}
	if deviceID == "" || !domain.IsDeviceID(deviceID) {
		return result, nil
	}

	moved, err := s.migrator.Migrate(ctx, deviceID, user.ID)
	if err != nil {
		log.Warnf("login %s: migrate logs from %s: %s", user.ID, deviceID, err)
		result.MigrationPending = true
		return result, nil
	}
	result.MigratedLogs = moved

	if err := s.profileService.Adopt(ctx, deviceID, user.ID); err != nil {
		log.Warnf("login %s: adopt profile of %s: %s", user.ID, deviceID, err)
	}

	return result, nil
}

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fitguide",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken validates a signed token and returns its user id.
func (s *authService) ParseToken(tokenString string) (string, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
