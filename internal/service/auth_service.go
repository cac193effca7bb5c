package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/repository"
	"github.com/taruapp/api-taru/pkg/auth"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo   *repository.UserRepository
	streakRepo *repository.StreakRepository
	jwtManager *auth.JWTManager
	rdb        *redis.Client
}

func NewAuthService(
	userRepo *repository.UserRepository,
	streakRepo *repository.StreakRepository,
	jwtManager *auth.JWTManager,
	rdb *redis.Client,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		streakRepo: streakRepo,
		jwtManager: jwtManager,
		rdb:        rdb,
	}
}

// Register creates a new user and provisions both streak counters
func (s *AuthService) Register(req model.RegisterRequest) (*model.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &model.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		Archetype: req.Archetype,
		Timezone:  req.Timezone,
		Bedtime:   req.Bedtime,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, errors.New("failed to create user")
	}

	// Provision the two streak counters the check-in path expects
	now := time.Now()
	for _, streakType := range []model.StreakType{model.StreakTypeSelfLed, model.StreakTypeAbstinence} {
		streak := &model.Streak{
			UserID:    user.ID,
			Type:      streakType,
			Current:   0,
			Best:      0,
			LastCheck: now,
		}
		if err := s.streakRepo.Create(streak); err != nil {
			return nil, errors.New("failed to provision streaks")
		}
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, string(user.Archetype))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &model.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// Login authenticates a user and returns a JWT token
func (s *AuthService) Login(req model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.New("failed to find user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, string(user.Archetype))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &model.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// GetProfile returns the current user's profile
func (s *AuthService) GetProfile(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

// Logout blacklists the token until its natural expiry
func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.jwtManager.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	expiresIn := time.Until(claims.ExpiresAt.Time)
	if expiresIn <= 0 {
		return nil
	}

	return s.rdb.Set(context.Background(), "blacklist:"+tokenString, "revoked", expiresIn).Err()
}
