package user

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/entities"
	"SkinSense-Backend/internal/utils/mailing"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		EnsureUser(ctx context.Context, claims domain.AuthClaims) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

// EnsureUser guarantees a local User row exists for a verified identity.
// Users are provisioned lazily on first sight and never created by an
// explicit endpoint. Safe to call repeatedly for the same subject.
func (s *userService) EnsureUser(ctx context.Context, claims domain.AuthClaims) (*entities.User, error) {
	existing, err := s.userRepository.GetUserByID(ctx, claims.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userUUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	newUser := &entities.User{
		ID:       userUUID,
		Email:    claims.Email,
		FullName: resolveDisplayName(claims),
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		// A concurrent request may have provisioned the row first.
		if created, fetchErr := s.userRepository.GetUserByID(ctx, claims.UserID); fetchErr == nil {
			return created, nil
		}
		return nil, err
	}

	go sendWelcomeMail(newUser)

	return newUser, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return domain.UserResponse{}, domain.ErrFullNameRequired
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	user.FullName = req.FullName

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// resolveDisplayName picks the first non-empty of: explicit full name,
// the provider's alternate name claim, the local part of the email, "User".
func resolveDisplayName(claims domain.AuthClaims) string {
	if claims.FullName != "" {
		return claims.FullName
	}
	if claims.Name != "" {
		return claims.Name
	}
	if at := strings.Index(claims.Email, "@"); at > 0 {
		return claims.Email[:at]
	}
	return "User"
}

func sendWelcomeMail(user *entities.User) {
	if user.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to SkinSense! Submit your first scan to start tracking your skin health.</p>",
		user.FullName,
	)
	if err := mailing.SendMail(user.Email, "Welcome to SkinSense", body); err != nil {
		log.Printf("failed to send welcome email to %s: %v", user.Email, err)
	}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}
