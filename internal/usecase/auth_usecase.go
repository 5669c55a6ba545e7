package usecase

import (
	"context"
	"time"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
	"github.com/harshverma27/Kissan-Connect/internal/domain/repository"
	"github.com/harshverma27/Kissan-Connect/pkg/errors"
	"github.com/harshverma27/Kissan-Connect/pkg/logger"
)

const (
	DashboardFarmer   = "farmer"
	DashboardConsumer = "consumer"
)

// DashboardForRole maps a profile role to its navigation target. Any role
// outside the two known values is refused rather than defaulted.
func DashboardForRole(role string) (string, error) {
	switch role {
	case entity.RoleFarmer:
		return DashboardFarmer, nil
	case entity.RoleConsumer:
		return DashboardConsumer, nil
	default:
		return "", errors.BadRequest("Unknown user role", nil)
	}
}

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	User      *entity.User
	Token     string
	Dashboard string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	dashboard, err := DashboardForRole(input.Role)
	if err != nil {
		return nil, err
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Roll back the auth account so the email is not left claimed by a
		// user with no profile.
		if cleanupErr := uc.firebaseAuth.DeleteUser(ctx, uid); cleanupErr != nil {
			logger.Error("failed to clean up auth account %s after profile write failure: %v", uid, cleanupErr)
		}
		return nil, errors.Internal("Failed to create user profile", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:      user,
		Token:     token,
		Dashboard: dashboard,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	dashboard, err := DashboardForRole(user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:      user,
		Token:     token,
		Dashboard: dashboard,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
