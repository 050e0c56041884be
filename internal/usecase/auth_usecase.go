package usecase

import (
	"context"
	"time"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Email  string
	Name   string
	Method string
	Role   string
}

type RegisterResult struct {
	Acknowledged bool
	Message      string
	User         *entity.User
}

// Register stores a new user, or acknowledges an existing one. Google
// sign-ins are acknowledged without creating a duplicate; a repeated
// password signup for the same email is rejected in the response body.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	existing, err := uc.userRepo.GetByEmailAndMethod(ctx, input.Email, input.Method)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if existing != nil {
		if input.Method == entity.MethodGoogle {
			return &RegisterResult{
				Acknowledged: true,
				Message:      "User already registered",
				User:         existing,
			}, nil
		}
		return &RegisterResult{
			Acknowledged: false,
			Message:      "User already exists",
		}, nil
	}

	role := input.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	if role != entity.RoleBuyer && role != entity.RoleSeller {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	user := &entity.User{
		Email:     input.Email,
		Name:      input.Name,
		Method:    input.Method,
		Role:      role,
		Verified:  false,
		CreatedAt: time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &RegisterResult{
		Acknowledged: true,
		Message:      "User created",
		User:         user,
	}, nil
}

// IssueToken signs a token for an email already present in the identity
// store. Unknown emails get a NotFound error; the handler translates that
// into the empty-token failure marker.
func (uc *AuthUseCase) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := uc.userRepo.GetByEmail(ctx, email); err != nil {
		return "", err
	}

	token, err := uc.tokens.Generate(email)
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}

	return token, nil
}

// HasRole reports whether the email belongs to a user with the given role.
// Unknown emails answer false rather than erroring.
func (uc *AuthUseCase) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}
