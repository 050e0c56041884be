package usecase

import (
	"context"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) ListByRole(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	if role != entity.RoleBuyer && role != entity.RoleSeller {
		return nil, 0, errors.BadRequest("Invalid role", nil)
	}
	return uc.userRepo.ListByRole(ctx, role, limit, offset)
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	if _, err := uc.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, id)
}

// SetSellerVerified flips the verification flag on a seller account.
func (uc *UserUseCase) SetSellerVerified(ctx context.Context, id string, verified bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RoleSeller {
		return nil, errors.BadRequest("User is not a seller", nil)
	}

	user.Verified = verified
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
