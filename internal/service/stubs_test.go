package service

import (
	"context"
	"errors"
	"testing"

	"holocron/internal/models"

	"github.com/stretchr/testify/assert"
)

// Stubs used across the service tests in this package.

type userRepoStub struct {
	getByIDFn            func(ctx context.Context, id uint) (*models.User, error)
	getByIDWithProfileFn func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn         func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn      func(ctx context.Context, username string) (*models.User, error)
	createFn             func(ctx context.Context, user *models.User) error
	updateFn             func(ctx context.Context, user *models.User) error
	deleteFn             func(ctx context.Context, id uint) error
	listFn               func(ctx context.Context) ([]models.User, error)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{}
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Usuario", id)
}

func (s *userRepoStub) GetByIDWithProfile(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDWithProfileFn != nil {
		return s.getByIDWithProfileFn(ctx, id)
	}
	return s.GetByID(ctx, id)
}

func (s *userRepoStub) GetByIDWithOrders(ctx context.Context, id uint) (*models.User, error) {
	return s.GetByID(ctx, id)
}

func (s *userRepoStub) GetByIDWithFavorites(ctx context.Context, id uint) (*models.User, error) {
	return s.GetByID(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

type favoriteRepoStub struct {
	createFn     func(ctx context.Context, favorite *models.Favorite) error
	existsFn     func(ctx context.Context, userID uint, ftype models.FavoriteType, targetID uint) (bool, error)
	listByUserFn func(ctx context.Context, userID uint) ([]models.Favorite, error)
}

func (s *favoriteRepoStub) Create(ctx context.Context, favorite *models.Favorite) error {
	if s.createFn != nil {
		return s.createFn(ctx, favorite)
	}
	favorite.ID = 1
	return nil
}

func (s *favoriteRepoStub) Exists(ctx context.Context, userID uint, ftype models.FavoriteType, targetID uint) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, userID, ftype, targetID)
	}
	return false, nil
}

func (s *favoriteRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *favoriteRepoStub) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

type planetRepoStub struct {
	getByIDFn func(ctx context.Context, id uint) (*models.Planet, error)
	createFn  func(ctx context.Context, planet *models.Planet) error
	deleteFn  func(ctx context.Context, id uint) error
	listFn    func(ctx context.Context) ([]models.Planet, error)
}

func (s *planetRepoStub) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Planeta", id)
}

func (s *planetRepoStub) List(ctx context.Context) ([]models.Planet, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *planetRepoStub) Create(ctx context.Context, planet *models.Planet) error {
	if s.createFn != nil {
		return s.createFn(ctx, planet)
	}
	planet.ID = 1
	return nil
}

func (s *planetRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type characterRepoStub struct {
	getByIDFn func(ctx context.Context, id uint) (*models.Character, error)
}

func (s *characterRepoStub) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Personaje", id)
}

func (s *characterRepoStub) List(ctx context.Context) ([]models.Character, error) { return nil, nil }

func (s *characterRepoStub) Create(ctx context.Context, character *models.Character) error {
	character.ID = 1
	return nil
}

func (s *characterRepoStub) Delete(ctx context.Context, id uint) error { return nil }

type vehicleRepoStub struct {
	getByIDFn func(ctx context.Context, id uint) (*models.Vehicle, error)
}

func (s *vehicleRepoStub) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Vehículo", id)
}

func (s *vehicleRepoStub) List(ctx context.Context) ([]models.Vehicle, error) { return nil, nil }

func (s *vehicleRepoStub) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = 1
	return nil
}

func (s *vehicleRepoStub) Delete(ctx context.Context, id uint) error { return nil }

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	if assert.True(t, errors.As(err, &appErr), "expected *models.AppError, got %v", err) {
		assert.Equal(t, code, appErr.Code)
	}
}
