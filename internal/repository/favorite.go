package repository

import (
	"context"

	"holocron/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository defines persistence operations for favorite edges.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	Exists(ctx context.Context, userID uint, ftype models.FavoriteType, targetID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
	Count(ctx context.Context) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(favorite).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Exists reports whether the (user, target-type, target-id) edge is present.
func (r *favoriteRepository) Exists(ctx context.Context, userID uint, ftype models.FavoriteType, targetID uint) (bool, error) {
	var column string
	switch ftype {
	case models.FavoriteTypeCharacter:
		column = "character_id"
	case models.FavoriteTypeVehicle:
		column = "vehicle_id"
	case models.FavoriteTypePlanet:
		column = "planet_id"
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListByUser returns the user's edges with their targets preloaded for
// expanded serialization.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Character").
		Preload("Vehicle").
		Preload("Planet").
		Where("user_id = ?", userID).
		Order("id").
		Find(&favorites).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}

func (r *favoriteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
