package repository

import (
	"context"
	"errors"

	"holocron/internal/cache"
	"holocron/internal/models"

	"gorm.io/gorm"
)

// PlanetRepository defines persistence operations for planets.
type PlanetRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
	List(ctx context.Context) ([]models.Planet, error)
	Create(ctx context.Context, planet *models.Planet) error
	Delete(ctx context.Context, id uint) error
}

// CharacterRepository defines persistence operations for characters.
type CharacterRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Character, error)
	List(ctx context.Context) ([]models.Character, error)
	Create(ctx context.Context, character *models.Character) error
	Delete(ctx context.Context, id uint) error
}

// VehicleRepository defines persistence operations for vehicles.
type VehicleRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Create(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id uint) error
}

type planetRepository struct{ db *gorm.DB }
type characterRepository struct{ db *gorm.DB }
type vehicleRepository struct{ db *gorm.DB }

// NewPlanetRepository returns a new PlanetRepository implementation.
func NewPlanetRepository(db *gorm.DB) PlanetRepository { return &planetRepository{db: db} }

// NewCharacterRepository returns a new CharacterRepository implementation.
func NewCharacterRepository(db *gorm.DB) CharacterRepository { return &characterRepository{db: db} }

// NewVehicleRepository returns a new VehicleRepository implementation.
func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepository{db: db} }

func (r *planetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	var planet models.Planet
	err := cache.Aside(ctx, cache.PlanetKey(id), &planet, cache.CatalogTTL, func() error {
		if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Planeta", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *planetRepository) List(ctx context.Context) ([]models.Planet, error) {
	var planets []models.Planet
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return planets, nil
}

func (r *planetRepository) Create(ctx context.Context, planet *models.Planet) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(planet).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the planet and any favorite edges pointing at it.
func (r *planetRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("planet_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Planet{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PlanetKey(id))
	return nil
}

func (r *characterRepository) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	var character models.Character
	err := cache.Aside(ctx, cache.CharacterKey(id), &character, cache.CatalogTTL, func() error {
		if err := r.db.WithContext(ctx).First(&character, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Personaje", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *characterRepository) List(ctx context.Context) ([]models.Character, error) {
	var characters []models.Character
	if err := r.db.WithContext(ctx).Order("id").Find(&characters).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return characters, nil
}

func (r *characterRepository) Create(ctx context.Context, character *models.Character) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(character).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *characterRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Character{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.CharacterKey(id))
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := cache.Aside(ctx, cache.VehicleKey(id), &vehicle, cache.CatalogTTL, func() error {
		if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Vehículo", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(vehicle).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vehicle{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.VehicleKey(id))
	return nil
}
