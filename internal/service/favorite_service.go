package service

import (
	"context"
	"fmt"

	"holocron/internal/models"
	"holocron/internal/repository"
)

// FavoriteService manages the many-to-many edges between users and the catalog.
type FavoriteService struct {
	favoriteRepo  repository.FavoriteRepository
	userRepo      repository.UserRepository
	planetRepo    repository.PlanetRepository
	characterRepo repository.CharacterRepository
	vehicleRepo   repository.VehicleRepository
}

// NewFavoriteService returns a FavoriteService over the given repositories.
func NewFavoriteService(
	favorites repository.FavoriteRepository,
	users repository.UserRepository,
	planets repository.PlanetRepository,
	characters repository.CharacterRepository,
	vehicles repository.VehicleRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo:  favorites,
		userRepo:      users,
		planetRepo:    planets,
		characterRepo: characters,
		vehicleRepo:   vehicles,
	}
}

// spanishLabel maps a favorite type to its user-facing resource name.
func spanishLabel(ftype models.FavoriteType) string {
	switch ftype {
	case models.FavoriteTypeCharacter:
		return "Personaje"
	case models.FavoriteTypeVehicle:
		return "Vehículo"
	default:
		return "Planeta"
	}
}

// AddFavorite creates a (user, target) edge. The user and the target must both
// exist, and the same edge must not already be present. A duplicate edge is a
// 400 per the documented contract, not a 409.
func (s *FavoriteService) AddFavorite(ctx context.Context, ftype models.FavoriteType, targetID, userID uint) (string, error) {
	if userID == 0 {
		return "", models.NewValidationError("El campo 'user_id' es obligatorio")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}
	if err := s.targetExists(ctx, ftype, targetID); err != nil {
		return "", err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, ftype, targetID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", models.NewValidationError(
			fmt.Sprintf("%s %d ya está en los favoritos del usuario %d", spanishLabel(ftype), targetID, userID))
	}

	favorite := &models.Favorite{UserID: userID}
	switch ftype {
	case models.FavoriteTypeCharacter:
		favorite.CharacterID = &targetID
	case models.FavoriteTypeVehicle:
		favorite.VehicleID = &targetID
	case models.FavoriteTypePlanet:
		favorite.PlanetID = &targetID
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %d agregado a los favoritos del usuario %d", spanishLabel(ftype), targetID, userID), nil
}

// ListUserFavorites returns the user plus its favorite edges expanded with the
// favorited entities.
func (s *FavoriteService) ListUserFavorites(ctx context.Context, userID uint) (*models.User, []models.FavoriteView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	views := make([]models.FavoriteView, 0, len(favorites))
	for i := range favorites {
		views = append(views, favorites[i].View())
	}
	return user, views, nil
}

func (s *FavoriteService) targetExists(ctx context.Context, ftype models.FavoriteType, targetID uint) error {
	var err error
	switch ftype {
	case models.FavoriteTypeCharacter:
		_, err = s.characterRepo.GetByID(ctx, targetID)
	case models.FavoriteTypeVehicle:
		_, err = s.vehicleRepo.GetByID(ctx, targetID)
	case models.FavoriteTypePlanet:
		_, err = s.planetRepo.GetByID(ctx, targetID)
	}
	return err
}
