package service

import (
	"context"

	"holocron/internal/models"
	"holocron/internal/repository"
)

// CatalogService implements the rules for the three catalog entity types.
// The zero value of a required field counts as missing.
type CatalogService struct {
	planetRepo    repository.PlanetRepository
	characterRepo repository.CharacterRepository
	vehicleRepo   repository.VehicleRepository
}

// CreatePlanetInput carries the fields accepted on planet creation.
type CreatePlanetInput struct {
	Name       string
	Climate    string
	Terrain    string
	Population int64
}

// CreateCharacterInput carries the fields accepted on character creation.
type CreateCharacterInput struct {
	Name   string
	Gender string
	Height float64
	Mass   float64
}

// CreateVehicleInput carries the fields accepted on vehicle creation.
type CreateVehicleInput struct {
	Name          string
	Model         string
	CargoCapacity float64
	Length        float64
}

// NewCatalogService returns a CatalogService over the three catalog repositories.
func NewCatalogService(planets repository.PlanetRepository, characters repository.CharacterRepository, vehicles repository.VehicleRepository) *CatalogService {
	return &CatalogService{planetRepo: planets, characterRepo: characters, vehicleRepo: vehicles}
}

func (s *CatalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.planetRepo.List(ctx)
}

func (s *CatalogService) GetPlanet(ctx context.Context, id uint) (*models.Planet, error) {
	return s.planetRepo.GetByID(ctx, id)
}

func (s *CatalogService) CreatePlanet(ctx context.Context, in CreatePlanetInput) (*models.Planet, error) {
	switch {
	case in.Name == "":
		return nil, models.NewMissingFieldError("name")
	case in.Climate == "":
		return nil, models.NewMissingFieldError("climate")
	case in.Terrain == "":
		return nil, models.NewMissingFieldError("terrain")
	case in.Population == 0:
		return nil, models.NewMissingFieldError("population")
	}

	planet := &models.Planet{
		Name:       in.Name,
		Climate:    in.Climate,
		Terrain:    in.Terrain,
		Population: in.Population,
	}
	if err := s.planetRepo.Create(ctx, planet); err != nil {
		return nil, err
	}
	return planet, nil
}

func (s *CatalogService) DeletePlanet(ctx context.Context, id uint) error {
	if _, err := s.planetRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.planetRepo.Delete(ctx, id)
}

func (s *CatalogService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return s.characterRepo.List(ctx)
}

func (s *CatalogService) GetCharacter(ctx context.Context, id uint) (*models.Character, error) {
	return s.characterRepo.GetByID(ctx, id)
}

func (s *CatalogService) CreateCharacter(ctx context.Context, in CreateCharacterInput) (*models.Character, error) {
	switch {
	case in.Name == "":
		return nil, models.NewMissingFieldError("name")
	case in.Gender == "":
		return nil, models.NewMissingFieldError("gender")
	case in.Height == 0:
		return nil, models.NewMissingFieldError("height")
	case in.Mass == 0:
		return nil, models.NewMissingFieldError("mass")
	}

	character := &models.Character{
		Name:   in.Name,
		Gender: in.Gender,
		Height: in.Height,
		Mass:   in.Mass,
	}
	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *CatalogService) DeleteCharacter(ctx context.Context, id uint) error {
	if _, err := s.characterRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.characterRepo.Delete(ctx, id)
}

func (s *CatalogService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *CatalogService) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *CatalogService) CreateVehicle(ctx context.Context, in CreateVehicleInput) (*models.Vehicle, error) {
	switch {
	case in.Name == "":
		return nil, models.NewMissingFieldError("name")
	case in.Model == "":
		return nil, models.NewMissingFieldError("model")
	case in.CargoCapacity == 0:
		return nil, models.NewMissingFieldError("cargo_capacity")
	case in.Length == 0:
		return nil, models.NewMissingFieldError("length")
	}

	vehicle := &models.Vehicle{
		Name:          in.Name,
		Model:         in.Model,
		CargoCapacity: in.CargoCapacity,
		Length:        in.Length,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *CatalogService) DeleteVehicle(ctx context.Context, id uint) error {
	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, id)
}
