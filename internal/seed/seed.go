// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"holocron/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	ShouldClean bool
}

var canonPlanets = []models.Planet{
	{Name: "Tatooine", Climate: "arid", Terrain: "desert", Population: 200000},
	{Name: "Alderaan", Climate: "temperate", Terrain: "grasslands, mountains", Population: 2000000000},
	{Name: "Hoth", Climate: "frozen", Terrain: "tundra, ice caves", Population: 0},
	{Name: "Dagobah", Climate: "murky", Terrain: "swamp, jungles", Population: 0},
	{Name: "Naboo", Climate: "temperate", Terrain: "grassy hills, swamps", Population: 4500000000},
	{Name: "Coruscant", Climate: "temperate", Terrain: "cityscape", Population: 1000000000000},
	{Name: "Kashyyyk", Climate: "tropical", Terrain: "jungle, forests", Population: 45000000},
}

var canonCharacters = []models.Character{
	{Name: "Luke Skywalker", Gender: "male", Height: 172, Mass: 77},
	{Name: "Leia Organa", Gender: "female", Height: 150, Mass: 49},
	{Name: "Han Solo", Gender: "male", Height: 180, Mass: 80},
	{Name: "Darth Vader", Gender: "male", Height: 202, Mass: 136},
	{Name: "Obi-Wan Kenobi", Gender: "male", Height: 182, Mass: 77},
	{Name: "Yoda", Gender: "male", Height: 66, Mass: 17},
	{Name: "Chewbacca", Gender: "male", Height: 228, Mass: 112},
	{Name: "Rey", Gender: "female", Height: 170, Mass: 54},
}

var canonVehicles = []models.Vehicle{
	{Name: "X-wing", Model: "T-65 X-wing", CargoCapacity: 110, Length: 12.5},
	{Name: "Millennium Falcon", Model: "YT-1300 light freighter", CargoCapacity: 100000, Length: 34.37},
	{Name: "TIE Advanced x1", Model: "Twin Ion Engine Advanced x1", CargoCapacity: 150, Length: 9.2},
	{Name: "Snowspeeder", Model: "t-47 airspeeder", CargoCapacity: 10, Length: 4.5},
	{Name: "AT-AT", Model: "All Terrain Armored Transport", CargoCapacity: 1000, Length: 20},
	{Name: "Sand Crawler", Model: "Digger Crawler", CargoCapacity: 50000, Length: 36.8},
}

// Clean removes all seeded rows, dependents first.
func Clean(db *gorm.DB) error {
	for _, model := range []any{
		&models.Favorite{}, &models.Order{}, &models.ProfileInfo{},
		&models.User{}, &models.Planet{}, &models.Character{}, &models.Vehicle{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clean: %w", err)
		}
	}
	return nil
}

// Run populates the database with the canon catalog, NumUsers fake users with
// profiles and orders, and a random favorites mesh.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
		log.Println("Cleaned existing data")
	}
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}

	planets := make([]models.Planet, len(canonPlanets))
	copy(planets, canonPlanets)
	if err := db.Create(&planets).Error; err != nil {
		return fmt.Errorf("seed planets: %w", err)
	}

	characters := make([]models.Character, len(canonCharacters))
	copy(characters, canonCharacters)
	if err := db.Create(&characters).Error; err != nil {
		return fmt.Errorf("seed characters: %w", err)
	}

	vehicles := make([]models.Vehicle, len(canonVehicles))
	copy(vehicles, canonVehicles)
	if err := db.Create(&vehicles).Error; err != nil {
		return fmt.Errorf("seed vehicles: %w", err)
	}

	factory := NewFactory(db)
	users := make([]models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if err := factory.CreateOrders(user, i%4); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
		users = append(users, *user)
	}

	if err := factory.CreateFavoriteMesh(users, planets, characters, vehicles); err != nil {
		return fmt.Errorf("seed favorites: %w", err)
	}

	log.Printf("Seeded %d planets, %d characters, %d vehicles, %d users",
		len(planets), len(characters), len(vehicles), len(users))
	return nil
}
