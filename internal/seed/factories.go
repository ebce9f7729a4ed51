// Package seed provides helpers to create demo data for the catalog
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"holocron/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildUser constructs an unsaved user with a filled profile.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	username := strings.ToLower(gofakeit.Username())
	user := &models.User{
		Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		Username: username,
		Password: gofakeit.Password(true, true, true, false, false, 12),
		IsActive: true,
		Profile: &models.ProfileInfo{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Phone:     gofakeit.Phone(),
			Address:   gofakeit.Address().Address,
			Bio:       gofakeit.Sentence(8),
			AvatarURL: fmt.Sprintf("https://picsum.photos/seed/%s/256/256", uuid.NewString()),
		},
	}
	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser persists a user built by BuildUser.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateOrders attaches n random orders to the user.
func (f *Factory) CreateOrders(user *models.User, n int) error {
	items := []string{
		"Holocron replica", "Beskar ingot", "Kyber crystal shard",
		"Astromech tune-up", "Bantha milk crate", "Hyperdrive coupling",
	}
	for i := 0; i < n; i++ {
		order := models.Order{
			UserID: user.ID,
			Item:   items[f.rand.Intn(len(items))],
			Amount: float64(f.rand.Intn(90000)+1000) / 100,
			Status: []string{"pending", "shipped", "delivered"}[f.rand.Intn(3)],
		}
		if err := f.db.Create(&order).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateFavoriteMesh links each user to a random subset of the catalog,
// skipping edges that already exist.
func (f *Factory) CreateFavoriteMesh(users []models.User, planets []models.Planet, characters []models.Character, vehicles []models.Vehicle) error {
	for i := range users {
		user := &users[i]
		for j := range planets {
			if f.rand.Intn(3) != 0 {
				continue
			}
			fav := models.Favorite{UserID: user.ID, PlanetID: &planets[j].ID}
			if err := f.db.Create(&fav).Error; err != nil {
				return err
			}
		}
		for j := range characters {
			if f.rand.Intn(3) != 0 {
				continue
			}
			fav := models.Favorite{UserID: user.ID, CharacterID: &characters[j].ID}
			if err := f.db.Create(&fav).Error; err != nil {
				return err
			}
		}
		for j := range vehicles {
			if f.rand.Intn(3) != 0 {
				continue
			}
			fav := models.Favorite{UserID: user.ID, VehicleID: &vehicles[j].ID}
			if err := f.db.Create(&fav).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
