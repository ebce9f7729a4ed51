// Package models contains data structures for the application's domain models.
package models

import "time"

// FavoriteType identifies the kind of catalog entity a favorite points at.
type FavoriteType string

const (
	// FavoriteTypeCharacter marks a favorite pointing at a Character.
	FavoriteTypeCharacter FavoriteType = "character"
	// FavoriteTypeVehicle marks a favorite pointing at a Vehicle.
	FavoriteTypeVehicle FavoriteType = "vehicle"
	// FavoriteTypePlanet marks a favorite pointing at a Planet.
	FavoriteTypePlanet FavoriteType = "planet"
)

// Favorite is the many-to-many edge between a user and exactly one catalog
// entity. Exactly one of CharacterID, VehicleID, PlanetID is non-nil; the
// (user, target) pair is unique per target type.
type Favorite struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CharacterID *uint     `gorm:"index" json:"character_id,omitempty"`
	VehicleID   *uint     `gorm:"index" json:"vehicle_id,omitempty"`
	PlanetID    *uint     `gorm:"index" json:"planet_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships, loaded only for expanded serialization.
	Character *Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
	Vehicle   *Vehicle   `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"-"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"-"`
}

// Type returns the discriminator for the single target the edge points at.
func (f *Favorite) Type() FavoriteType {
	switch {
	case f.CharacterID != nil:
		return FavoriteTypeCharacter
	case f.VehicleID != nil:
		return FavoriteTypeVehicle
	default:
		return FavoriteTypePlanet
	}
}

// TargetID returns the id of the single target the edge points at.
func (f *Favorite) TargetID() uint {
	switch {
	case f.CharacterID != nil:
		return *f.CharacterID
	case f.VehicleID != nil:
		return *f.VehicleID
	case f.PlanetID != nil:
		return *f.PlanetID
	}
	return 0
}

// FavoriteView is the expanded serialization of a favorite edge: the edge
// fields plus the favorited entity nested under "item".
type FavoriteView struct {
	ID     uint         `json:"id"`
	UserID uint         `json:"user_id"`
	Type   FavoriteType `json:"type"`
	Item   any          `json:"item"`
}

// View expands a favorite into its serialized form. The matching relation
// must already be preloaded; a dangling edge yields a nil Item.
func (f *Favorite) View() FavoriteView {
	v := FavoriteView{ID: f.ID, UserID: f.UserID, Type: f.Type()}
	switch v.Type {
	case FavoriteTypeCharacter:
		if f.Character != nil {
			v.Item = f.Character
		}
	case FavoriteTypeVehicle:
		if f.Vehicle != nil {
			v.Item = f.Vehicle
		}
	case FavoriteTypePlanet:
		if f.Planet != nil {
			v.Item = f.Planet
		}
	}
	return v
}
