// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account in the favorites catalog.
//
// Password is stored and serialized as-is; clients depend on seeing it in
// responses. See DESIGN.md before changing this.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"password"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Profile   *ProfileInfo `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Orders    []Order      `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Favorites []Favorite   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}

// ProfileInfo holds the optional profile owned by exactly one user. It is
// created together with its user and has no independent lifecycle.
type ProfileInfo struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// TableName overrides gorm's default pluralization of ProfileInfo.
func (ProfileInfo) TableName() string {
	return "profile_infos"
}

// Order is a purchase record attached to a user. Orders are listed through
// GET /users/:id/orders only; there is no create/update surface.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Item      string    `json:"item"`
	Amount    float64   `json:"amount"`
	Status    string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
