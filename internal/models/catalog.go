// Package models contains data structures for the application's domain models.
package models

import "time"

// Planet is a catalog entry that users can favorite.
type Planet struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Climate    string    `gorm:"not null" json:"climate"`
	Terrain    string    `gorm:"not null" json:"terrain"`
	Population int64     `gorm:"not null" json:"population"`
	CreatedAt  time.Time `json:"created_at"`
}

// Character is a catalog entry that users can favorite.
type Character struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Gender    string    `gorm:"not null" json:"gender"`
	Height    float64   `gorm:"not null" json:"height"`
	Mass      float64   `gorm:"not null" json:"mass"`
	CreatedAt time.Time `json:"created_at"`
}

// Vehicle is a catalog entry that users can favorite.
type Vehicle struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Model         string    `gorm:"not null" json:"model"`
	CargoCapacity float64   `gorm:"not null" json:"cargo_capacity"`
	Length        float64   `gorm:"not null" json:"length"`
	CreatedAt     time.Time `json:"created_at"`
}
