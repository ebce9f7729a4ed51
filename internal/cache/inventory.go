package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix      = "user:%d"
	planetKeyPrefix    = "planet:%d"
	characterKeyPrefix = "character:%d"
	vehicleKeyPrefix   = "vehicle:%d"
)

const (
	// UserTTL bounds how long a cached user may lag behind the store.
	UserTTL = 5 * time.Minute
	// CatalogTTL applies to planets, characters and vehicles, which change rarely.
	CatalogTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func PlanetKey(planetID uint) string {
	return fmt.Sprintf(planetKeyPrefix, planetID)
}

func CharacterKey(characterID uint) string {
	return fmt.Sprintf(characterKeyPrefix, characterID)
}

func VehicleKey(vehicleID uint) string {
	return fmt.Sprintf(vehicleKeyPrefix, vehicleID)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
