package repository

import (
	"context"
	"testing"

	"holocron/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanetRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)
	ctx := context.Background()

	planet := &models.Planet{Name: "Dagobah", Climate: "murky", Terrain: "swamp", Population: 1}
	require.NoError(t, repo.Create(ctx, planet))
	require.NotZero(t, planet.ID)

	got, err := repo.GetByID(ctx, planet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dagobah", got.Name)
	assert.Equal(t, int64(1), got.Population)
}

func TestPlanetRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "Planeta con id 42 no encontrado", appErr.Message)
}

func TestPlanetRepository_DeleteRemovesEdges(t *testing.T) {
	db := setupTestDB(t)
	planets := NewPlanetRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()
	fx := seedFavoriteTargets(t, db)

	require.NoError(t, favorites.Create(ctx, &models.Favorite{UserID: fx.user.ID, PlanetID: &fx.planet.ID}))
	require.NoError(t, favorites.Create(ctx, &models.Favorite{UserID: fx.user.ID, CharacterID: &fx.character.ID}))

	require.NoError(t, planets.Delete(ctx, fx.planet.ID))

	_, err := planets.GetByID(ctx, fx.planet.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	// Only the planet edge goes away.
	left, err := favorites.ListByUser(ctx, fx.user.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, models.FavoriteTypeCharacter, left[0].Type())
}

func TestCharacterRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	character := &models.Character{Name: "Yoda", Gender: "male", Height: 66, Mass: 17}
	require.NoError(t, repo.Create(ctx, character))

	got, err := repo.GetByID(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yoda", got.Name)

	require.NoError(t, repo.Delete(ctx, character.ID))

	_, err = repo.GetByID(ctx, character.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Personaje con id 1 no encontrado", appErr.Message)
}

func TestVehicleRepository_ListOrderedByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Vehicle{Name: "Snowspeeder", Model: "t-47", CargoCapacity: 10, Length: 4.5}))
	require.NoError(t, repo.Create(ctx, &models.Vehicle{Name: "AT-AT", Model: "All Terrain", CargoCapacity: 1000, Length: 20}))

	vehicles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "Snowspeeder", vehicles[0].Name)
	assert.Equal(t, "AT-AT", vehicles[1].Name)
}
