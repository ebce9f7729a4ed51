package server

import (
	"holocron/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddFavoriteCharacter handles POST /favorite/character/:id
func (s *Server) AddFavoriteCharacter(c *fiber.Ctx) error {
	return s.addFavorite(c, models.FavoriteTypeCharacter)
}

// AddFavoriteVehicle handles POST /favorite/vehicle/:id
func (s *Server) AddFavoriteVehicle(c *fiber.Ctx) error {
	return s.addFavorite(c, models.FavoriteTypeVehicle)
}

// AddFavoritePlanet handles POST /favorite/planet/:id
func (s *Server) AddFavoritePlanet(c *fiber.Ctx) error {
	return s.addFavorite(c, models.FavoriteTypePlanet)
}

func (s *Server) addFavorite(c *fiber.Ctx, ftype models.FavoriteType) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	msg, err := s.favoriteService.AddFavorite(c.Context(), ftype, targetID, req.UserID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"msg": msg})
}
