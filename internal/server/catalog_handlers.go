package server

import (
	"context"
	"fmt"
	"time"

	"holocron/internal/models"
	"holocron/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllPlanets handles GET /planets
func (s *Server) GetAllPlanets(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	planets, err := s.catalogService.ListPlanets(ctx)
	if err != nil {
		return s.respondError(c, err)
	}
	if planets == nil {
		planets = []models.Planet{}
	}
	return c.JSON(planets)
}

// GetPlanet handles GET /planets/:id
func (s *Server) GetPlanet(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	planet, err := s.catalogService.GetPlanet(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(planet)
}

// CreatePlanet handles POST /planets
func (s *Server) CreatePlanet(c *fiber.Ctx) error {
	var req struct {
		Name       string `json:"name"`
		Climate    string `json:"climate"`
		Terrain    string `json:"terrain"`
		Population int64  `json:"population"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	planet, err := s.catalogService.CreatePlanet(c.Context(), service.CreatePlanetInput{
		Name:       req.Name,
		Climate:    req.Climate,
		Terrain:    req.Terrain,
		Population: req.Population,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(planet)
}

// DeletePlanet handles DELETE /planets/:id
func (s *Server) DeletePlanet(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catalogService.DeletePlanet(c.Context(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"msg": fmt.Sprintf("Planeta %d eliminado con éxito", id),
	})
}

// GetAllCharacters handles GET /characters
func (s *Server) GetAllCharacters(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	characters, err := s.catalogService.ListCharacters(ctx)
	if err != nil {
		return s.respondError(c, err)
	}
	if characters == nil {
		characters = []models.Character{}
	}
	return c.JSON(characters)
}

// GetCharacter handles GET /characters/:id
func (s *Server) GetCharacter(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	character, err := s.catalogService.GetCharacter(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(character)
}

// CreateCharacter handles POST /characters
func (s *Server) CreateCharacter(c *fiber.Ctx) error {
	var req struct {
		Name   string  `json:"name"`
		Gender string  `json:"gender"`
		Height float64 `json:"height"`
		Mass   float64 `json:"mass"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	character, err := s.catalogService.CreateCharacter(c.Context(), service.CreateCharacterInput{
		Name:   req.Name,
		Gender: req.Gender,
		Height: req.Height,
		Mass:   req.Mass,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(character)
}

// DeleteCharacter handles DELETE /characters/:id
func (s *Server) DeleteCharacter(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catalogService.DeleteCharacter(c.Context(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"msg": fmt.Sprintf("Personaje %d eliminado con éxito", id),
	})
}

// GetAllVehicles handles GET /vehicles
func (s *Server) GetAllVehicles(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	vehicles, err := s.catalogService.ListVehicles(ctx)
	if err != nil {
		return s.respondError(c, err)
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return c.JSON(vehicles)
}

// GetVehicle handles GET /vehicles/:id
func (s *Server) GetVehicle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	vehicle, err := s.catalogService.GetVehicle(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(vehicle)
}

// CreateVehicle handles POST /vehicles
func (s *Server) CreateVehicle(c *fiber.Ctx) error {
	var req struct {
		Name          string  `json:"name"`
		Model         string  `json:"model"`
		CargoCapacity float64 `json:"cargo_capacity"`
		Length        float64 `json:"length"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	vehicle, err := s.catalogService.CreateVehicle(c.Context(), service.CreateVehicleInput{
		Name:          req.Name,
		Model:         req.Model,
		CargoCapacity: req.CargoCapacity,
		Length:        req.Length,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// DeleteVehicle handles DELETE /vehicles/:id
func (s *Server) DeleteVehicle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catalogService.DeleteVehicle(c.Context(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"msg": fmt.Sprintf("Vehículo %d eliminado con éxito", id),
	})
}
