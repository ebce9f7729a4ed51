package server

import (
	"context"
	"fmt"
	"time"

	"holocron/internal/models"
	"holocron/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, err := s.userService.ListUsers(ctx)
	if err != nil {
		return s.respondError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// GetUser handles GET /users/:id, returning the user with its profile nested.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(user)
}

// CreateUser handles POST /users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
		IsActive *bool  `json:"is_active"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// CreateUserWithProfile handles POST /users/with-profile. The user and its
// profile are persisted in one transaction; neither survives alone.
func (s *Server) CreateUserWithProfile(c *fiber.Ctx) error {
	var req struct {
		Email    string                `json:"email"`
		Username string                `json:"username"`
		Password string                `json:"password"`
		IsActive *bool                 `json:"is_active"`
		Profile  *service.ProfileInput `json:"profile"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		IsActive: req.IsActive,
		Profile:  req.Profile,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /users/:id. Only fields present in the request are
// applied; uniqueness is re-checked for changed email/username only.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Email    *string `json:"email"`
		Username *string `json:"username"`
		Password *string `json:"password"`
		IsActive *bool   `json:"is_active"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.UpdateUser(c.Context(), id, service.UpdateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		IsActive: req.IsActive,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.DeleteUser(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Usuario '%s' eliminado correctamente", user.Username),
	})
}

// GetUserOrders handles GET /users/:id/orders
func (s *Server) GetUserOrders(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserOrders(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	orders := user.Orders
	if orders == nil {
		orders = []models.Order{}
	}
	user.Orders = nil
	return c.JSON(fiber.Map{
		"user":   user,
		"orders": orders,
	})
}

// GetUserFavorites handles GET /users/:id/favorites, expanding each edge with
// the favorited entity's own serialization.
func (s *Server) GetUserFavorites(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, favorites, err := s.favoriteService.ListUserFavorites(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":      user,
		"favorites": favorites,
	})
}
