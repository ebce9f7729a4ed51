// Package service contains the business rules sitting between handlers and
// repositories: required-field validation, uniqueness checks and entity
// assembly.
package service

import (
	"context"

	"holocron/internal/models"
	"holocron/internal/repository"
)

// UserService implements user lifecycle rules.
type UserService struct {
	userRepo repository.UserRepository
}

// ProfileInput carries the optional profile fields for combined
// user-with-profile creation. All fields are optional strings.
type ProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// CreateUserInput carries the fields accepted on user creation.
type CreateUserInput struct {
	Email    string
	Username string
	Password string
	IsActive *bool
	Profile  *ProfileInput
}

// UpdateUserInput is the explicit patch for PUT /users/:id. Nil means the
// field was absent from the request and must not be touched.
type UpdateUserInput struct {
	Email    *string
	Username *string
	Password *string
	IsActive *bool
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns all users, flat.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser returns one user with its profile nested.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByIDWithProfile(ctx, id)
}

// GetUserOrders returns one user with its orders nested.
func (s *UserService) GetUserOrders(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByIDWithOrders(ctx, id)
}

// CreateUser validates the input, rejects email/username collisions and
// persists the user together with its profile when one is attached.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.Email == "" {
		return nil, models.NewMissingFieldError("email")
	}
	if in.Username == "" {
		return nil, models.NewMissingFieldError("username")
	}
	if in.Password == "" {
		return nil, models.NewMissingFieldError("password")
	}

	if err := s.checkUnique(ctx, in.Email, in.Username, 0); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    in.Email,
		Username: in.Username,
		Password: in.Password,
		IsActive: true,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Profile != nil {
		user.Profile = &models.ProfileInfo{
			FirstName: in.Profile.FirstName,
			LastName:  in.Profile.LastName,
			Phone:     in.Profile.Phone,
			Address:   in.Profile.Address,
			Bio:       in.Profile.Bio,
			AvatarURL: in.Profile.AvatarURL,
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies the patch field-by-field. Uniqueness is re-checked only
// for fields that actually change, and never against the user itself.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByIDWithProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		if *in.Email == "" {
			return nil, models.NewMissingFieldError("email")
		}
		existing, err := s.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, models.NewConflictError("Ya existe un usuario con ese email")
		}
		user.Email = *in.Email
	}

	if in.Username != nil && *in.Username != user.Username {
		if *in.Username == "" {
			return nil, models.NewMissingFieldError("username")
		}
		existing, err := s.userRepo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, models.NewConflictError("Ya existe un usuario con ese username")
		}
		user.Username = *in.Username
	}

	if in.Password != nil {
		if *in.Password == "" {
			return nil, models.NewMissingFieldError("password")
		}
		user.Password = *in.Password
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and returns the deleted record so the handler
// can name it in the confirmation message.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) checkUnique(ctx context.Context, email, username string, selfID uint) error {
	byEmail, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if byEmail != nil && byEmail.ID != selfID {
		return models.NewConflictError("Ya existe un usuario con ese email")
	}

	byUsername, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if byUsername != nil && byUsername.ID != selfID {
		return models.NewConflictError("Ya existe un usuario con ese username")
	}
	return nil
}
