package server

import (
	"strings"

	"github.com/Matija334/RecipeWorld/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAuthorProfile returns the public view of an author: their profile with a
// freshly computed follower count, and their recipes.
func (s *Server) GetAuthorProfile(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	user, err := s.userRepo.GetByUsername(c.Context(), username)
	if err != nil {
		return respondAppError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Author"))
	}

	followers, err := s.followRepo.CountFollowers(c.Context(), user.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	recipes, err := s.recipeRepo.ListByUser(c.Context(), user.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"author": models.AuthorProfile{
			ID:             user.ID,
			Username:       user.Username,
			JoinedAt:       user.CreatedAt,
			FollowersCount: followers,
		},
		"recipes": recipes,
	})
}

// GetFollowStatus reports whether the authenticated user follows the named user.
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	target, err := s.resolveFollowTarget(c)
	if err != nil {
		return respondAppError(c, err)
	}

	following, err := s.followRepo.IsFollowing(c.Context(), ident.ID, target.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// FollowUser makes the authenticated user follow the named user. Following
// someone already followed succeeds without creating a second edge; following
// yourself is rejected.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	target, err := s.resolveFollowTarget(c)
	if err != nil {
		return respondAppError(c, err)
	}

	if target.ID == ident.ID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewInvalidOperationError("You cannot follow yourself"))
	}

	if err := s.followRepo.Follow(c.Context(), ident.ID, target.ID); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"following": true})
}

// UnfollowUser removes a follow edge. Unfollowing someone not followed
// succeeds as a no-op.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	target, err := s.resolveFollowTarget(c)
	if err != nil {
		return respondAppError(c, err)
	}

	if err := s.followRepo.Unfollow(c.Context(), ident.ID, target.ID); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"following": false})
}

// ListMyFollowGraph returns both directions of the authenticated user's
// follow graph in one response.
func (s *Server) ListMyFollowGraph(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	followers, err := s.followRepo.ListFollowers(c.Context(), ident.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	following, err := s.followRepo.ListFollowing(c.Context(), ident.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"followers": followers,
		"following": following,
	})
}

// resolveFollowTarget looks up the user named in the route.
func (s *Server) resolveFollowTarget(c *fiber.Ctx) (*models.User, error) {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}

	user, err := s.userRepo.GetByUsername(c.Context(), username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User")
	}
	return user, nil
}
