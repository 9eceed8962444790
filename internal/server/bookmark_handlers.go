package server

import (
	"github.com/Matija334/RecipeWorld/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListBookmarks returns the authenticated user's bookmarked recipes, most
// recently bookmarked first.
func (s *Server) ListBookmarks(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	recipes, err := s.bookmarkRepo.ListRecipes(c.Context(), ident.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"recipes": recipes})
}

// AddBookmark bookmarks a recipe for the authenticated user. Bookmarking the
// same recipe twice succeeds without creating a second entry.
func (s *Server) AddBookmark(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	id, err := parseRecipeID(c, "recipeId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	exists, err := s.recipeRepo.Exists(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	if !exists {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Recipe"))
	}

	if err := s.bookmarkRepo.Add(c.Context(), ident.ID, id); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// RemoveBookmark removes a bookmark. Removing a bookmark that was never set
// succeeds as a no-op.
func (s *Server) RemoveBookmark(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	id, err := parseRecipeID(c, "recipeId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.bookmarkRepo.Remove(c.Context(), ident.ID, id); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// IsBookmarked reports whether the authenticated user has bookmarked a recipe.
func (s *Server) IsBookmarked(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	id, err := parseRecipeID(c, "recipeId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	bookmarked, err := s.bookmarkRepo.IsBookmarked(c.Context(), ident.ID, id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"bookmarked": bookmarked})
}
