package server

import (
	"github.com/Matija334/RecipeWorld/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the authenticated user's account record alongside
// their recipes.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	user, err := s.userRepo.GetByID(c.Context(), ident.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	recipes, err := s.recipeRepo.ListByUser(c.Context(), ident.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":    user,
		"recipes": recipes,
	})
}

// ListMyRecipes returns the authenticated user's recipes, newest first.
func (s *Server) ListMyRecipes(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	recipes, err := s.recipeRepo.ListByUser(c.Context(), ident.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"recipes": recipes})
}

// DeleteAccount removes the authenticated user and cascades to their recipes,
// comments, bookmarks and follow edges. The token stays syntactically valid
// until expiry, but every subsequent lookup of the account fails.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	// Verify the account still exists so a replayed delete reports 404.
	if _, err := s.userRepo.GetByID(c.Context(), ident.ID); err != nil {
		return respondAppError(c, err)
	}

	if err := s.userRepo.Delete(c.Context(), ident.ID); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// respondAppError maps an AppError's code to its HTTP status. Errors that are
// not AppErrors fall through as 500.
func respondAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if appErr, ok := err.(*models.AppError); ok {
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		case "CONFLICT":
			status = fiber.StatusConflict
		case "INVALID_OPERATION":
			status = fiber.StatusBadRequest
		}
	}
	return models.RespondWithError(c, status, err)
}
