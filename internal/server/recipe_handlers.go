package server

import (
	"strconv"
	"strings"

	"github.com/Matija334/RecipeWorld/internal/models"
	"github.com/Matija334/RecipeWorld/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateRecipeRequest represents the recipe creation request body
type CreateRecipeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
	ImageURL    string `json:"image_url"`
}

// UpdateRecipeRequest carries a partial recipe update. Absent fields are nil
// and leave the stored value untouched.
type UpdateRecipeRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Ingredients *string `json:"ingredients"`
	Steps       *string `json:"steps"`
	ImageURL    *string `json:"image_url"`
}

// parseRecipeID extracts the numeric recipe id from the route.
func parseRecipeID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid recipe ID")
	}
	return uint(id), nil
}

// CreateRecipe handles recipe creation for the authenticated user.
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	var req CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		imageURL = models.DefaultRecipeImage
	}

	recipe := &models.Recipe{
		UserID:      ident.ID,
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		ImageURL:    imageURL,
	}

	if err := s.recipeRepo.Create(c.Context(), recipe); err != nil {
		return respondAppError(c, err)
	}

	recipe.Author = ident.Username
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"recipe": recipe})
}

// UpdateRecipe applies a partial update to one of the caller's recipes. A
// recipe owned by someone else is reported as not found.
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	id, err := parseRecipeID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var req UpdateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	recipe, err := s.recipeRepo.GetOwned(c.Context(), id, ident.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Title cannot be empty"))
		}
		recipe.Title = title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Steps != nil {
		recipe.Steps = *req.Steps
	}
	if req.ImageURL != nil {
		imageURL := strings.TrimSpace(*req.ImageURL)
		if imageURL == "" {
			imageURL = models.DefaultRecipeImage
		}
		recipe.ImageURL = imageURL
	}

	if err := s.recipeRepo.Update(c.Context(), recipe); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"recipe": recipe})
}

// DeleteRecipe removes one of the caller's recipes along with its comments
// and bookmarks.
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	id, err := parseRecipeID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if _, err := s.recipeRepo.GetOwned(c.Context(), id, ident.ID); err != nil {
		return respondAppError(c, err)
	}

	if err := s.recipeRepo.Delete(c.Context(), id); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ListPublicRecipes handles the public browse/search listing. Query, author
// and sort are independent filters combined with AND.
func (s *Server) ListPublicRecipes(c *fiber.Ctx) error {
	filter := repository.PublicRecipeFilter{
		Query:  c.Query("q"),
		Author: c.Query("author"),
		Sort:   c.Query("sort", repository.DefaultPublicSort),
	}

	recipes, err := s.recipeRepo.ListPublic(c.Context(), filter)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"recipes": recipes})
}

// GetPublicRecipe returns a single recipe with its author's username.
func (s *Server) GetPublicRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	recipe, err := s.recipeRepo.GetPublicByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"recipe": recipe})
}
