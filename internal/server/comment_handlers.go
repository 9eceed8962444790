package server

import (
	"strings"

	"github.com/Matija334/RecipeWorld/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddCommentRequest represents the comment creation request body
type AddCommentRequest struct {
	Content string `json:"content"`
}

// ListComments returns a recipe's comments, oldest first. A missing recipe is
// a 404 rather than an empty list.
func (s *Server) ListComments(c *fiber.Ctx) error {
	id, err := parseRecipeID(c, "id")
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

	comments, err := s.commentRepo.ListByRecipe(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// AddComment attaches a comment by the authenticated user to a recipe. Any
// user may comment on any existing recipe, including their own.
func (s *Server) AddComment(c *fiber.Ctx) error {
	ident := s.currentIdentity(c)

	id, err := parseRecipeID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var req AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment content is required"))
	}

	exists, err := s.recipeRepo.Exists(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	if !exists {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Recipe"))
	}

	comment := &models.Comment{
		RecipeID: id,
		UserID:   ident.ID,
		Content:  req.Content,
	}

	if err := s.commentRepo.Create(c.Context(), comment); err != nil {
		return respondAppError(c, err)
	}

	comment.Author = ident.Username
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}
