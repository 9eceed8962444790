package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Matija334/RecipeWorld/internal/models"

	"gorm.io/gorm"
)

// DefaultPublicSort is the listing order applied when no (or an unrecognized)
// sort key is requested.
const DefaultPublicSort = "created_desc"

// publicSortClauses is the closed whitelist of orderings for the public
// listing. User input is resolved through this map and never reaches the
// query text directly. Each clause carries recipes.id as a stable tie-break.
var publicSortClauses = map[string]string{
	"created_desc": "recipes.created_at DESC, recipes.id DESC",
	"created_asc":  "recipes.created_at ASC, recipes.id ASC",
	"title_asc":    "recipes.title ASC, recipes.id ASC",
	"title_desc":   "recipes.title DESC, recipes.id ASC",
	"author_asc":   "users.username ASC, recipes.id ASC",
	"author_desc":  "users.username DESC, recipes.id ASC",
}

// PublicRecipeFilter holds the optional dimensions of a public listing query.
// All fields combine with logical AND.
type PublicRecipeFilter struct {
	Query  string
	Author string
	Sort   string
}

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	GetPublicByID(ctx context.Context, id uint) (*models.Recipe, error)
	GetOwned(ctx context.Context, id, userID uint) (*models.Recipe, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Recipe, error)
	ListPublic(ctx context.Context, filter PublicRecipeFilter) ([]*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// recipeRepository implements RecipeRepository
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe")
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

// GetPublicByID returns a recipe with its author's username joined in.
func (r *recipeRepository) GetPublicByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Select("recipes.*, users.username AS author").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.id = ?", id).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe")
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

// GetOwned looks up a recipe by id and owner in one query. A recipe that
// exists but belongs to someone else is reported exactly like a missing one,
// so callers cannot probe which recipe IDs exist.
func (r *recipeRepository) GetOwned(ctx context.Context, id, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe")
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

func (r *recipeRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

// ListPublic builds the public listing query from the filter's independent
// dimensions. Search and author values are always bound parameters; the sort
// key is resolved through publicSortClauses with a deterministic fallback.
func (r *recipeRepository) ListPublic(ctx context.Context, filter PublicRecipeFilter) ([]*models.Recipe, error) {
	db := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Select("recipes.*, users.username AS author").
		Joins("JOIN users ON users.id = recipes.user_id")

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where(
			"LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ? OR LOWER(recipes.ingredients) LIKE ?",
			like, like, like,
		)
	}

	if author := strings.TrimSpace(filter.Author); author != "" {
		db = db.Where("users.username = ?", author)
	}

	order, ok := publicSortClauses[filter.Sort]
	if !ok {
		order = publicSortClauses[DefaultPublicSort]
	}

	var recipes []*models.Recipe
	if err := db.Order(order).Find(&recipes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes a recipe and its dependent comments and bookmarks atomically.
func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recipeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
