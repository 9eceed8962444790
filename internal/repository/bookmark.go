package repository

import (
	"context"

	"github.com/Matija334/RecipeWorld/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository defines the interface for bookmark data operations
type BookmarkRepository interface {
	Add(ctx context.Context, userID, recipeID uint) error
	Remove(ctx context.Context, userID, recipeID uint) error
	IsBookmarked(ctx context.Context, userID, recipeID uint) (bool, error)
	ListRecipes(ctx context.Context, userID uint) ([]*models.Recipe, error)
}

// bookmarkRepository implements BookmarkRepository
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Add records a bookmark. Re-bookmarking an already bookmarked recipe is a
// silent no-op (insert-or-ignore on the composite primary key).
func (r *bookmarkRepository) Add(ctx context.Context, userID, recipeID uint) error {
	bookmark := &models.Bookmark{UserID: userID, RecipeID: recipeID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(bookmark).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Remove deletes a bookmark. Removing a bookmark that does not exist is a no-op.
func (r *bookmarkRepository) Remove(ctx context.Context, userID, recipeID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Bookmark{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *bookmarkRepository) IsBookmarked(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListRecipes returns the user's bookmarked recipes joined through the
// bookmarks table, most recently bookmarked first.
func (r *bookmarkRepository) ListRecipes(ctx context.Context, userID uint) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Select("recipes.*, users.username AS author").
		Joins("JOIN bookmarks ON bookmarks.recipe_id = recipes.id").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC, recipes.id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}
