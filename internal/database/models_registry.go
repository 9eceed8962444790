package database

import "github.com/Matija334/RecipeWorld/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Recipe{},
		&models.Comment{},
		&models.Bookmark{},
		&models.Follow{},
	}
}
