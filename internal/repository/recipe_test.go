package repository

import (
	"context"
	"testing"

	"github.com/Matija334/RecipeWorld/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestRecipeRepository_ListPublic_BindsFilterValues(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	// Search and author values must arrive as bound parameters, lowered and
	// wrapped for the LIKE match.
	mock.ExpectQuery(`SELECT recipes\..*users\.username AS author.*JOIN users ON users\.id = recipes\.user_id.*LOWER\(recipes\.title\) LIKE.*ORDER BY recipes\.created_at DESC, recipes\.id DESC`).
		WithArgs("%apple pie%", "%apple pie%", "%apple pie%", "anna").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author"}).
			AddRow(1, "Apple Pie", "anna"))

	recipes, err := repo.ListPublic(ctx, PublicRecipeFilter{
		Query:  "  Apple Pie  ",
		Author: " anna ",
		Sort:   "created_desc",
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Apple Pie", recipes[0].Title)
	assert.Equal(t, "anna", recipes[0].Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_ListPublic_SortWhitelist(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		sort          string
		expectedOrder string
	}{
		{
			name:          "Known key",
			sort:          "title_asc",
			expectedOrder: `ORDER BY recipes\.title ASC, recipes\.id ASC`,
		},
		{
			name:          "Unknown key falls back to newest first",
			sort:          "published_desc",
			expectedOrder: `ORDER BY recipes\.created_at DESC, recipes\.id DESC`,
		},
		{
			name:          "Injection attempt never reaches the query",
			sort:          "created_at; DROP TABLE recipes--",
			expectedOrder: `ORDER BY recipes\.created_at DESC, recipes\.id DESC`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery(`SELECT recipes\..*` + tt.expectedOrder).
				WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

			_, err := repo.ListPublic(ctx, PublicRecipeFilter{Sort: tt.sort})
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecipeRepository_GetOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	t.Run("Owned recipe", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1 AND user_id = \$2`).
			WithArgs(1, 10, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title"}).
				AddRow(1, 10, "Mine"))

		recipe, err := repo.GetOwned(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "Mine", recipe.Title)
	})

	t.Run("Foreign recipe reported as not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1 AND user_id = \$2`).
			WithArgs(1, 99, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetOwned(ctx, 1, 99)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFoundIsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("missing@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByEmail(ctx, "missing@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
