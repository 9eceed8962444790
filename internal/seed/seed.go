// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Matija334/RecipeWorld/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumRecipes  int
	ShouldClean bool
}

// seedPassword is the shared password for all generated accounts.
const seedPassword = "password123"

// Seed populates the database with test data: the curated demo kitchen plus a
// randomized mesh of users, recipes, comments, bookmarks and follows.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d recipes...", opts.NumUsers, opts.NumRecipes)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	if err := DemoKitchen(db); err != nil {
		return fmt.Errorf("failed to seed demo kitchen: %w", err)
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	recipes, err := createRecipes(db, users, opts.NumRecipes)
	if err != nil {
		return fmt.Errorf("failed to create recipes: %w", err)
	}
	log.Printf("%d recipes created", len(recipes))

	if err := createEngagement(db, users, recipes); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Comment{}, &models.Bookmark{}, &models.Follow{},
		&models.Recipe{}, &models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func createUsers(db *gorm.DB, count int) ([]*models.User, error) {
	hashed, err := hashPassword(seedPassword)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		username := strings.ToLower(gofakeit.Username())
		user := &models.User{
			Email:    fmt.Sprintf("%s%d@%s", username, i, gofakeit.DomainName()),
			Username: username,
			Password: hashed,
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createRecipes(db *gorm.DB, users []*models.User, count int) ([]*models.Recipe, error) {
	if len(users) == 0 {
		return nil, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	recipes := make([]*models.Recipe, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]

		ingredients := make([]string, 3+r.Intn(5))
		for j := range ingredients {
			ingredients[j] = gofakeit.Dinner()
		}

		recipe := &models.Recipe{
			UserID:      author.ID,
			Title:       gofakeit.Dinner(),
			Description: gofakeit.Sentence(12),
			Ingredients: strings.Join(ingredients, "\n"),
			Steps:       gofakeit.Paragraph(1, 3, 8, "\n"),
			ImageURL:    models.DefaultRecipeImage,
		}
		// spread creation times so sort orders are visible in dev
		recipe.CreatedAt = time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour)

		if err := db.Create(recipe).Error; err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// createEngagement sprinkles comments, bookmarks and follow edges across the
// generated users and recipes.
func createEngagement(db *gorm.DB, users []*models.User, recipes []*models.Recipe) error {
	if len(users) == 0 || len(recipes) == 0 {
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, recipe := range recipes {
		for i := 0; i < r.Intn(4); i++ {
			comment := &models.Comment{
				RecipeID: recipe.ID,
				UserID:   users[r.Intn(len(users))].ID,
				Content:  gofakeit.Sentence(8),
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
		}
	}

	for _, user := range users {
		for i := 0; i < r.Intn(5); i++ {
			recipe := recipes[r.Intn(len(recipes))]
			bookmark := &models.Bookmark{UserID: user.ID, RecipeID: recipe.ID}
			if err := db.Where(bookmark).FirstOrCreate(bookmark).Error; err != nil {
				return err
			}
		}
		for i := 0; i < r.Intn(4); i++ {
			target := users[r.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			follow := &models.Follow{FollowerID: user.ID, FolloweeID: target.ID}
			if err := db.Where(follow).FirstOrCreate(follow).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
