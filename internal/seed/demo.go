package seed

import (
	"log"
	"strings"

	"github.com/Matija334/RecipeWorld/internal/models"

	"gorm.io/gorm"
)

// demoRecipe is a curated recipe fixture owned by one of the demo accounts.
type demoRecipe struct {
	owner       string
	title       string
	description string
	ingredients []string
	steps       []string
	imageURL    string
}

var demoUsers = []struct {
	email    string
	username string
}{
	{"alice@example.com", "alice"},
	{"bob@example.com", "bob"},
	{"charlie@example.com", "charlie"},
}

var demoRecipes = []demoRecipe{
	{
		owner:       "alice",
		title:       "Fluffy Pancakes",
		description: "Simple, soft pancakes perfect for weekends.",
		ingredients: []string{"1 cup flour", "2 tbsp sugar", "1 tsp baking powder", "1 egg", "3/4 cup milk", "Pinch of salt"},
		steps:       []string{"Whisk dry ingredients.", "Add egg and milk; mix until smooth.", "Cook on medium pan until bubbles form; flip."},
		imageURL:    "/fluffy_pancakes.jpg",
	},
	{
		owner:       "alice",
		title:       "Garlic Butter Shrimp",
		description: "Quick 10-minute skillet shrimp.",
		ingredients: []string{"400g shrimp", "3 cloves garlic", "3 tbsp butter", "Lemon juice", "Parsley", "Salt & pepper"},
		steps:       []string{"Melt butter and sauté garlic.", "Add shrimp; cook 2-3 min.", "Finish with lemon and parsley."},
		imageURL:    "/garlic_butter_shrimp.jpg",
	},
	{
		owner:       "alice",
		title:       "Blueberry Muffins",
		description: "Bakery-style muffins with crunchy tops.",
		ingredients: []string{"2 cups flour", "1/2 cup sugar", "2 tsp baking powder", "1 cup blueberries", "1 egg", "3/4 cup milk", "1/3 cup oil"},
		steps:       []string{"Mix dry ingredients.", "Fold in wet ingredients gently.", "Add blueberries.", "Bake at 190°C for 18-22 min."},
		imageURL:    "/blueberry_muffins.jpg",
	},
	{
		owner:       "alice",
		title:       "Banana Bread",
		description: "Moist, one-bowl banana bread.",
		ingredients: []string{"3 ripe bananas", "1/2 cup sugar", "1 egg", "1.5 cups flour", "1 tsp baking soda", "Pinch of salt", "1/3 cup butter"},
		steps:       []string{"Mash bananas.", "Mix with sugar, egg, melted butter.", "Add dry ingredients.", "Bake at 175°C for ~55 min."},
		imageURL:    "/banana_bread.jpg",
	},
	{
		owner:       "bob",
		title:       "Creamy Tomato Pasta",
		description: "Weeknight pasta with a silky tomato-cream sauce.",
		ingredients: []string{"250g pasta", "1 cup tomato passata", "1/2 cup cream", "1 onion", "Olive oil", "Parmesan", "Salt"},
		steps:       []string{"Boil pasta.", "Sauté onion in oil.", "Add passata, then cream.", "Toss pasta with sauce; top with parmesan."},
		imageURL:    "/creamy_tomato_pasta.jpg",
	},
	{
		owner:       "bob",
		title:       "Spaghetti Carbonara",
		description: "No cream, just eggs and cheese.",
		ingredients: []string{"200g spaghetti", "100g pancetta", "2 eggs", "50g pecorino", "Black pepper", "Salt"},
		steps:       []string{"Cook pasta.", "Fry pancetta.", "Mix eggs + cheese.", "Combine off heat; add pepper."},
		imageURL:    "/spaghetti_carbonara.jpg",
	},
	{
		owner:       "bob",
		title:       "Beef Chili",
		description: "Comforting, mildly spicy chili.",
		ingredients: []string{"400g ground beef", "1 onion", "2 cloves garlic", "1 can tomatoes", "1 can beans", "Chili powder", "Cumin", "Salt"},
		steps:       []string{"Brown beef.", "Sauté onion+garlic.", "Add tomatoes, beans, spices.", "Simmer 25-30 min."},
		imageURL:    "/beef_chili.jpg",
	},
	{
		owner:       "bob",
		title:       "Teriyaki Salmon",
		description: "Sticky, sweet-salty glaze.",
		ingredients: []string{"2 salmon fillets", "3 tbsp soy sauce", "2 tbsp mirin", "1 tbsp sugar", "1 tsp ginger", "Sesame"},
		steps:       []string{"Mix glaze.", "Sear salmon, add glaze to reduce.", "Sprinkle sesame."},
		imageURL:    "/teriyaki_salmon.jpg",
	},
	{
		owner:       "charlie",
		title:       "Oven-Baked Chicken Thighs",
		description: "Crispy skin, juicy inside.",
		ingredients: []string{"6 chicken thighs", "Olive oil", "Paprika", "Garlic powder", "Salt & pepper"},
		steps:       []string{"Preheat oven 200°C.", "Rub thighs with oil and spices.", "Bake 35-40 min until crispy."},
		imageURL:    "/oven_baked_chicken_thighs.jpg",
	},
	{
		owner:       "charlie",
		title:       "Creamy Pumpkin Soup",
		description: "Velvety autumn soup.",
		ingredients: []string{"500g pumpkin", "1 onion", "1 potato", "Stock", "Cream", "Nutmeg", "Salt"},
		steps:       []string{"Sauté onion.", "Add pumpkin + potato + stock.", "Cook soft, blend, add cream + nutmeg."},
		imageURL:    "/creamy_pumpkin_soup.jpg",
	},
	{
		owner:       "charlie",
		title:       "Crispy Tofu Stir-Fry",
		description: "Quick plant-based dinner.",
		ingredients: []string{"300g firm tofu", "Broccoli", "Carrot", "Soy sauce", "Garlic", "Ginger", "Cornstarch"},
		steps:       []string{"Cube tofu, coat with cornstarch, pan-fry.", "Stir-fry veggies, add aromatics + soy.", "Combine."},
		imageURL:    "/crispy_tofu_stir_fry.jpg",
	},
	{
		owner:       "charlie",
		title:       "Chocolate Chip Cookies",
		description: "Chewy centers, crisp edges.",
		ingredients: []string{"1/2 cup butter", "1/2 cup brown sugar", "1/3 cup white sugar", "1 egg", "1.5 cups flour", "1 tsp baking soda", "Choc chips", "Salt"},
		steps:       []string{"Cream butter + sugars.", "Add egg.", "Fold dry + chips.", "Bake at 180°C for 10-12 min."},
		imageURL:    "/chocolate_chip_cookies.jpg",
	},
}

var demoComments = []string{
	"Looks delicious!",
	"Tried this today, turned out great.",
	"Any tip to make it spicier?",
	"Family loved it, thanks!",
	"Super quick weeknight recipe.",
	"This will be on repeat!",
	"Perfect texture and flavor!",
	"Made it for friends, they asked for the recipe!",
}

// DemoKitchen seeds the three demo accounts (alice, bob, charlie) and their
// curated recipes with a sprinkling of comments. Running it twice is safe:
// existing accounts and recipes are reused, not duplicated.
func DemoKitchen(db *gorm.DB) error {
	hashed, err := hashPassword(seedPassword)
	if err != nil {
		return err
	}

	userIDs := map[string]uint{}
	for _, du := range demoUsers {
		user := &models.User{}
		err := db.Where("email = ?", du.email).
			Attrs(models.User{Username: du.username, Password: hashed}).
			FirstOrCreate(user, models.User{Email: du.email}).Error
		if err != nil {
			return err
		}
		userIDs[du.username] = user.ID
	}

	recipeIDs := make([]uint, 0, len(demoRecipes))
	for _, dr := range demoRecipes {
		recipe := &models.Recipe{}
		err := db.Where("user_id = ? AND title = ?", userIDs[dr.owner], dr.title).
			Attrs(models.Recipe{
				Description: dr.description,
				Ingredients: strings.Join(dr.ingredients, "\n"),
				Steps:       strings.Join(dr.steps, "\n"),
				ImageURL:    dr.imageURL,
			}).
			FirstOrCreate(recipe, models.Recipe{UserID: userIDs[dr.owner], Title: dr.title}).Error
		if err != nil {
			return err
		}
		recipeIDs = append(recipeIDs, recipe.ID)
	}

	// Only comment on a fresh database.
	var commentCount int64
	if err := db.Model(&models.Comment{}).Count(&commentCount).Error; err != nil {
		return err
	}
	if commentCount > 0 {
		return nil
	}

	names := []string{"alice", "bob", "charlie"}
	for i, recipeID := range recipeIDs {
		comment := &models.Comment{
			RecipeID: recipeID,
			UserID:   userIDs[names[i%len(names)]],
			Content:  demoComments[i%len(demoComments)],
		}
		if err := db.Create(comment).Error; err != nil {
			return err
		}
	}

	log.Printf("Demo kitchen ready: %d users, %d recipes", len(demoUsers), len(demoRecipes))
	return nil
}
