package services

import (
	"fmt"
	"strings"
	"testing"

	"recipe-api/models"
	"recipe-api/repositories"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	))

	return db
}

func newTestRecipeService(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	service := NewRecipeService(
		repositories.NewRecipeRepository(db),
		repositories.NewTagRepository(db),
		repositories.NewIngredientRepository(db),
	)
	return service, db
}

func createServiceTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Password: "hashed", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func sampleCreateRequest() models.CreateRecipeRequest {
	return models.CreateRecipeRequest{
		Title:       "Sample Recipe",
		TimeMinutes: 22,
		Price:       decimal.RequireFromString("5.25"),
		Link:        "http://example.com/recipe.pdf",
	}
}

func TestCreateRecipeCreatesMissingTags(t *testing.T) {
	service, db := newTestRecipeService(t)
	user := createServiceTestUser(t, db, "user@example.com")

	req := sampleCreateRequest()
	req.Tags = []models.TagInput{{Name: "Thai"}, {Name: "Dinner"}}

	recipe, err := service.CreateRecipe(req, user.ID)
	require.NoError(t, err)
	require.Len(t, recipe.Tags, 2)

	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 2, tagCount)
}

func TestCreateRecipeReusesExistingTag(t *testing.T) {
	service, db := newTestRecipeService(t)
	user := createServiceTestUser(t, db, "user@example.com")

	req := sampleCreateRequest()
	req.Tags = []models.TagInput{{Name: "Thai"}}

	first, err := service.CreateRecipe(req, user.ID)
	require.NoError(t, err)

	second, err := service.CreateRecipe(req, user.ID)
	require.NoError(t, err)

	require.Len(t, second.Tags, 1)
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID)

	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, tagCount)
}

func TestCreateRecipeTagsScopedPerUser(t *testing.T) {
	service, db := newTestRecipeService(t)
	alice := createServiceTestUser(t, db, "alice@example.com")
	bob := createServiceTestUser(t, db, "bob@example.com")

	req := sampleCreateRequest()
	req.Tags = []models.TagInput{{Name: "Thai"}}

	aliceRecipe, err := service.CreateRecipe(req, alice.ID)
	require.NoError(t, err)

	bobRecipe, err := service.CreateRecipe(req, bob.ID)
	require.NoError(t, err)

	// Same name, different owners, so two distinct tags.
	assert.NotEqual(t, aliceRecipe.Tags[0].ID, bobRecipe.Tags[0].ID)
}

func TestCreateRecipeDeduplicatesPayloadNames(t *testing.T) {
	service, db := newTestRecipeService(t)
	user := createServiceTestUser(t, db, "user@example.com")

	req := sampleCreateRequest()
	req.Tags = []models.TagInput{{Name: "Thai"}, {Name: "Thai"}}
	req.Ingredients = []models.IngredientInput{{Name: "Salt"}, {Name: "Salt"}}

	recipe, err := service.CreateRecipe(req, user.ID)
	require.NoError(t, err)
	assert.Len(t, recipe.Tags, 1)
	assert.Len(t, recipe.Ingredients, 1)
}

func TestUpdateRecipeClearsAssociationsOnEmptyList(t *testing.T) {
	service, db := newTestRecipeService(t)
	user := createServiceTestUser(t, db, "user@example.com")

	req := sampleCreateRequest()
	req.Tags = []models.TagInput{{Name: "Thai"}}
	recipe, err := service.CreateRecipe(req, user.ID)
	require.NoError(t, err)

	emptyTags := []models.TagInput{}
	updated, err := service.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Tags: &emptyTags}, user.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)

	// The tag entity survives the cleared association.
	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, tagCount)
}

func TestUpdateRecipeOmittedFieldsUntouched(t *testing.T) {
	service, db := newTestRecipeService(t)
	user := createServiceTestUser(t, db, "user@example.com")

	req := sampleCreateRequest()
	req.Tags = []models.TagInput{{Name: "Thai"}}
	recipe, err := service.CreateRecipe(req, user.ID)
	require.NoError(t, err)

	newTitle := "New Title"
	updated, err := service.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Title: &newTitle}, user.ID)
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "http://example.com/recipe.pdf", updated.Link)
	assert.Equal(t, 22, updated.TimeMinutes)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "Thai", updated.Tags[0].Name)
}

func TestUpdateRecipeReplacesTagSet(t *testing.T) {
	service, db := newTestRecipeService(t)
	user := createServiceTestUser(t, db, "user@example.com")

	req := sampleCreateRequest()
	req.Tags = []models.TagInput{{Name: "Breakfast"}}
	recipe, err := service.CreateRecipe(req, user.ID)
	require.NoError(t, err)

	lunch := []models.TagInput{{Name: "Lunch"}}
	updated, err := service.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Tags: &lunch}, user.ID)
	require.NoError(t, err)

	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "Lunch", updated.Tags[0].Name)
}

func TestUpdateRecipeNotOwned(t *testing.T) {
	service, db := newTestRecipeService(t)
	owner := createServiceTestUser(t, db, "owner@example.com")
	other := createServiceTestUser(t, db, "other@example.com")

	recipe, err := service.CreateRecipe(sampleCreateRequest(), owner.ID)
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = service.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Title: &newTitle}, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetRecipesRejectsMalformedFilters(t *testing.T) {
	service, db := newTestRecipeService(t)
	user := createServiceTestUser(t, db, "user@example.com")

	for _, raw := range []string{"abc", "1,abc", "-1", "1.5"} {
		_, err := service.GetRecipes(models.RecipeListParams{Tags: raw}, user.ID)
		assert.ErrorIs(t, err, ErrInvalidFilter, "tags=%q", raw)
	}

	_, err := service.GetRecipes(models.RecipeListParams{Ingredients: "2,x"}, user.ID)
	assert.ErrorIs(t, err, ErrInvalidFilter)

	// Zero parses fine and just matches nothing.
	recipes, err := service.GetRecipes(models.RecipeListParams{Tags: "0"}, user.ID)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestGetRecipesFiltersByTagIDs(t *testing.T) {
	service, db := newTestRecipeService(t)
	user := createServiceTestUser(t, db, "user@example.com")

	thaiReq := sampleCreateRequest()
	thaiReq.Title = "Curry"
	thaiReq.Tags = []models.TagInput{{Name: "Thai"}}
	curry, err := service.CreateRecipe(thaiReq, user.ID)
	require.NoError(t, err)

	plainReq := sampleCreateRequest()
	plainReq.Title = "Plain"
	_, err = service.CreateRecipe(plainReq, user.ID)
	require.NoError(t, err)

	tagID := curry.Tags[0].ID
	recipes, err := service.GetRecipes(models.RecipeListParams{Tags: fmt.Sprintf("%d", tagID)}, user.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, curry.ID, recipes[0].ID)
}

func TestRecipeImagePath(t *testing.T) {
	path, err := RecipeImagePath("photo.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "uploads/recipe/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	other, err := RecipeImagePath("photo.jpg")
	require.NoError(t, err)
	assert.NotEqual(t, path, other)

	_, err = RecipeImagePath("notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = RecipeImagePath("noextension")
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
