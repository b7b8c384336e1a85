package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/larder-app/larder/app/models"
	"github.com/larder-app/larder/app/repository"
	"github.com/larder-app/larder/internal/pkg/middleware"
)

type ingredientPayload struct {
	Line     string   `json:"line"`
	Name     string   `json:"name"`
	Qty      *float64 `json:"qty"`
	Unit     *string  `json:"unit"`
	Optional bool     `json:"optional"`
}

type recipePayload struct {
	Title       string              `json:"title"`
	Servings    int                 `json:"servings"`
	PrepMinutes int                 `json:"prep_minutes"`
	CookMinutes int                 `json:"cook_minutes"`
	Tags        []string            `json:"tags"`
	Notes       string              `json:"notes"`
	Shared      bool                `json:"shared"`
	Ingredients []ingredientPayload `json:"ingredients"`
	Steps       []string            `json:"steps"`
}

// HandleListRecipes returns the recipes visible to the household,
// optionally filtered by ?q=.
func HandleListRecipes(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)
	repo := repository.GetGlobalFactory().GetRecipeRepository()

	if q := c.Query("q"); q != "" {
		recipes, err := repo.Search(householdID, q)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Recipe search failed"})
		}
		return c.JSON(fiber.Map{"recipes": recipes})
	}

	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	recipes, err := repo.ListForHousehold(householdID, offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load recipes"})
	}
	return c.JSON(fiber.Map{"recipes": recipes})
}

// HandleGetRecipe returns one recipe by slug, with ingredients and
// steps.
func HandleGetRecipe(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetRecipeRepository()
	recipe, err := repo.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Recipe not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load recipe"})
	}
	return c.JSON(recipe)
}

// HandleCreateRecipe stores a recipe with its ingredient list and
// method steps.
func HandleCreateRecipe(c *fiber.Ctx) error {
	householdID := middleware.GetHouseholdID(c)

	var req recipePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}

	recipe := &models.Recipe{
		Title:       req.Title,
		Servings:    req.Servings,
		PrepMinutes: req.PrepMinutes,
		CookMinutes: req.CookMinutes,
		Notes:       req.Notes,
	}
	recipe.SetTagList(req.Tags)
	if !req.Shared {
		recipe.HouseholdID = &householdID
	}
	recipe.Ingredients = toIngredients(req.Ingredients)
	recipe.Steps = toSteps(req.Steps)

	if err := recipe.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	repo := repository.GetGlobalFactory().GetRecipeRepository()
	slug := models.Slugify(recipe.Title)
	taken, err := repo.SlugExists(slug)
	if err == nil && taken {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": "A recipe with that title already exists"})
	}

	if err := repo.Create(recipe); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to create recipe"})
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// HandleUpdateRecipe updates recipe fields and replaces its
// ingredient and step lists.
func HandleUpdateRecipe(c *fiber.Ctx) error {
	var req recipePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid JSON body"})
	}

	repo := repository.GetGlobalFactory().GetRecipeRepository()
	recipe, err := repo.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Recipe not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load recipe"})
	}

	recipe.Title = req.Title
	recipe.Servings = req.Servings
	recipe.PrepMinutes = req.PrepMinutes
	recipe.CookMinutes = req.CookMinutes
	recipe.Notes = req.Notes
	recipe.SetTagList(req.Tags)
	recipe.Ingredients = nil
	recipe.Steps = nil

	if err := recipe.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	if err := repo.Update(recipe); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to update recipe"})
	}
	if err := repo.ReplaceIngredients(recipe.ID, toIngredients(req.Ingredients)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to update ingredients"})
	}
	if err := repo.ReplaceSteps(recipe.ID, toSteps(req.Steps)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to update steps"})
	}

	updated, err := repo.GetByID(recipe.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to reload recipe"})
	}
	return c.JSON(updated)
}

// HandleDeleteRecipe removes a recipe; its ingredients, steps and
// plan entries go with it.
func HandleDeleteRecipe(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetRecipeRepository()
	recipe, err := repo.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "Recipe not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load recipe"})
	}

	if err := repo.Delete(recipe.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to delete recipe"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toIngredients(payload []ingredientPayload) []models.Ingredient {
	out := make([]models.Ingredient, 0, len(payload))
	for i, p := range payload {
		out = append(out, models.Ingredient{
			Line:     p.Line,
			Name:     p.Name,
			Qty:      p.Qty,
			Unit:     p.Unit,
			Optional: p.Optional,
			Position: i,
		})
	}
	return out
}

func toSteps(texts []string) []models.RecipeStep {
	out := make([]models.RecipeStep, 0, len(texts))
	for i, t := range texts {
		out = append(out, models.RecipeStep{Position: i, Text: t})
	}
	return out
}
