package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/larder-app/larder/app/controllers"
	"github.com/larder-app/larder/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")

	// Households
	v1.Post("/households", controllers.HandleCreateHousehold)
	v1.Post("/households/join", controllers.HandleJoinHousehold)
	v1.Get("/household", middleware.RequireHousehold, controllers.HandleGetHousehold)
	v1.Post("/household/rotate-invite", middleware.RequireHousehold, controllers.HandleRotateInviteCode)

	// Recipes
	v1.Get("/recipes", middleware.RequireHousehold, controllers.HandleListRecipes)
	v1.Get("/recipes/:slug", controllers.HandleGetRecipe)
	v1.Post("/recipes", middleware.RequireHousehold, controllers.HandleCreateRecipe)
	v1.Put("/recipes/:slug", middleware.RequireHousehold, controllers.HandleUpdateRecipe)
	v1.Delete("/recipes/:slug", middleware.RequireHousehold, controllers.HandleDeleteRecipe)

	// Meal plan
	v1.Get("/plan", middleware.RequireHousehold, controllers.HandleGetPlanWeek)
	v1.Post("/plan/entries", middleware.RequireHousehold, controllers.HandleAddPlanEntry)
	v1.Patch("/plan/entries/:id/move", middleware.RequireHousehold, controllers.HandleMovePlanEntry)
	v1.Patch("/plan/entries/:id/notes", middleware.RequireHousehold, controllers.HandleUpdatePlanNotes)
	v1.Patch("/plan/cells/reorder", middleware.RequireHousehold, controllers.HandleReorderPlanCell)
	v1.Delete("/plan/entries/:id", middleware.RequireHousehold, controllers.HandleDeletePlanEntry)

	// Shopping list
	v1.Get("/shopping", middleware.RequireHousehold, controllers.HandleGetShoppingList)
	v1.Patch("/shopping/pantry", middleware.RequireHousehold, controllers.HandleTogglePantryItem)
	v1.Post("/shopping/clear-checks", middleware.RequireHousehold, controllers.HandleClearChecks)
	v1.Get("/shopping/export", middleware.RequireHousehold, controllers.HandleExportShoppingList)
	v1.Get("/shopping/share", middleware.RequireHousehold, controllers.HandleShareShoppingList)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
